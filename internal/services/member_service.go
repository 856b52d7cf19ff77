package services

import (
	"context"
	"log"

	"task-board-system.com/task-board-system/internal/board"
	"task-board-system.com/task-board-system/internal/constants"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	model "task-board-system.com/task-board-system/internal/models"
	repository "task-board-system.com/task-board-system/internal/repositories"
)

type MemberService struct {
	members *repository.MemberRepository
}

func NewMemberService(members *repository.MemberRepository) *MemberService {
	return &MemberService{members: members}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]model.Member, error) {
	return s.members.List(ctx)
}

func (s *MemberService) GetMember(ctx context.Context, id int64) (*model.Member, error) {
	return s.members.FindByID(ctx, id)
}

func (s *MemberService) CreateMember(ctx context.Context, actor model.Member, member *model.Member) (*model.Member, error) {
	if !member.Role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}
	if !board.CanGrantRole(actor, member.Role) {
		return nil, apperrors.ErrForbidden
	}
	if member.Status == "" {
		member.Status = constants.MemberActive
	}
	return s.members.Create(ctx, member)
}

func (s *MemberService) UpdateMember(ctx context.Context, actor model.Member, id int64, patch model.MemberPatch) (*model.Member, error) {
	target, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !board.CanEditMember(actor, *target) {
		return nil, apperrors.ErrForbidden
	}
	if patch.Role != nil {
		if !patch.Role.Valid() {
			return nil, apperrors.ErrInvalidRole
		}
		if !board.CanGrantRole(actor, *patch.Role) {
			return nil, apperrors.ErrForbidden
		}
	}
	return s.members.UpdatePartial(ctx, id, patch)
}

func (s *MemberService) DeleteMember(ctx context.Context, actor model.Member, id int64) error {
	target, err := s.members.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !board.CanDeleteMember(actor, *target) {
		return apperrors.ErrForbidden
	}
	return s.members.Delete(ctx, id)
}

// EnsureAdmin creates the bootstrap admin account on an empty database so
// the first login is possible.
func (s *MemberService) EnsureAdmin(ctx context.Context, name, email string) error {
	count, err := s.members.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = s.members.Create(ctx, &model.Member{
		Name:   name,
		Email:  email,
		Role:   constants.RoleAdmin,
		Status: constants.MemberActive,
	})
	if err == nil {
		log.Printf("created bootstrap admin account %s", email)
	}
	return err
}
