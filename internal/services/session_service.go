package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"task-board-system.com/task-board-system/internal/constants"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	model "task-board-system.com/task-board-system/internal/models"
	repository "task-board-system.com/task-board-system/internal/repositories"
	"task-board-system.com/task-board-system/internal/sessions"
)

// SessionService issues and resolves opaque session tokens. The token
// format carries no meaning; all state lives in the session store.
type SessionService struct {
	store   sessions.SessionStore
	members *repository.MemberRepository
	ttl     time.Duration
}

func NewSessionService(store sessions.SessionStore, members *repository.MemberRepository, ttl time.Duration) *SessionService {
	return &SessionService{
		store:   store,
		members: members,
		ttl:     ttl,
	}
}

func (s *SessionService) Login(ctx context.Context, email string) (string, *model.Member, error) {
	member, err := s.members.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if member.Status != constants.MemberActive {
		return "", nil, apperrors.ErrForbidden
	}

	token := uuid.NewString()
	if err := s.store.Save(ctx, token, member.ID, s.ttl); err != nil {
		return "", nil, err
	}
	return token, member, nil
}

func (s *SessionService) Resolve(ctx context.Context, token string) (*model.Member, error) {
	memberID, err := s.store.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if member.Status != constants.MemberActive {
		return nil, apperrors.ErrUnauthorized
	}
	return member, nil
}

func (s *SessionService) Logout(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}
