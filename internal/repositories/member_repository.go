package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "task-board-system.com/task-board-system/internal/errors"
	model "task-board-system.com/task-board-system/internal/models"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) List(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	err := r.db.WithContext(ctx).Order("name asc").Find(&members).Error
	return members, err
}

func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).First(&member, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	if _, err := r.FindByEmail(ctx, member.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	}

	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (r *MemberRepository) UpdatePartial(ctx context.Context, id int64, patch model.MemberPatch) (*model.Member, error) {
	member, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil && *patch.Name != member.Name {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil && *patch.Email != member.Email {
		if _, err := r.FindByEmail(ctx, *patch.Email); err == nil {
			return nil, apperrors.ErrEmailTaken
		}
		updates["email"] = *patch.Email
	}
	if patch.Role != nil && *patch.Role != member.Role {
		updates["role"] = *patch.Role
	}
	if patch.Department != nil && *patch.Department != member.Department {
		updates["department"] = *patch.Department
	}
	if patch.Status != nil && *patch.Status != member.Status {
		updates["status"] = *patch.Status
	}
	if len(updates) == 0 {
		return member, nil
	}
	updates["updated_at"] = time.Now().UTC()

	err = r.db.WithContext(ctx).Model(&model.Member{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Member{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Member{}).Count(&count).Error
	return count, err
}
