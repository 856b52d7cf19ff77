package model

import (
	"time"

	"task-board-system.com/task-board-system/internal/constants"
)

type Member struct {
	ID         int64                  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string                 `gorm:"not null" json:"name"`
	Email      string                 `gorm:"not null;uniqueIndex" json:"email"`
	Role       constants.Role         `gorm:"type:varchar(20);not null" json:"role"`
	Department string                 `json:"department"`
	Status     constants.MemberStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// MemberPatch carries a partial member update. Nil fields are left untouched.
type MemberPatch struct {
	Name       *string
	Email      *string
	Role       *constants.Role
	Department *string
	Status     *constants.MemberStatus
}
