package model

import (
	"time"

	"task-board-system.com/task-board-system/internal/constants"
)

type Task struct {
	ID                 int64                  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string                 `gorm:"not null" json:"title"`
	Description        string                 `json:"description"`
	Status             constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority           constants.TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	AssigneeID         int64                  `gorm:"not null;index" json:"assignee_id"`
	AssigneeName       string                 `json:"assignee_name"`
	AssigneeDepartment string                 `json:"assignee_department"`
	CreatedBy          int64                  `gorm:"not null;index" json:"created_by"`
	CreatedByName      string                 `json:"created_by_name"`
	DueDate            *time.Time             `json:"due_date,omitempty"`
	Project            string                 `json:"project"`
	Tags               []string               `gorm:"serializer:json" json:"tags"`
	Version            uint                   `gorm:"not null;default:1" json:"version"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// TaskPatch carries a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *constants.TaskStatus
	Priority    *constants.TaskPriority
	AssigneeID  *int64
	DueDate     *time.Time
	Project     *string
	Tags        *[]string
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.AssigneeID == nil && p.DueDate == nil &&
		p.Project == nil && p.Tags == nil
}
