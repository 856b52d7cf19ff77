package repository

import (
	"context"
	"errors"
	"slices"
	"time"

	"gorm.io/gorm"

	"task-board-system.com/task-board-system/internal/constants"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	model "task-board-system.com/task-board-system/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns tasks in creation order. Viewers with the plain member role
// only get tasks they created or are assigned to; this is the server-side
// scope that client filters cannot widen.
func (r *TaskRepository) List(ctx context.Context, viewer model.Member) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Order("created_at asc, id asc")
	if viewer.Role == constants.RoleMember {
		query = query.Where("assignee_id = ? OR created_by = ?", viewer.ID, viewer.ID)
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Create persists a new task, denormalizing the assignee's name and
// department for display. The assignee must reference an existing member.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	assignee, err := r.findMember(ctx, task.AssigneeID)
	if err != nil {
		return nil, apperrors.ErrAssigneeNotFound
	}

	now := time.Now().UTC()
	task.AssigneeName = assignee.Name
	task.AssigneeDepartment = assignee.Department
	task.Version = 1
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// UpdatePartial applies the patch under the version guard. Fields equal to
// the current state are dropped first; a patch that changes nothing returns
// the task as-is without bumping updated_at or version, so repeating the
// same status commit is idempotent.
func (r *TaskRepository) UpdatePartial(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	task, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return task, nil
	}

	updated := *task
	cols, err := r.changedColumns(ctx, &updated, patch)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return task, nil
	}

	updated.Version = task.Version + 1
	updated.UpdatedAt = time.Now().UTC()
	cols = append(cols, "version", "updated_at")

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", id, task.Version).
		Select(cols).
		Updates(&updated)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrOptimisticLock
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// changedColumns mutates updated in place with the effective patch fields
// and returns the column list for the update statement.
func (r *TaskRepository) changedColumns(ctx context.Context, updated *model.Task, patch model.TaskPatch) ([]string, error) {
	var cols []string

	if patch.Title != nil && *patch.Title != updated.Title {
		updated.Title = *patch.Title
		cols = append(cols, "title")
	}
	if patch.Description != nil && *patch.Description != updated.Description {
		updated.Description = *patch.Description
		cols = append(cols, "description")
	}
	if patch.Status != nil && *patch.Status != updated.Status {
		updated.Status = *patch.Status
		cols = append(cols, "status")
	}
	if patch.Priority != nil && *patch.Priority != updated.Priority {
		updated.Priority = *patch.Priority
		cols = append(cols, "priority")
	}
	if patch.AssigneeID != nil && *patch.AssigneeID != updated.AssigneeID {
		assignee, err := r.findMember(ctx, *patch.AssigneeID)
		if err != nil {
			return nil, apperrors.ErrAssigneeNotFound
		}
		updated.AssigneeID = assignee.ID
		updated.AssigneeName = assignee.Name
		updated.AssigneeDepartment = assignee.Department
		cols = append(cols, "assignee_id", "assignee_name", "assignee_department")
	}
	if patch.DueDate != nil && (updated.DueDate == nil || !updated.DueDate.Equal(*patch.DueDate)) {
		updated.DueDate = patch.DueDate
		cols = append(cols, "due_date")
	}
	if patch.Project != nil && *patch.Project != updated.Project {
		updated.Project = *patch.Project
		cols = append(cols, "project")
	}
	if patch.Tags != nil && !slices.Equal(*patch.Tags, updated.Tags) {
		updated.Tags = *patch.Tags
		cols = append(cols, "tags")
	}

	return cols, nil
}

func (r *TaskRepository) findMember(ctx context.Context, id int64) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
