package services

import (
	"context"
	"strings"

	"task-board-system.com/task-board-system/internal/board"
	"task-board-system.com/task-board-system/internal/constants"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	model "task-board-system.com/task-board-system/internal/models"
	repository "task-board-system.com/task-board-system/internal/repositories"
)

// TaskService is the permission boundary in front of the task repository.
// Every check goes through the board package's gate so the HTTP layer and
// the board view can never disagree about what a member may do.
type TaskService struct {
	tasks    *repository.TaskRepository
	comments *repository.CommentRepository
}

func NewTaskService(tasks *repository.TaskRepository, comments *repository.CommentRepository) *TaskService {
	return &TaskService{
		tasks:    tasks,
		comments: comments,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, viewer model.Member) ([]model.Task, error) {
	return s.tasks.List(ctx, viewer)
}

func (s *TaskService) GetTask(ctx context.Context, viewer model.Member, id int64) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !board.CanView(viewer, *task) {
		return nil, apperrors.ErrForbidden
	}
	return task, nil
}

// CreateTask persists a new task for the viewer. New tasks always enter the
// board in the todo column.
func (s *TaskService) CreateTask(ctx context.Context, viewer model.Member, task *model.Task) (*model.Task, error) {
	if task.Priority == "" {
		task.Priority = constants.PriorityMedium
	}
	if !task.Priority.Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	task.Status = constants.StatusTodo
	task.CreatedBy = viewer.ID
	task.CreatedByName = viewer.Name

	return s.tasks.Create(ctx, task)
}

func (s *TaskService) UpdateTask(ctx context.Context, viewer model.Member, id int64, patch model.TaskPatch) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !board.CanEdit(viewer, *task) {
		return nil, apperrors.ErrForbidden
	}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		if !board.CanChangeStatus(viewer, *task) {
			return nil, apperrors.ErrForbidden
		}
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	return s.tasks.UpdatePartial(ctx, id, patch)
}

func (s *TaskService) DeleteTask(ctx context.Context, viewer model.Member, id int64) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !board.CanDelete(viewer, *task) {
		return apperrors.ErrForbidden
	}
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) CreateComment(ctx context.Context, viewer model.Member, taskID int64, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.ErrCommentTextRequired
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !board.CanView(viewer, *task) {
		return nil, apperrors.ErrForbidden
	}

	return s.comments.Create(ctx, &model.Comment{
		TaskID:     taskID,
		Text:       text,
		AuthorID:   viewer.ID,
		AuthorName: viewer.Name,
	})
}

func (s *TaskService) ListComments(ctx context.Context, viewer model.Member, taskID int64) ([]model.Comment, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !board.CanView(viewer, *task) {
		return nil, apperrors.ErrForbidden
	}
	return s.comments.ListByTask(ctx, taskID)
}
