package board

import (
	"context"

	model "task-board-system.com/task-board-system/internal/models"
)

// Gateway is the collaborator behind the board: the authoritative task list
// lives on its side. Implementations are expected to scope ListTasks to the
// viewing member server-side.
type Gateway interface {
	ListTasks(ctx context.Context) ([]model.Task, error)

	UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error)

	DeleteTask(ctx context.Context, id int64) error

	ListMembers(ctx context.Context) ([]model.Member, error)

	CreateComment(ctx context.Context, taskID int64, text string) (*model.Comment, error)
}
