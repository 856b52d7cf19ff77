package services

import (
	"context"

	model "task-board-system.com/task-board-system/internal/models"
)

// BoardGateway binds the task and member services to one viewing member,
// satisfying the board package's Gateway interface. The repository applies
// the viewer's scope server-side, so the board's cache never holds tasks
// the viewer is not allowed to see.
type BoardGateway struct {
	tasks   *TaskService
	members *MemberService
	viewer  model.Member
}

func NewBoardGateway(tasks *TaskService, members *MemberService, viewer model.Member) *BoardGateway {
	return &BoardGateway{
		tasks:   tasks,
		members: members,
		viewer:  viewer,
	}
}

func (g *BoardGateway) ListTasks(ctx context.Context) ([]model.Task, error) {
	return g.tasks.ListTasks(ctx, g.viewer)
}

func (g *BoardGateway) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	return g.tasks.UpdateTask(ctx, g.viewer, id, patch)
}

func (g *BoardGateway) DeleteTask(ctx context.Context, id int64) error {
	return g.tasks.DeleteTask(ctx, g.viewer, id)
}

func (g *BoardGateway) ListMembers(ctx context.Context) ([]model.Member, error) {
	return g.members.ListMembers(ctx)
}

func (g *BoardGateway) CreateComment(ctx context.Context, taskID int64, text string) (*model.Comment, error) {
	return g.tasks.CreateComment(ctx, g.viewer, taskID, text)
}
