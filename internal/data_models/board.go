package dto

import (
	"task-board-system.com/task-board-system/internal/board"
	model "task-board-system.com/task-board-system/internal/models"
)

// BoardTask pairs a task with what the viewer may do with it, so the client
// can gate its affordances without reimplementing the permission rules.
type BoardTask struct {
	model.Task
	Actions board.Actions `json:"actions"`
}

type BoardColumn struct {
	ID    string      `json:"id"`
	Tasks []BoardTask `json:"tasks"`
}

type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
}
