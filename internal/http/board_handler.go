package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"task-board-system.com/task-board-system/internal/board"
	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
	"task-board-system.com/task-board-system/internal/http/validators"
	"task-board-system.com/task-board-system/internal/services"
)

// boardSession resolves the caller's board session, loading the store on
// first use (or when an explicit reload is requested).
func (h *Handler) boardSession(c echo.Context) (*board.Session, error) {
	viewer := currentMember(c)
	gateway := services.NewBoardGateway(h.tasks, h.members, viewer)
	session := h.boards.Get(sessionToken(c), viewer, gateway)

	if !session.Store.Loaded() || c.QueryParam("reload") == "true" {
		if _, err := session.Store.Load(c.Request().Context()); err != nil {
			return nil, respondError(err)
		}
	}
	return session, nil
}

// GetBoard returns the filtered board grouped into columns, each task
// annotated with the viewer's allowed actions.
func (h *Handler) GetBoard(c echo.Context) error {
	session, err := h.boardSession(c)
	if err != nil {
		return err
	}

	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return err
	}
	tasks := board.Filter(session.Store.Tasks(), criteria, time.Now().UTC())

	resp := dto.BoardResponse{}
	for _, status := range constants.BoardColumns {
		col := dto.BoardColumn{ID: string(status), Tasks: []dto.BoardTask{}}
		for _, task := range tasks {
			if task.Status != status {
				continue
			}
			col.Tasks = append(col.Tasks, dto.BoardTask{
				Task:    task,
				Actions: board.AllowedActions(session.Viewer, task),
			})
		}
		resp.Columns = append(resp.Columns, col)
	}

	return c.JSON(http.StatusOK, resp)
}

// MoveTask runs a completed drag gesture through the reconciler.
func (h *Handler) MoveTask(c echo.Context) error {
	var req dto.MoveTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateMoveTaskRequest(&req); err != nil {
		return err
	}

	session, err := h.boardSession(c)
	if err != nil {
		return err
	}

	if err := session.Reconciler.DragStart(req.TaskID); err != nil {
		return respondError(err)
	}

	target := board.Target{TaskID: req.TargetTaskID}
	if req.TargetColumn != nil {
		column := constants.TaskStatus(*req.TargetColumn)
		target.Column = &column
	}

	result, err := session.Reconciler.DragEnd(c.Request().Context(), req.TaskID, target)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, result)
}
