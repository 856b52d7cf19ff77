package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"task-board-system.com/task-board-system/internal/board"
	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
	apperrors "task-board-system.com/task-board-system/internal/errors"
	middleware "task-board-system.com/task-board-system/internal/http/middlewares"
	"task-board-system.com/task-board-system/internal/http/validators"
	model "task-board-system.com/task-board-system/internal/models"
	"task-board-system.com/task-board-system/internal/services"
)

type Handler struct {
	tasks    *services.TaskService
	members  *services.MemberService
	sessions *services.SessionService
	boards   *board.SessionManager
}

func NewHandler(
	tasks *services.TaskService,
	members *services.MemberService,
	sessions *services.SessionService,
	boards *board.SessionManager,
) *Handler {
	return &Handler{
		tasks:    tasks,
		members:  members,
		sessions: sessions,
		boards:   boards,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	viewer := currentMember(c)

	tasks, err := h.tasks.ListTasks(c.Request().Context(), viewer)
	if err != nil {
		return respondError(err)
	}

	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return err
	}
	tasks = board.Filter(tasks, criteria, time.Now().UTC())

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	viewer := currentMember(c)

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    constants.TaskPriority(req.Priority),
		AssigneeID:  req.AssigneeID,
		Project:     req.Project,
		Tags:        req.Tags,
	}
	if req.DueDate != "" {
		due, _ := validators.ParseDate(req.DueDate)
		task.DueDate = &due
	}

	created, err := h.tasks.CreateTask(c.Request().Context(), viewer, task)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"task": created})
}

func (h *Handler) GetTask(c echo.Context) error {
	viewer := currentMember(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	task, err := h.tasks.GetTask(c.Request().Context(), viewer, id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"task": task})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	viewer := currentMember(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.UpdateTask(c.Request().Context(), viewer, id, taskPatchFromRequest(&req))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"task": task})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	viewer := currentMember(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.tasks.DeleteTask(c.Request().Context(), viewer, id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) CreateComment(c echo.Context) error {
	viewer := currentMember(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	comment, err := h.tasks.CreateComment(c.Request().Context(), viewer, id, req.Text)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"comment": comment})
}

func (h *Handler) ListComments(c echo.Context) error {
	viewer := currentMember(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.tasks.ListComments(c.Request().Context(), viewer, id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}

func currentMember(c echo.Context) model.Member {
	member, _ := c.Get(middleware.ContextMember).(model.Member)
	return member
}

func sessionToken(c echo.Context) string {
	token, _ := c.Get(middleware.ContextToken).(string)
	return token
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func respondError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}
	return echo.NewHTTPError(apperrors.StatusCode(err), "unexpected error")
}

func criteriaFromQuery(c echo.Context) (board.Criteria, error) {
	criteria := board.Criteria{
		Search:     c.QueryParam("search"),
		Assignee:   c.QueryParam("assignee"),
		Project:    c.QueryParam("project"),
		Department: c.QueryParam("department"),
		Overdue:    c.QueryParam("overdue") == "true",
	}

	if v := c.QueryParam("status"); v != "" {
		status := constants.TaskStatus(v)
		if !status.Valid() {
			return board.Criteria{}, echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		criteria.Status = status
	}
	if v := c.QueryParam("priority"); v != "" {
		priority := constants.TaskPriority(v)
		if !priority.Valid() {
			return board.Criteria{}, echo.NewHTTPError(http.StatusBadRequest, "invalid priority filter")
		}
		criteria.Priority = priority
	}

	if v := c.QueryParam("due_from"); v != "" {
		t, err := validators.ParseDate(v)
		if err != nil {
			return board.Criteria{}, echo.NewHTTPError(http.StatusBadRequest, "due_from must be YYYY-MM-DD or RFC3339")
		}
		criteria.DueFrom = &t
	}
	if v := c.QueryParam("due_to"); v != "" {
		t, err := validators.ParseDate(v)
		if err != nil {
			return board.Criteria{}, echo.NewHTTPError(http.StatusBadRequest, "due_to must be YYYY-MM-DD or RFC3339")
		}
		criteria.DueTo = &t
	}
	return criteria, nil
}

func taskPatchFromRequest(req *dto.UpdateTaskRequest) model.TaskPatch {
	patch := model.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Project:     req.Project,
		Tags:        req.Tags,
	}
	if req.Status != nil {
		status := constants.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := constants.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}
	if req.DueDate != nil {
		due, _ := validators.ParseDate(*req.DueDate)
		patch.DueDate = &due
	}
	return patch
}
