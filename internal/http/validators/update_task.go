package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title must not be empty")
	}
	if r.Status != nil && !constants.TaskStatus(*r.Status).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be one of todo, in-progress, review, done")
	}
	if r.Priority != nil && !constants.TaskPriority(*r.Priority).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of low, medium, high, urgent")
	}
	if r.DueDate != nil {
		if _, err := ParseDate(*r.DueDate); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "due_date must be YYYY-MM-DD or RFC3339")
		}
	}
	return nil
}
