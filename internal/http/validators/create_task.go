package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.AssigneeID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "assignee_id is required")
	}
	if r.Priority != "" && !constants.TaskPriority(r.Priority).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of low, medium, high, urgent")
	}
	if r.DueDate != "" {
		if _, err := ParseDate(r.DueDate); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "due_date must be YYYY-MM-DD or RFC3339")
		}
	}
	return nil
}
