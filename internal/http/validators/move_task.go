package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
)

func ValidateMoveTaskRequest(r *dto.MoveTaskRequest) error {
	if r.TaskID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}
	if r.TargetColumn != nil && !constants.TaskStatus(*r.TargetColumn).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "target_column must be one of todo, in-progress, review, done")
	}
	return nil
}
