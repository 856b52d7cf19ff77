package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
)

func ValidateCreateMemberRequest(r *dto.CreateMemberRequest) error {
	if strings.TrimSpace(r.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if !strings.Contains(r.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "a valid email is required")
	}
	if !constants.Role(r.Role).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be one of admin, manager, member")
	}
	return nil
}

func ValidateUpdateMemberRequest(r *dto.UpdateMemberRequest) error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name must not be empty")
	}
	if r.Email != nil && !strings.Contains(*r.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "a valid email is required")
	}
	if r.Role != nil && !constants.Role(*r.Role).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be one of admin, manager, member")
	}
	if r.Status != nil && !constants.MemberStatus(*r.Status).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be active or inactive")
	}
	return nil
}
