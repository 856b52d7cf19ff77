package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-board-system.com/task-board-system/internal/constants"
	dto "task-board-system.com/task-board-system/internal/data_models"
	"task-board-system.com/task-board-system/internal/http/validators"
	model "task-board-system.com/task-board-system/internal/models"
)

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	token, member, err := h.sessions.Login(c.Request().Context(), req.Email)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token":  token,
		"member": member,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	token := sessionToken(c)
	if err := h.sessions.Logout(c.Request().Context(), token); err != nil {
		return respondError(err)
	}
	h.boards.Drop(token)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) ListMembers(c echo.Context) error {
	members, err := h.members.ListMembers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"members": members})
}

func (h *Handler) CreateMember(c echo.Context) error {
	actor := currentMember(c)

	var req dto.CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateMemberRequest(&req); err != nil {
		return err
	}

	member, err := h.members.CreateMember(c.Request().Context(), actor, &model.Member{
		Name:       req.Name,
		Email:      req.Email,
		Role:       constants.Role(req.Role),
		Department: req.Department,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"member": member})
}

func (h *Handler) UpdateMember(c echo.Context) error {
	actor := currentMember(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateMemberRequest(&req); err != nil {
		return err
	}

	patch := model.MemberPatch{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	}
	if req.Role != nil {
		role := constants.Role(*req.Role)
		patch.Role = &role
	}
	if req.Status != nil {
		status := constants.MemberStatus(*req.Status)
		patch.Status = &status
	}

	member, err := h.members.UpdateMember(c.Request().Context(), actor, id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"member": member})
}

func (h *Handler) DeleteMember(c echo.Context) error {
	actor := currentMember(c)
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.members.DeleteMember(c.Request().Context(), actor, id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
