package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-board-system.com/task-board-system/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/login", h.Login)

	authed := e.Group("", middleware.Auth(h.sessions.Resolve))

	authed.POST("/logout", h.Logout)

	authed.GET("/tasks", h.ListTasks)
	authed.POST("/tasks", h.CreateTask)
	authed.GET("/tasks/:id", h.GetTask)
	authed.PATCH("/tasks/:id", h.UpdateTask)
	authed.DELETE("/tasks/:id", h.DeleteTask)

	authed.POST("/tasks/:id/comments", h.CreateComment)
	authed.GET("/tasks/:id/comments", h.ListComments)

	authed.GET("/members", h.ListMembers)
	authed.POST("/members", h.CreateMember)
	authed.PATCH("/members/:id", h.UpdateMember)
	authed.DELETE("/members/:id", h.DeleteMember)

	authed.GET("/board", h.GetBoard)
	authed.POST("/board/move", h.MoveTask)
}
