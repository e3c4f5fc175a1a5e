package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"

	middleware "github.com/jessicacardoso1/taskmanager-web/internal/http/middlewares"
)

// Register wires the /Tarefas routes. The redis client is optional; when nil
// the rate limiter falls back to in-process buckets.
func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, redis rueidis.Client) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute, redis))

	e.GET("/Tarefas", h.ListTasks)
	e.GET("/Tarefas/:id", h.GetTask)
	e.POST("/Tarefas", h.CreateTask)
	e.PUT("/Tarefas/:id", h.UpdateTask)
	e.DELETE("/Tarefas/:id", h.DeleteTask)
}
