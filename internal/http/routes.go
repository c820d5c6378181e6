package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"task-tracker.com/task-tracker/internal/auth"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/services"
)

type Dependencies struct {
	Tasks              *services.TaskService
	Timeline           *services.TimelineService
	Tokens             *auth.TokenManager
	Log                zerolog.Logger
	RateLimitPerMinute int
}

// Register wires middlewares and routes. Reads are open to guests; writes
// need a bearer token.
func Register(e *echo.Echo, d Dependencies) {
	e.HTTPErrorHandler = ErrorHandler(d.Log)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomw.Recover())
	if d.RateLimitPerMinute > 0 {
		e.Use(middleware.RateLimiter(d.RateLimitPerMinute, time.Minute))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(d.Tokens)

	tasks := NewTaskHandler(d.Tasks)
	e.GET("/tasks", tasks.ListTasks)
	e.GET("/tasks/:id", tasks.GetTask)
	e.POST("/tasks", tasks.CreateTask, requireAuth)
	e.PUT("/tasks/:id", tasks.UpdateTask, requireAuth)
	e.DELETE("/tasks/:id", tasks.DeleteTask, requireAuth)

	timeline := NewTimelineHandler(d.Timeline)
	e.GET("/stories/:id/events", timeline.ListStoryEvents)
}
