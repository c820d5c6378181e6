package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	storyID, err := filterID(c, "story_id")
	if err != nil {
		return err
	}
	assigneeID, err := filterID(c, "assignee_id")
	if err != nil {
		return err
	}

	query := dto.TaskQuery{
		StoryID:    storyID,
		AssigneeID: assigneeID,
		MarkerID:   lenientID(c, "marker"),
		Limit:      lenientInt(c, "limit"),
		SortField:  c.QueryParam("sort_field"),
		SortDir:    constants.ParseSortDirection(c.QueryParam("sort_dir")),
	}
	if query.SortField == "" {
		query.SortField = "id"
	}

	page, err := h.taskService.ListTasks(c.Request().Context(), query)
	if err != nil {
		return err
	}

	setPageHeaders(c, page.Limit, page.Total, page.Marker)

	tasks := page.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CreateTaskRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return apperrors.BadRequest("invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), actorID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return apperrors.BadRequest("invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), actorID, id, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), actorID, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
