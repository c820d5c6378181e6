package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/services"
)

type TimelineHandler struct {
	timelineService *services.TimelineService
}

func NewTimelineHandler(timelineService *services.TimelineService) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}

func (h *TimelineHandler) ListStoryEvents(c echo.Context) error {
	storyID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	page, err := h.timelineService.ListStoryEvents(c.Request().Context(), dto.EventQuery{
		StoryID:  storyID,
		MarkerID: lenientID(c, "marker"),
		Limit:    lenientInt(c, "limit"),
	})
	if err != nil {
		return err
	}

	setPageHeaders(c, page.Limit, page.Total, page.Marker)

	events := page.Events
	if events == nil {
		events = []model.TimelineEvent{}
	}
	return c.JSON(http.StatusOK, events)
}
