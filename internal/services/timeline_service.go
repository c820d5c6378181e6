package services

import (
	"context"
	"errors"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

type TimelineService struct {
	repo      *repository.TimelineRepository
	paginator Paginator
}

type EventPage struct {
	Events []model.TimelineEvent
	Total  int64
	Limit  int
	Marker *uint
}

func NewTimelineService(repo *repository.TimelineRepository, paginator Paginator) *TimelineService {
	return &TimelineService{repo: repo, paginator: paginator}
}

// ListStoryEvents pages through a story's timeline with the same leniency as
// task listings: bad limits are clamped and foreign markers are dropped.
func (s *TimelineService) ListStoryEvents(ctx context.Context, q dto.EventQuery) (*EventPage, error) {
	limit := s.paginator.ResolveLimit(q.Limit)

	var markerID *uint
	if q.MarkerID != nil {
		marker, err := s.repo.FindByID(ctx, *q.MarkerID)
		switch {
		case err == nil && marker.StoryID == q.StoryID:
			markerID = &marker.ID
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			return nil, err
		}
	}

	events, err := s.repo.ListByStory(ctx, q.StoryID, markerID, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountByStory(ctx, q.StoryID)
	if err != nil {
		return nil, err
	}

	return &EventPage{
		Events: events,
		Total:  total,
		Limit:  limit,
		Marker: markerID,
	}, nil
}
