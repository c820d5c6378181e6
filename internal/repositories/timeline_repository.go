package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

const timelineObject = "timeline_events"

// TimelineRepository stores timeline events. Rows are only ever inserted.
type TimelineRepository struct {
	db *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// Emit appends the events in order. It satisfies events.Sink.
func (r *TimelineRepository) Emit(ctx context.Context, events ...*model.TimelineEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(events).Error; err != nil {
		return apperrors.FromDB(err, timelineObject)
	}
	return nil
}

func (r *TimelineRepository) FindByID(ctx context.Context, id uint) (*model.TimelineEvent, error) {
	var event model.TimelineEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Event %d not found", id)
		}
		return nil, apperrors.FromDB(err, timelineObject)
	}
	return &event, nil
}

// ListByStory returns the story's events after markerID in insertion order.
func (r *TimelineRepository) ListByStory(ctx context.Context, storyID uint, markerID *uint, limit int) ([]model.TimelineEvent, error) {
	query := r.db.WithContext(ctx).Where("story_id = ?", storyID)
	if markerID != nil {
		query = query.Where("id > ?", *markerID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []model.TimelineEvent
	if err := query.Order("id asc").Find(&events).Error; err != nil {
		return nil, apperrors.FromDB(err, timelineObject)
	}
	return events, nil
}

func (r *TimelineRepository) CountByStory(ctx context.Context, storyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TimelineEvent{}).
		Where("story_id = ?", storyID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.FromDB(err, timelineObject)
	}
	return count, nil
}
