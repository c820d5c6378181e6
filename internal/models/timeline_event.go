package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

// TimelineEvent is an append-only audit record attached to a story.
type TimelineEvent struct {
	ID        uint                `gorm:"primaryKey" json:"id"`
	StoryID   uint                `gorm:"not null;index" json:"story_id"`
	EventType constants.EventType `gorm:"type:varchar(32);not null" json:"event_type"`
	AuthorID  uint                `gorm:"not null" json:"author_id"`
	EventInfo EventInfo           `gorm:"type:text;serializer:json" json:"event_info"`
	CreatedAt time.Time           `json:"created_at"`
}

func (TimelineEvent) TableName() string {
	return "timeline_events"
}

// EventInfo carries the kind-specific payload of a timeline event.
type EventInfo struct {
	TaskID        uint                   `json:"task_id"`
	TaskTitle     string                 `json:"task_title"`
	OldStatus     constants.TaskStatus   `json:"old_status,omitempty"`
	NewStatus     constants.TaskStatus   `json:"new_status,omitempty"`
	OldPriority   constants.TaskPriority `json:"old_priority,omitempty"`
	NewPriority   constants.TaskPriority `json:"new_priority,omitempty"`
	OldAssigneeID *uint                  `json:"old_assignee_id,omitempty"`
	NewAssigneeID *uint                  `json:"new_assignee_id,omitempty"`

	// Set only on task_created and task_deleted snapshots.
	ProjectID uint  `json:"project_id,omitempty"`
	CreatorID uint  `json:"creator_id,omitempty"`
	IsActive  *bool `json:"is_active,omitempty"`
}
