package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Task struct {
	ID         uint                   `gorm:"primaryKey" json:"id"`
	Title      string                 `gorm:"size:255;not null" json:"title"`
	Status     constants.TaskStatus   `gorm:"type:varchar(20);not null;default:todo" json:"status"`
	IsActive   bool                   `gorm:"not null" json:"is_active"`
	CreatorID  uint                   `gorm:"not null;index" json:"creator_id"`
	StoryID    uint                   `gorm:"not null;index" json:"story_id"`
	ProjectID  uint                   `gorm:"not null;index" json:"project_id"`
	AssigneeID *uint                  `gorm:"index" json:"assignee_id"`
	Priority   constants.TaskPriority `gorm:"type:varchar(20);not null;default:medium" json:"priority"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
