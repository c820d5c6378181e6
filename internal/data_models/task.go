package dto

import (
	"task-tracker.com/task-tracker/internal/constants"
)

// CreateTaskRequest is the body of POST /tasks. CreatorID is accepted so that
// clients sending full task documents still decode, but the server always
// replaces it with the acting user.
type CreateTaskRequest struct {
	Title      string                 `json:"title" validate:"required,max=255"`
	Status     constants.TaskStatus   `json:"status" validate:"omitempty,oneof=todo inprogress invalid review merged"`
	IsActive   *bool                  `json:"is_active"`
	CreatorID  *uint                  `json:"creator_id"`
	StoryID    uint                   `json:"story_id" validate:"required"`
	ProjectID  uint                   `json:"project_id" validate:"required"`
	AssigneeID *uint                  `json:"assignee_id" validate:"omitempty,gt=0"`
	Priority   constants.TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest is the body of PUT /tasks/:id. Only keys present in the
// body are applied. Story, project and creator are not updatable and are
// therefore not decoded at all.
type UpdateTaskRequest struct {
	Title      Optional[string]                 `json:"title"`
	Status     Optional[constants.TaskStatus]   `json:"status"`
	IsActive   Optional[bool]                   `json:"is_active"`
	AssigneeID Optional[uint]                   `json:"assignee_id"`
	Priority   Optional[constants.TaskPriority] `json:"priority"`
}

func (r UpdateTaskRequest) Empty() bool {
	return !r.Title.Set && !r.Status.Set && !r.IsActive.Set && !r.AssigneeID.Set && !r.Priority.Set
}

// TaskQuery holds the list filters and pagination inputs of GET /tasks.
type TaskQuery struct {
	StoryID    *uint
	AssigneeID *uint
	MarkerID   *uint
	Limit      *int
	SortField  string
	SortDir    constants.SortDirection
}

// EventQuery holds the pagination inputs of GET /stories/:id/events.
type EventQuery struct {
	StoryID  uint
	MarkerID *uint
	Limit    *int
}
