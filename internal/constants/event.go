package constants

type EventType string

const (
	EventTaskCreated     EventType = "task_created"
	EventStatusChanged   EventType = "status_changed"
	EventPriorityChanged EventType = "priority_changed"
	EventAssigneeChanged EventType = "assignee_changed"
	EventDetailsChanged  EventType = "details_changed"
	EventTaskDeleted     EventType = "task_deleted"
)
