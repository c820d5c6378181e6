package services

import (
	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

// DiffEvents returns one event per tracked field that differs between the two
// snapshots, in the order status, priority, assignee. When none of them
// changed a single details_changed event is returned instead, so a change to
// an untracked field such as the title is only ever reported that way.
func DiffEvents(original, updated *model.Task, authorID uint) []*model.TimelineEvent {
	var out []*model.TimelineEvent

	if original.Status != updated.Status {
		e := newTaskEvent(original, authorID, constants.EventStatusChanged)
		e.EventInfo.OldStatus = original.Status
		e.EventInfo.NewStatus = updated.Status
		out = append(out, e)
	}

	if original.Priority != updated.Priority {
		e := newTaskEvent(original, authorID, constants.EventPriorityChanged)
		e.EventInfo.OldPriority = original.Priority
		e.EventInfo.NewPriority = updated.Priority
		out = append(out, e)
	}

	if !sameAssignee(original.AssigneeID, updated.AssigneeID) {
		e := newTaskEvent(original, authorID, constants.EventAssigneeChanged)
		e.EventInfo.OldAssigneeID = copyID(original.AssigneeID)
		e.EventInfo.NewAssigneeID = copyID(updated.AssigneeID)
		out = append(out, e)
	}

	if len(out) == 0 {
		out = append(out, newTaskEvent(original, authorID, constants.EventDetailsChanged))
	}

	return out
}

func TaskCreatedEvent(task *model.Task, authorID uint) *model.TimelineEvent {
	return snapshotEvent(task, authorID, constants.EventTaskCreated)
}

func TaskDeletedEvent(task *model.Task, authorID uint) *model.TimelineEvent {
	return snapshotEvent(task, authorID, constants.EventTaskDeleted)
}

func snapshotEvent(task *model.Task, authorID uint, kind constants.EventType) *model.TimelineEvent {
	e := newTaskEvent(task, authorID, kind)
	e.EventInfo.NewStatus = task.Status
	e.EventInfo.NewPriority = task.Priority
	e.EventInfo.NewAssigneeID = copyID(task.AssigneeID)
	e.EventInfo.ProjectID = task.ProjectID
	e.EventInfo.CreatorID = task.CreatorID
	active := task.IsActive
	e.EventInfo.IsActive = &active
	return e
}

func newTaskEvent(task *model.Task, authorID uint, kind constants.EventType) *model.TimelineEvent {
	return &model.TimelineEvent{
		StoryID:   task.StoryID,
		EventType: kind,
		AuthorID:  authorID,
		EventInfo: model.EventInfo{
			TaskID:    task.ID,
			TaskTitle: task.Title,
		},
	}
}

func sameAssignee(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
