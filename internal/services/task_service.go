package services

import (
	"context"
	"errors"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/events"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

type TaskService struct {
	repo      *repository.TaskRepository
	sink      events.Sink
	paginator Paginator
}

// TaskPage is one page of a task listing. Marker is the marker id that was
// honored, nil when none was supplied or it was discarded.
type TaskPage struct {
	Tasks  []model.Task
	Total  int64
	Limit  int
	Marker *uint
}

func NewTaskService(repo *repository.TaskRepository, sink events.Sink, paginator Paginator) *TaskService {
	return &TaskService{
		repo:      repo,
		sink:      sink,
		paginator: paginator,
	}
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// ListTasks never rejects pagination input: the limit is clamped and an
// unusable marker is dropped.
func (s *TaskService) ListTasks(ctx context.Context, q dto.TaskQuery) (*TaskPage, error) {
	limit := s.paginator.ResolveLimit(q.Limit)

	marker, err := s.resolveMarker(ctx, q.MarkerID, q.StoryID)
	if err != nil {
		return nil, err
	}

	filter := repository.TaskFilter{
		StoryID:    q.StoryID,
		AssigneeID: q.AssigneeID,
	}

	tasks, err := s.repo.List(ctx, repository.TaskListOptions{
		TaskFilter: filter,
		Marker:     marker,
		Limit:      limit,
		SortField:  q.SortField,
		SortDir:    q.SortDir,
	})
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &TaskPage{
		Tasks: tasks,
		Total: total,
		Limit: limit,
	}
	if marker != nil {
		id := marker.ID
		page.Marker = &id
	}
	return page, nil
}

// resolveMarker drops markers that do not exist or that belong to a story
// other than the one being listed, so a cursor never crosses filter scopes.
func (s *TaskService) resolveMarker(ctx context.Context, markerID, storyID *uint) (*model.Task, error) {
	if markerID == nil {
		return nil, nil
	}

	marker, err := s.repo.FindByID(ctx, *markerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// Without a story filter any existing task is a valid cursor.
	if storyID != nil && marker.StoryID != *storyID {
		return nil, nil
	}
	return marker, nil
}

// CreateTask stores a new task owned by actorID. Any creator id in the
// request is ignored.
func (s *TaskService) CreateTask(ctx context.Context, actorID uint, req dto.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		Title:      req.Title,
		Status:     req.Status,
		IsActive:   true,
		CreatorID:  actorID,
		StoryID:    req.StoryID,
		ProjectID:  req.ProjectID,
		AssigneeID: req.AssigneeID,
		Priority:   req.Priority,
	}
	if task.Status == "" {
		task.Status = constants.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = constants.PriorityMedium
	}
	if req.IsActive != nil {
		task.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	if err := s.sink.Emit(ctx, TaskCreatedEvent(task, actorID)); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask applies the fields present in req and records what changed.
func (s *TaskService) UpdateTask(ctx context.Context, actorID, id uint, req dto.UpdateTaskRequest) (*model.Task, error) {
	original, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, updateFields(req))
	if err != nil {
		return nil, err
	}

	if err := s.sink.Emit(ctx, DiffEvents(original, updated, actorID)...); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTask records the deletion against the current snapshot and then
// removes the row.
func (s *TaskService) DeleteTask(ctx context.Context, actorID, id uint) error {
	original, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.sink.Emit(ctx, TaskDeletedEvent(original, actorID)); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func updateFields(req dto.UpdateTaskRequest) map[string]any {
	fields := make(map[string]any)

	if req.Title.Set && !req.Title.Null {
		fields["title"] = req.Title.Value
	}
	if req.Status.Set && !req.Status.Null {
		fields["status"] = req.Status.Value
	}
	if req.IsActive.Set && !req.IsActive.Null {
		fields["is_active"] = req.IsActive.Value
	}
	if req.Priority.Set && !req.Priority.Null {
		fields["priority"] = req.Priority.Value
	}
	if req.AssigneeID.Set {
		if req.AssigneeID.Null {
			fields["assignee_id"] = nil
		} else {
			fields["assignee_id"] = req.AssigneeID.Value
		}
	}

	return fields
}
