package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

const tasksObject = "tasks"

// sortColumns lists the task fields a listing can be ordered by.
var sortColumns = map[string]struct{}{
	"id":          {},
	"title":       {},
	"status":      {},
	"is_active":   {},
	"creator_id":  {},
	"story_id":    {},
	"project_id":  {},
	"assignee_id": {},
	"priority":    {},
	"created_at":  {},
	"updated_at":  {},
}

type TaskFilter struct {
	StoryID    *uint
	AssigneeID *uint
}

type TaskListOptions struct {
	TaskFilter
	Marker    *model.Task
	Limit     int
	SortField string
	SortDir   constants.SortDirection
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return apperrors.FromDB(err, tasksObject)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Task %d not found", id)
		}
		return nil, apperrors.FromDB(err, tasksObject)
	}
	return &task, nil
}

// List returns one page of tasks ordered by the sort field and then id, both
// in the requested direction. A marker excludes itself and everything before
// it in that order.
func (r *TaskRepository) List(ctx context.Context, opts TaskListOptions) ([]model.Task, error) {
	sortField := opts.SortField
	if sortField == "" {
		sortField = "id"
	}
	if _, ok := sortColumns[sortField]; !ok {
		return nil, apperrors.InvalidSortKey(sortField)
	}

	dir := opts.SortDir
	if dir != constants.SortDesc {
		dir = constants.SortAsc
	}

	query := applyTaskFilter(r.db.WithContext(ctx).Model(&model.Task{}), opts.TaskFilter)

	if opts.Marker != nil {
		clause, args := markerCondition(sortField, dir, opts.Marker)
		query = query.Where(clause, args...)
	}

	if sortField == "id" {
		query = query.Order(fmt.Sprintf("id %s", dir))
	} else {
		query = query.Order(fmt.Sprintf("%s %s, id %s", sortField, dir, dir))
	}

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, apperrors.FromDB(err, tasksObject)
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter TaskFilter) (int64, error) {
	var count int64
	query := applyTaskFilter(r.db.WithContext(ctx).Model(&model.Task{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperrors.FromDB(err, tasksObject)
	}
	return count, nil
}

// Update writes the given columns and returns the stored row afterwards.
func (r *TaskRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.Task, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(fields)

	if res.Error != nil {
		return nil, apperrors.FromDB(res.Error, tasksObject)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("Task %d not found", id)
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, tasksObject)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Task %d not found", id)
	}
	return nil
}

func applyTaskFilter(query *gorm.DB, filter TaskFilter) *gorm.DB {
	if filter.StoryID != nil {
		query = query.Where("story_id = ?", *filter.StoryID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	return query
}

// markerCondition builds the keyset bound for (column, id). SQLite orders
// NULL before any value ascending and after any value descending, which only
// matters for assignee_id.
func markerCondition(column string, dir constants.SortDirection, marker *model.Task) (string, []any) {
	if column == "id" {
		if dir == constants.SortDesc {
			return "id < ?", []any{marker.ID}
		}
		return "id > ?", []any{marker.ID}
	}

	value, isNull := sortValue(column, marker)

	if dir == constants.SortDesc {
		if isNull {
			return fmt.Sprintf("(%s IS NULL AND id < ?)", column), []any{marker.ID}
		}
		return fmt.Sprintf("(%[1]s < ? OR (%[1]s = ? AND id < ?) OR %[1]s IS NULL)", column),
			[]any{value, value, marker.ID}
	}

	if isNull {
		return fmt.Sprintf("((%[1]s IS NULL AND id > ?) OR %[1]s IS NOT NULL)", column), []any{marker.ID}
	}
	return fmt.Sprintf("(%[1]s > ? OR (%[1]s = ? AND id > ?))", column),
		[]any{value, value, marker.ID}
}

func sortValue(column string, t *model.Task) (any, bool) {
	switch column {
	case "title":
		return t.Title, false
	case "status":
		return t.Status, false
	case "is_active":
		return t.IsActive, false
	case "creator_id":
		return t.CreatorID, false
	case "story_id":
		return t.StoryID, false
	case "project_id":
		return t.ProjectID, false
	case "assignee_id":
		if t.AssigneeID == nil {
			return nil, true
		}
		return *t.AssigneeID, false
	case "priority":
		return t.Priority, false
	case "created_at":
		return t.CreatedAt, false
	case "updated_at":
		return t.UpdatedAt, false
	}
	return t.ID, false
}
