package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.NewDatabaseClient(":memory:")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return db
}

func ptr[T any](v T) *T { return &v }

func newTask(storyID uint, title string, priority constants.TaskPriority) *model.Task {
	return &model.Task{
		Title:     title,
		Status:    constants.StatusTodo,
		IsActive:  true,
		CreatorID: 1,
		StoryID:   storyID,
		ProjectID: 1,
		Priority:  priority,
	}
}

func taskIDs(tasks []model.Task) []uint {
	out := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestTaskRepository_CreateAndFind(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := newTask(3, "Write docs", constants.PriorityHigh)
	require.NoError(t, repo.Create(ctx, task))
	require.NotZero(t, task.ID)

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write docs", found.Title)
	assert.Equal(t, constants.PriorityHigh, found.Priority)
	assert.Nil(t, found.AssigneeID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.EqualError(t, err, "Task 999 not found")
}

func TestTaskRepository_ListSortByPriority(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	high := newTask(1, "a", constants.PriorityHigh)
	low := newTask(1, "b", constants.PriorityLow)
	medium1 := newTask(1, "c", constants.PriorityMedium)
	medium2 := newTask(1, "d", constants.PriorityMedium)
	for _, task := range []*model.Task{high, low, medium1, medium2} {
		require.NoError(t, repo.Create(ctx, task))
	}

	tasks, err := repo.List(ctx, TaskListOptions{SortField: "priority", SortDir: constants.SortAsc})
	require.NoError(t, err)
	assert.Equal(t, []uint{high.ID, low.ID, medium1.ID, medium2.ID}, taskIDs(tasks))

	tasks, err = repo.List(ctx, TaskListOptions{SortField: "priority", SortDir: constants.SortAsc, Marker: medium1})
	require.NoError(t, err)
	assert.Equal(t, []uint{medium2.ID}, taskIDs(tasks))

	tasks, err = repo.List(ctx, TaskListOptions{SortField: "priority", SortDir: constants.SortDesc, Marker: medium2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{medium1.ID, low.ID}, taskIDs(tasks))
}

func TestTaskRepository_ListByIDDescending(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	var created []*model.Task
	for i := 0; i < 4; i++ {
		task := newTask(1, "t", constants.PriorityLow)
		require.NoError(t, repo.Create(ctx, task))
		created = append(created, task)
	}

	tasks, err := repo.List(ctx, TaskListOptions{SortDir: constants.SortDesc, Marker: created[2]})
	require.NoError(t, err)
	assert.Equal(t, []uint{created[1].ID, created[0].ID}, taskIDs(tasks))
}

func TestTaskRepository_ListFilters(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	mine := newTask(3, "mine", constants.PriorityLow)
	mine.AssigneeID = ptr(uint(7))
	theirs := newTask(3, "theirs", constants.PriorityLow)
	theirs.AssigneeID = ptr(uint(8))
	elsewhere := newTask(4, "elsewhere", constants.PriorityLow)
	elsewhere.AssigneeID = ptr(uint(7))
	for _, task := range []*model.Task{mine, theirs, elsewhere} {
		require.NoError(t, repo.Create(ctx, task))
	}

	filter := TaskFilter{StoryID: ptr(uint(3)), AssigneeID: ptr(uint(7))}
	tasks, err := repo.List(ctx, TaskListOptions{TaskFilter: filter})
	require.NoError(t, err)
	assert.Equal(t, []uint{mine.ID}, taskIDs(tasks))

	count, err := repo.Count(ctx, TaskFilter{StoryID: ptr(uint(3))})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.Count(ctx, TaskFilter{AssigneeID: ptr(uint(7))})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.Count(ctx, TaskFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestTaskRepository_ListInvalidSortKey(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))

	_, err := repo.List(context.Background(), TaskListOptions{SortField: "title; DROP TABLE tasks"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDBInvalidSortKey)
	assert.Equal(t, 400, apperrors.StatusCode(err))
}

func TestTaskRepository_Update(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := newTask(3, "before", constants.PriorityLow)
	task.AssigneeID = ptr(uint(5))
	require.NoError(t, repo.Create(ctx, task))

	updated, err := repo.Update(ctx, task.ID, map[string]any{
		"title":       "after",
		"assignee_id": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.Nil(t, updated.AssigneeID)
	assert.Equal(t, constants.PriorityLow, updated.Priority)

	unchanged, err := repo.Update(ctx, task.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "after", unchanged.Title)

	_, err = repo.Update(ctx, 999, map[string]any{"title": "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.Update(ctx, 999, map[string]any{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := newTask(3, "gone", constants.PriorityLow)
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.Delete(ctx, task.ID))
	_, err := repo.FindByID(ctx, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, task.ID), apperrors.ErrNotFound)
}

func TestMarkerCondition(t *testing.T) {
	marker := &model.Task{ID: 5, Title: "m"}

	clause, args := markerCondition("id", constants.SortAsc, marker)
	assert.Equal(t, "id > ?", clause)
	assert.Equal(t, []any{uint(5)}, args)

	clause, args = markerCondition("title", constants.SortDesc, marker)
	assert.Equal(t, "(title < ? OR (title = ? AND id < ?) OR title IS NULL)", clause)
	assert.Equal(t, []any{"m", "m", uint(5)}, args)

	clause, args = markerCondition("assignee_id", constants.SortAsc, marker)
	assert.Equal(t, "((assignee_id IS NULL AND id > ?) OR assignee_id IS NOT NULL)", clause)
	assert.Equal(t, []any{uint(5)}, args)
}
