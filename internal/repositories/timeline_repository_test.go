package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

func newEvent(storyID uint, kind constants.EventType) *model.TimelineEvent {
	return &model.TimelineEvent{
		StoryID:   storyID,
		EventType: kind,
		AuthorID:  42,
		EventInfo: model.EventInfo{TaskID: 1, TaskTitle: "t"},
	}
}

func TestTimelineRepository_EmitAndList(t *testing.T) {
	repo := NewTimelineRepository(setupTestDB(t))
	ctx := context.Background()

	status := newEvent(3, constants.EventStatusChanged)
	status.EventInfo.OldStatus = constants.StatusTodo
	status.EventInfo.NewStatus = constants.StatusReview
	assignee := newEvent(3, constants.EventAssigneeChanged)
	assignee.EventInfo.NewAssigneeID = ptr(uint(9))

	require.NoError(t, repo.Emit(ctx, status, assignee, newEvent(4, constants.EventTaskCreated)))
	require.NoError(t, repo.Emit(ctx))

	events, err := repo.ListByStory(ctx, 3, nil, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, constants.EventStatusChanged, events[0].EventType)
	assert.Equal(t, constants.StatusReview, events[0].EventInfo.NewStatus)
	assert.Equal(t, constants.EventAssigneeChanged, events[1].EventType)
	require.NotNil(t, events[1].EventInfo.NewAssigneeID)
	assert.Equal(t, uint(9), *events[1].EventInfo.NewAssigneeID)

	events, err = repo.ListByStory(ctx, 3, &status.ID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, assignee.ID, events[0].ID)

	count, err := repo.CountByStory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTimelineRepository_FindByID(t *testing.T) {
	repo := NewTimelineRepository(setupTestDB(t))
	ctx := context.Background()

	event := newEvent(3, constants.EventTaskDeleted)
	require.NoError(t, repo.Emit(ctx, event))

	found, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), found.StoryID)
	assert.Equal(t, "t", found.EventInfo.TaskTitle)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
