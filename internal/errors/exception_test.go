package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("Task %d not found", 7), http.StatusNotFound},
		{"not found sentinel", ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get task: %w", ErrNotFound), http.StatusNotFound},
		{"duplicate entry", DuplicateEntry("", "tasks", "x", nil), http.StatusBadRequest},
		{"reference", ReferenceError("", "tasks", "story_id", "3", nil), http.StatusBadRequest},
		{"deadlock", DBError(KindDBDeadLock, "", nil), http.StatusBadRequest},
		{"invalid sort key", InvalidSortKey("bogus"), http.StatusBadRequest},
		{"explicit status", &Exception{Kind: KindDB, Message: "down", StatusCode: http.StatusServiceUnavailable}, http.StatusServiceUnavailable},
		{"echo http error", echo.NewHTTPError(http.StatusUnauthorized, "nope"), http.StatusUnauthorized},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestExceptionIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("list: %w", InvalidSortKey("bogus"))

	assert.True(t, errors.Is(err, ErrDBInvalidSortKey))
	assert.False(t, errors.Is(err, ErrNotFound))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindDBInvalidSortKey, kind)
	assert.True(t, kind.IsDB())
	assert.False(t, KindNotFound.IsDB())
}

func TestDuplicateEntryMessage(t *testing.T) {
	assert.Equal(t, "Database object already exists.", DuplicateEntry("", "", "", nil).Message)
	assert.Equal(t,
		"Database object 'tasks' with field value 'abc' already exists.",
		DuplicateEntry("", "tasks", "abc", nil).Message)
	assert.Equal(t,
		"Create failed. Database object 'tasks' with some of unique fields already exists.",
		DuplicateEntry("Create failed.", "tasks", "", nil).Message)
}

func TestReferenceErrorMessage(t *testing.T) {
	assert.Equal(t, "Foreign key error.", ReferenceError("", "", "", "", nil).Message)

	e := ReferenceError("", "tasks", "story_id", "3", nil)
	assert.Equal(t, "Foreign key error. Error in object 'tasks'. Field 'story_id' value '3' is invalid.", e.Message)
	assert.Equal(t, "story_id", e.Field)
	assert.Equal(t, "3", e.Value)
}

func TestFromDB(t *testing.T) {
	assert.NoError(t, FromDB(nil, "tasks"))

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"record not found", gorm.ErrRecordNotFound, KindNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, KindDBDuplicateEntry},
		{"foreign key", gorm.ErrForeignKeyViolated, KindDBReference},
		{"invalid field", gorm.ErrInvalidField, KindDBColumn},
		{"locked", errors.New("database is locked"), KindDBDeadLock},
		{"no column", errors.New("no such column: bogus"), KindDBColumn},
		{"closed", errors.New("sql: database is closed"), KindDBConnection},
		{"other", errors.New("disk I/O error"), KindDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDB(tt.err, "tasks")
			kind, ok := KindOf(got)
			require.True(t, ok)
			assert.Equal(t, tt.want, kind)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	original := NotFound("Task 1 not found")
	assert.Same(t, original, FromDB(original, "tasks"))
}
