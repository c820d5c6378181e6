package validators

import (
	"strings"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

// ValidateUpdateTaskRequest checks only the fields present in the body. Null
// is accepted for assignee_id alone.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title.Set {
		if r.Title.Null {
			return fieldException("title", "must not be null")
		}
		r.Title.Value = strings.TrimSpace(r.Title.Value)
		if err := validate.Var(r.Title.Value, "required,max=255"); err != nil {
			return fieldException("title", "must be a non-empty string of at most 255 characters")
		}
	}

	if r.Status.Set {
		if r.Status.Null || !r.Status.Value.Valid() {
			return fieldException("status", "must be one of [todo inprogress invalid review merged]")
		}
	}

	if r.Priority.Set {
		if r.Priority.Null || !r.Priority.Value.Valid() {
			return fieldException("priority", "must be one of [low medium high]")
		}
	}

	if r.IsActive.Set && r.IsActive.Null {
		return fieldException("is_active", "must not be null")
	}

	if r.AssigneeID.Set && !r.AssigneeID.Null {
		if err := validate.Var(r.AssigneeID.Value, "gt=0"); err != nil {
			return fieldException("assignee_id", "must be greater than 0")
		}
	}

	return nil
}
