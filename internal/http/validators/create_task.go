package validators

import (
	"strings"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

// ValidateCreateTaskRequest trims the title in place before checking it, so a
// blank title fails as missing.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	r.Title = strings.TrimSpace(r.Title)
	return toException(validate.Struct(r))
}
