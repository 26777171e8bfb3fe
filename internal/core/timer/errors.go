package timer

import "github.com/ogurasousui/timetrack/internal/core/record"

var (
	ErrMissingFields   = record.NewError(record.ErrValidation, "timer: staff, project and task are required")
	ErrInvalidDuration = record.NewError(record.ErrValidation, "timer: end time precedes start time")
	ErrAlreadyRunning  = record.NewError(record.ErrConflict, "timer: a session is already running")
	ErrNotRunning      = record.NewError(record.ErrConflict, "timer: no session is running")
	ErrUnauthorized    = record.NewError(record.ErrUnauthorized, "timer: project and task are not assigned to this staff")
)
