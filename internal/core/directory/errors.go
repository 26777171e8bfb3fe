package directory

import "github.com/ogurasousui/timetrack/internal/core/record"

var (
	ErrEmptyName         = record.NewError(record.ErrValidation, "directory: name is required")
	ErrInvalidCollection = record.NewError(record.ErrValidation, "directory: invalid collection")
	ErrInvalidTaskKind   = record.NewError(record.ErrValidation, "directory: invalid task kind")
	ErrInvalidShiftKind  = record.NewError(record.ErrValidation, "directory: invalid shift kind")
	ErrInvalidClock      = record.NewError(record.ErrValidation, "directory: time must be HH:MM")
	ErrInvalidWeekday    = record.NewError(record.ErrValidation, "directory: invalid weekday")
	ErrDaysRequired      = record.NewError(record.ErrValidation, "directory: fixed shift requires applicable days")
	ErrDuplicateName     = record.NewError(record.ErrDuplicate, "directory: name already exists")
	ErrEntryNotFound     = record.NewError(record.ErrNotFound, "directory: entry not found")
	ErrShiftNotFound     = record.NewError(record.ErrNotFound, "directory: shift time not found")
	ErrNotActive         = record.NewError(record.ErrConflict, "directory: record is not active")
)
