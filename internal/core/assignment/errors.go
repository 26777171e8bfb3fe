package assignment

import "github.com/ogurasousui/timetrack/internal/core/record"

var (
	ErrEmptyName           = record.NewError(record.ErrValidation, "assignment: project name is required")
	ErrSelectionRequired   = record.NewError(record.ErrValidation, "assignment: project and selection are required")
	ErrInvalidStrategy     = record.NewError(record.ErrValidation, "assignment: invalid assignment strategy")
	ErrDuplicateAssignment = record.NewError(record.ErrDuplicate, "assignment: task is already assigned to the project")
	ErrProjectNotFound     = record.NewError(record.ErrNotFound, "assignment: project not found")
	ErrClientNotFound      = record.NewError(record.ErrNotFound, "assignment: client not found")
	ErrTeamNotFound        = record.NewError(record.ErrNotFound, "assignment: team not found")
	ErrStaffNotFound       = record.NewError(record.ErrNotFound, "assignment: staff not found")
	ErrTaskNotFound        = record.NewError(record.ErrNotFound, "assignment: task not found")
	ErrNotActive           = record.NewError(record.ErrConflict, "assignment: project is not active")
)
