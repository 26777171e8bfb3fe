package staff

import "github.com/ogurasousui/timetrack/internal/core/record"

var (
	ErrMissingFields         = record.NewError(record.ErrValidation, "staff: required fields are missing")
	ErrInvalidEmail          = record.NewError(record.ErrValidation, "staff: invalid email")
	ErrWeakPassword          = record.NewError(record.ErrValidation, "staff: password must be at least 8 characters and contain an uppercase letter, a digit and a symbol")
	ErrInvalidActivationLink = record.NewError(record.ErrValidation, "staff: invalid activation link")
	ErrInvalidResetToken     = record.NewError(record.ErrValidation, "staff: invalid password reset link")
	ErrDuplicateEmail        = record.NewError(record.ErrDuplicate, "staff: email already exists")
	ErrStaffNotFound         = record.NewError(record.ErrNotFound, "staff: staff not found")
	ErrTeamNotFound          = record.NewError(record.ErrNotFound, "staff: team not found")
	ErrStaffTypeNotFound     = record.NewError(record.ErrNotFound, "staff: staff type not found")
	ErrShiftTimeNotFound     = record.NewError(record.ErrNotFound, "staff: shift time not found")
	ErrStaffDeleted          = record.NewError(record.ErrConflict, "staff: staff is deleted")
	ErrInvalidCredentials    = record.NewError(record.ErrUnauthorized, "staff: invalid email or password")
	ErrAccountNotActive      = record.NewError(record.ErrUnauthorized, "staff: account is not active")
)
