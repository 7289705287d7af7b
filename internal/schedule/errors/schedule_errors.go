package scheduleerrors

import (
	"net/http"

	"hrapp/internal/shared/apperror"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"schedule not found",
		http.StatusNotFound,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeValidation,
		"times must be in HH:MM format",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeValidation,
		"end_time must be after start_time",
		http.StatusBadRequest,
	)
	ErrScheduleConflict = apperror.New(
		apperror.CodeScheduleConflict,
		"schedule overlaps an existing schedule for this user and date",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.ErrForbidden
)
