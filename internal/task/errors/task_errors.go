package taskerrors

import (
	"net/http"

	"hrapp/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"task not found",
		http.StatusNotFound,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeValidation,
		"invalid due_date, expected RFC3339 or YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.ErrForbidden
)
