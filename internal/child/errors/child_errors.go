package childerrors

import (
	"net/http"

	"hrapp/internal/shared/apperror"
)

var (
	ErrChildNotFound = apperror.New(
		apperror.CodeNotFound,
		"child not found",
		http.StatusNotFound,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeValidation,
		"invalid date_of_birth, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.ErrForbidden
)
