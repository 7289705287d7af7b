package leaverequesterrors

import (
	"net/http"

	"hrapp/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"dates must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidStateTransition,
		"leave request is no longer pending",
		http.StatusBadRequest,
	)
	ErrStatusChangeForbidden = apperror.New(
		apperror.CodeForbidden,
		"only ADMIN or CHEF_SERVICE may approve or reject",
		http.StatusForbidden,
	)
	ErrForbidden = apperror.ErrForbidden
)
