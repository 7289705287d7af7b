package leavebalanceerrors

import (
	"net/http"

	"hrapp/internal/shared/apperror"
)

var (
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave balance not found",
		http.StatusNotFound,
	)
	ErrNoBalanceConfigured = apperror.New(
		apperror.CodeNotFound,
		"no leave balance configured for this user, year and leave type",
		http.StatusNotFound,
	)
	ErrDuplicateBalance = apperror.New(
		apperror.CodeDuplicateKey,
		"leave balance for this user, year and leave type already exists",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.ErrForbidden
)
