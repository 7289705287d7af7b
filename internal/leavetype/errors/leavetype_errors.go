package leavetypeerrors

import (
	"net/http"

	"hrapp/internal/shared/apperror"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeValidation,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrDuplicateName = apperror.New(
		apperror.CodeDuplicateKey,
		"leave type name already exists",
		http.StatusBadRequest,
	)
)
