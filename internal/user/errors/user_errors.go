package usererrors

import (
	"net/http"

	"hrapp/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeValidation,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeValidation,
		"invalid date_of_birth, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
