package autherrors

import (
	"net/http"

	"hrapp/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"token has expired",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeDuplicateKey,
		"email is already registered",
		http.StatusBadRequest,
	)
	ErrInvalidResetCode = apperror.New(
		apperror.CodeUnauthorized,
		"invalid or expired reset code",
		http.StatusUnauthorized,
	)
	ErrInvalidResetToken = apperror.New(
		apperror.CodeUnauthorized,
		"invalid or expired reset token",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to generate token",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.ErrForbidden
)
