package apperror

const (
	// Client errors (4xx)
	CodeValidation             = "VALIDATION_ERROR"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeNotFound               = "NOT_FOUND"
	CodeDuplicateKey           = "DUPLICATE_KEY"
	CodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	CodeInsufficientBalance    = "INSUFFICIENT_BALANCE"
	CodeScheduleConflict       = "SCHEDULE_CONFLICT"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
