package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// System-level codes.
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Business-logic codes.
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeDeliveryFailed   ErrorCode = "DELIVERY_FAILED"
)
