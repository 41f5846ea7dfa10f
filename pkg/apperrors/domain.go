package apperrors

import "net/http"

// Factories for the error classes this system raises. NotFound and
// ValidationFailed are raised before any persistence; DeliveryFailed is
// raised after the notification row is already recorded as Failed.

// ErrNotFound converts a repository not-found error into an AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrValidation reports a business-rule validation failure.
func ErrValidation(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}

// ErrDeliveryFailed wraps a transport failure from the notification dispatcher.
func ErrDeliveryFailed(err error, message string) *AppError {
	return Wrap(err, CodeDeliveryFailed, "notification", message, http.StatusBadGateway)
}

// ErrDatabase wraps a persistence failure.
func ErrDatabase(err error, domain string) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "Database operation failed", http.StatusInternalServerError)
}
