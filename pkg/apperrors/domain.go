package apperrors

import (
	"net/http"
)

/*
Factories and predefined errors for the business domain. Repository
sentinel errors get wrapped through the factories; static cases use the
predefined variables.
*/

// ErrNotFound wraps a repository not-found error (404).
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness violation (409).
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general conflict factory (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags an operation the domain does not allow (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags a status transition outside the allowed table (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidCredentials: unknown username or password mismatch. Responds 400,
// matching the login contract (no token is ever issued alongside it).
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest,
)

// ErrInvalidToken: malformed or expired session token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Username already in use",
	http.StatusConflict,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// --- Notifications ---

// ErrNotARecipient: the caller is not addressed by the notification.
var ErrNotARecipient = New(
	CodeForbidden,
	"notification",
	"You are not a recipient of this notification",
	http.StatusForbidden,
)

// --- Customers ---

// ErrStaleVersion: the record changed since the client read it.
var ErrStaleVersion = New(
	CodeConflict,
	"customer",
	"Record was modified by someone else, reload and retry",
	http.StatusConflict,
)

// --- Leave ---

// ErrInsufficientLeaveBalance: approval would drive the balance negative.
var ErrInsufficientLeaveBalance = New(
	CodeConflict,
	"leave",
	"Employee has insufficient leave balance",
	http.StatusConflict,
)

// ErrLeaveAlreadyDecided: the request left the pending state already.
var ErrLeaveAlreadyDecided = New(
	CodeInvalidStatus,
	"leave",
	"Leave request has already been decided",
	http.StatusBadRequest,
)
