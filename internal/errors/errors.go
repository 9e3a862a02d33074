// Package errors provides the structured error types used across the Centavo
// API. Service-layer code returns *AppError so handlers can produce consistent
// responses without leaking internal details to clients.
package errors

import "net/http"

// AppError is a structured application error carrying a stable error code,
// a client-safe message, an HTTP status, and an optional internal cause.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal cause for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as its cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom client-facing message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrNegativeAmount  = &AppError{Code: "NEGATIVE_AMOUNT", Message: "Amount must not be negative", StatusCode: http.StatusBadRequest}
)

// Income errors.
var (
	ErrIncomeNotFound = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income record not found", StatusCode: http.StatusNotFound}
	// ErrLinkedBillFailed reports that an income record was written but the
	// automatic loan bill could not be created alongside it.
	ErrLinkedBillFailed = &AppError{Code: "LINKED_BILL_FAILED", Message: "Income was saved but the linked bill could not be created", StatusCode: http.StatusInternalServerError}
)

// Bill errors.
var (
	ErrBillNotFound      = &AppError{Code: "BILL_NOT_FOUND", Message: "Bill not found", StatusCode: http.StatusNotFound}
	ErrInvalidBillStatus = &AppError{Code: "INVALID_BILL_STATUS", Message: "Bill status must be paid or unpaid", StatusCode: http.StatusBadRequest}
)

// Label errors.
var (
	ErrLabelNotFound  = &AppError{Code: "LABEL_NOT_FOUND", Message: "Label not found", StatusCode: http.StatusNotFound}
	ErrDuplicateLabel = &AppError{Code: "DUPLICATE_LABEL", Message: "A label with this name already exists", StatusCode: http.StatusConflict}
	ErrInvalidKind    = &AppError{Code: "INVALID_LABEL_KIND", Message: "Unknown label kind", StatusCode: http.StatusBadRequest}
)

// Report errors.
var (
	ErrInvalidRange = &AppError{Code: "INVALID_RANGE", Message: "Range must be week, month, or year", StatusCode: http.StatusBadRequest}
)
