// Package error defines domain-specific errors for the ExpenseFlow application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrNotAuthenticated is returned when a scoped operation is attempted
	// without an authenticated identity. It is raised before any store call.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrExpenseNotFound is returned when an expense does not exist for the
	// current identity. An ownership-filtered mutation matching zero rows
	// surfaces this error rather than a silent success.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrInvalidExpenseCategory is returned when the category is not one of the fixed set.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrInvalidPaymentMethod is returned when the payment method is not one of the fixed set.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidExpenseDate is returned when the expense date is missing or malformed.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrInvalidExpenseTime is returned when the expense time is malformed.
	ErrInvalidExpenseTime = errors.New("invalid expense time")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidPaymentMethod   ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseDate     ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseTime     ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010006"

	// Access errors (02XXXX)
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-020001"
	ErrCodeExpenseNotAuthorized ExpenseErrorCode = "EXP-020002"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
