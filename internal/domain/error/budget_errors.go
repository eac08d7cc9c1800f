// Package error defines domain-specific errors for the ExpenseFlow application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist for the
	// current identity.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget ceiling is zero or negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrInvalidBudgetCategory is returned when a non-null category is not one
	// of the fixed set.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")

	// ErrInvalidBudgetStartDate is returned when the start date is missing or malformed.
	ErrInvalidBudgetStartDate = errors.New("invalid budget start date")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount    BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetCategory  BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetStartDate BudgetErrorCode = "BGT-010003"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BGT-010004"

	// Access errors (02XXXX)
	ErrCodeBudgetNotFound      BudgetErrorCode = "BGT-020001"
	ErrCodeBudgetNotAuthorized BudgetErrorCode = "BGT-020002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
