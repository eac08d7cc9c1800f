// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expenseflow/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount        float64  `json:"amount" binding:"required,gt=0"`
	Category      string   `json:"category" binding:"required"`
	Description   string   `json:"description,omitempty" binding:"omitempty,max=255"`
	PaymentMethod string   `json:"payment_method" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	Time          string   `json:"time,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
// Omitted fields are left unchanged; tags are replaced wholesale when present.
type UpdateExpenseRequest struct {
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Category      *string  `json:"category,omitempty"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Time          *string  `json:"time,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	PaymentMethod string    `json:"payment_method"`
	Date          string    `json:"date"`
	Time          string    `json:"time,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(exp *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:            exp.ID.String(),
		UserID:        exp.UserID.String(),
		Amount:        exp.Amount.String(),
		Category:      string(exp.Category),
		Description:   exp.Description,
		PaymentMethod: string(exp.PaymentMethod),
		Date:          exp.ExpenseDate.Format("2006-01-02"),
		Time:          exp.ExpenseTime,
		Tags:          exp.Tags,
		CreatedAt:     exp.CreatedAt,
		UpdatedAt:     exp.UpdatedAt,
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, exp := range output.Expenses {
		expenses[i] = ToExpenseResponse(exp)
	}
	return ExpenseListResponse{Expenses: expenses}
}
