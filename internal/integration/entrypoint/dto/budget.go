// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expenseflow/backend/internal/application/usecase/budget"
)

// CreateBudgetRequest represents the request body for budget creation.
// A null category sets a blanket budget across all categories.
type CreateBudgetRequest struct {
	Category  *string `json:"category,omitempty"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Period    string  `json:"period,omitempty"`
	StartDate string  `json:"start_date" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category      *string  `json:"category,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Period        *string  `json:"period,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  *string   `json:"category"`
	Amount    string    `json:"amount"`
	Period    string    `json:"period"`
	StartDate string    `json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a BudgetOutput to a BudgetResponse DTO.
func ToBudgetResponse(b *budget.BudgetOutput) BudgetResponse {
	var category *string
	if b.Category != nil {
		c := string(*b.Category)
		category = &c
	}

	return BudgetResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		Category:  category,
		Amount:    b.Amount.String(),
		Period:    b.Period,
		StartDate: b.StartDate.Format("2006-01-02"),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBudgetListResponse converts a ListBudgetsOutput to a BudgetListResponse DTO.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: budgets}
}
