// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenseflow/backend/internal/application/adapter"
	"github.com/expenseflow/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// BudgetOutput represents a single budget in the output.
type BudgetOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  *entity.ExpenseCategory
	Amount    decimal.Decimal
	Period    string
	StartDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetOutput
}

// ListBudgetsUseCase handles listing budgets logic.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.ListCache
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, cache adapter.ListCache) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute performs the budget listing. An anonymous caller gets an empty
// list rather than an error.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.UserID == uuid.Nil {
		return &ListBudgetsOutput{Budgets: []*BudgetOutput{}}, nil
	}

	var cached []*entity.Budget
	hit, err := uc.cache.Get(ctx, adapter.CollectionBudgets, input.UserID, &cached)
	if err != nil {
		slog.Warn("Budget list cache read failed",
			"userID", input.UserID,
			"error", err,
		)
	}
	if hit {
		return buildListBudgetsOutput(cached), nil
	}

	budgets, err := uc.budgetRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	if err := uc.cache.Set(ctx, adapter.CollectionBudgets, input.UserID, budgets); err != nil {
		slog.Warn("Budget list cache write failed",
			"userID", input.UserID,
			"error", err,
		)
	}

	return buildListBudgetsOutput(budgets), nil
}

func buildListBudgetsOutput(budgets []*entity.Budget) *ListBudgetsOutput {
	output := &ListBudgetsOutput{
		Budgets: make([]*BudgetOutput, len(budgets)),
	}
	for i, b := range budgets {
		output.Budgets[i] = toBudgetOutput(b)
	}
	return output
}

func toBudgetOutput(b *entity.Budget) *BudgetOutput {
	return &BudgetOutput{
		ID:        b.ID,
		UserID:    b.UserID,
		Category:  b.Category,
		Amount:    b.Amount,
		Period:    b.Period,
		StartDate: b.StartDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
