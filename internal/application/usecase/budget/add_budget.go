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
	domainerror "github.com/expenseflow/backend/internal/domain/error"
)

// AddBudgetInput represents the input for budget creation. A nil Category
// creates a blanket budget across all categories.
type AddBudgetInput struct {
	UserID    uuid.UUID
	Category  *entity.ExpenseCategory
	Amount    decimal.Decimal
	Period    string
	StartDate time.Time
}

// AddBudgetOutput represents the output of budget creation.
type AddBudgetOutput struct {
	Budget *BudgetOutput
}

// AddBudgetUseCase handles budget creation logic.
type AddBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.ListCache
	notifier   adapter.Notifier
}

// NewAddBudgetUseCase creates a new AddBudgetUseCase instance.
func NewAddBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	cache adapter.ListCache,
	notifier adapter.Notifier,
) *AddBudgetUseCase {
	return &AddBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		notifier:   notifier,
	}
}

// Execute performs the budget creation.
func (uc *AddBudgetUseCase) Execute(ctx context.Context, input AddBudgetInput) (*AddBudgetOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotAuthorized,
			"authentication required to add budgets",
			domainerror.ErrNotAuthenticated,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if input.Category != nil && !entity.IsValidExpenseCategory(*input.Category) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			fmt.Sprintf("category %q is not a known category", *input.Category),
			domainerror.ErrInvalidBudgetCategory,
		)
	}

	if input.StartDate.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetStartDate,
			"start date is required",
			domainerror.ErrInvalidBudgetStartDate,
		)
	}

	budget := entity.NewBudget(
		input.UserID,
		input.Category,
		input.Amount,
		input.Period,
		input.StartDate,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		uc.notifier.Notify(ctx, input.UserID, entity.Notification{
			Title:       "Error",
			Description: "Failed to add budget: " + err.Error(),
			Severity:    entity.SeverityError,
		})
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, adapter.CollectionBudgets, input.UserID); err != nil {
		slog.Warn("Budget list cache invalidation failed",
			"userID", input.UserID,
			"error", err,
		)
	}

	uc.notifier.Notify(ctx, input.UserID, entity.Notification{
		Title:       "Budget Added",
		Description: fmt.Sprintf("Budget of %s set", budget.Amount.StringFixed(2)),
		Severity:    entity.SeveritySuccess,
	})

	return &AddBudgetOutput{Budget: toBudgetOutput(budget)}, nil
}
