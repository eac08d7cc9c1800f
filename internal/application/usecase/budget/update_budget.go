// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenseflow/backend/internal/application/adapter"
	"github.com/expenseflow/backend/internal/domain/entity"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Nil fields are
// left unchanged; ClearCategory widens the budget to all categories.
type UpdateBudgetInput struct {
	BudgetID      uuid.UUID
	UserID        uuid.UUID
	Category      *entity.ExpenseCategory
	ClearCategory bool
	Amount        *decimal.Decimal
	Period        *string
	StartDate     *time.Time
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *BudgetOutput
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.ListCache
	notifier   adapter.Notifier
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	cache adapter.ListCache,
	notifier adapter.Notifier,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		notifier:   notifier,
	}
}

// Execute performs the budget update. The mutation is filtered by id AND
// owner; a zero-row match surfaces as not-found.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotAuthorized,
			"authentication required to update budgets",
			domainerror.ErrNotAuthenticated,
		)
	}

	if input.Amount != nil && !input.Amount.IsPositive() {
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

	if input.StartDate != nil && input.StartDate.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetStartDate,
			"start date is required",
			domainerror.ErrInvalidBudgetStartDate,
		)
	}

	patch := adapter.BudgetPatch{
		Category:      input.Category,
		ClearCategory: input.ClearCategory,
		Amount:        input.Amount,
		Period:        input.Period,
		StartDate:     input.StartDate,
	}

	updated, err := uc.budgetRepo.UpdateByOwner(ctx, input.BudgetID, input.UserID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			uc.notifier.Notify(ctx, input.UserID, entity.Notification{
				Title:       "Error",
				Description: "Budget not found",
				Severity:    entity.SeverityError,
			})
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		uc.notifier.Notify(ctx, input.UserID, entity.Notification{
			Title:       "Error",
			Description: "Failed to update budget: " + err.Error(),
			Severity:    entity.SeverityError,
		})
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, adapter.CollectionBudgets, input.UserID); err != nil {
		slog.Warn("Budget list cache invalidation failed",
			"userID", input.UserID,
			"error", err,
		)
	}

	uc.notifier.Notify(ctx, input.UserID, entity.Notification{
		Title:       "Budget Updated",
		Description: "Budget updated successfully",
		Severity:    entity.SeveritySuccess,
	})

	return &UpdateBudgetOutput{Budget: toBudgetOutput(updated)}, nil
}
