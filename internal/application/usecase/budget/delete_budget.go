// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expenseflow/backend/internal/application/adapter"
	"github.com/expenseflow/backend/internal/domain/entity"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.ListCache
	notifier   adapter.Notifier
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	cache adapter.ListCache,
	notifier adapter.Notifier,
) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		notifier:   notifier,
	}
}

// Execute performs the budget deletion. The delete is filtered by id AND
// owner; a zero-row match surfaces as not-found.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	if input.UserID == uuid.Nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotAuthorized,
			"authentication required to delete budgets",
			domainerror.ErrNotAuthenticated,
		)
	}

	if err := uc.budgetRepo.DeleteByOwner(ctx, input.BudgetID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			uc.notifier.Notify(ctx, input.UserID, entity.Notification{
				Title:       "Error",
				Description: "Budget not found",
				Severity:    entity.SeverityError,
			})
			return domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		uc.notifier.Notify(ctx, input.UserID, entity.Notification{
			Title:       "Error",
			Description: "Failed to delete budget: " + err.Error(),
			Severity:    entity.SeverityError,
		})
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, adapter.CollectionBudgets, input.UserID); err != nil {
		slog.Warn("Budget list cache invalidation failed",
			"userID", input.UserID,
			"error", err,
		)
	}

	uc.notifier.Notify(ctx, input.UserID, entity.Notification{
		Title:       "Budget Deleted",
		Description: "Budget deleted successfully",
		Severity:    entity.SeveritySuccess,
	})

	return nil
}
