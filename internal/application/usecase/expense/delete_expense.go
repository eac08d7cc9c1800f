// Package expense contains expense-related use cases.
package expense

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

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ListCache
	notifier    adapter.Notifier
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.ListCache,
	notifier adapter.Notifier,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
		notifier:    notifier,
	}
}

// Execute performs the expense deletion. The delete is filtered by id AND
// owner; deleting another identity's expense reports not-found, never a
// silent success.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if input.UserID == uuid.Nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotAuthorized,
			"authentication required to delete expenses",
			domainerror.ErrNotAuthenticated,
		)
	}

	if err := uc.expenseRepo.DeleteByOwner(ctx, input.ExpenseID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			uc.notifier.Notify(ctx, input.UserID, entity.Notification{
				Title:       "Error",
				Description: "Expense not found",
				Severity:    entity.SeverityError,
			})
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		uc.notifier.Notify(ctx, input.UserID, entity.Notification{
			Title:       "Error",
			Description: "Failed to delete expense: " + err.Error(),
			Severity:    entity.SeverityError,
		})
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, adapter.CollectionExpenses, input.UserID); err != nil {
		slog.Warn("Expense list cache invalidation failed",
			"userID", input.UserID,
			"error", err,
		)
	}

	uc.notifier.Notify(ctx, input.UserID, entity.Notification{
		Title:       "Expense Deleted",
		Description: "Expense deleted successfully",
		Severity:    entity.SeveritySuccess,
	})

	return nil
}
