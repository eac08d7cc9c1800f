// Package expense contains expense-related use cases.
package expense

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

// UpdateExpenseInput represents the input for expense update.
// Nil fields are left unchanged.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	UserID        uuid.UUID
	Amount        *decimal.Decimal
	Category      *entity.ExpenseCategory
	Description   *string
	PaymentMethod *entity.PaymentMethod
	ExpenseDate   *time.Time
	ExpenseTime   *string
	Tags          []string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ListCache
	notifier    adapter.Notifier
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.ListCache,
	notifier adapter.Notifier,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
		notifier:    notifier,
	}
}

// Execute performs the expense update. The mutation is filtered by id AND
// owner in a single statement; a zero-row match means the expense does not
// exist for this identity and surfaces as not-found.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotAuthorized,
			"authentication required to update expenses",
			domainerror.ErrNotAuthenticated,
		)
	}

	if err := validateExpensePatch(input); err != nil {
		return nil, err
	}

	patch := adapter.ExpensePatch{
		Amount:        input.Amount,
		Category:      input.Category,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		ExpenseDate:   input.ExpenseDate,
		ExpenseTime:   input.ExpenseTime,
		Tags:          input.Tags,
	}

	updated, err := uc.expenseRepo.UpdateByOwner(ctx, input.ExpenseID, input.UserID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			uc.notifier.Notify(ctx, input.UserID, entity.Notification{
				Title:       "Error",
				Description: "Expense not found",
				Severity:    entity.SeverityError,
			})
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		uc.notifier.Notify(ctx, input.UserID, entity.Notification{
			Title:       "Error",
			Description: "Failed to update expense: " + err.Error(),
			Severity:    entity.SeverityError,
		})
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, adapter.CollectionExpenses, input.UserID); err != nil {
		slog.Warn("Expense list cache invalidation failed",
			"userID", input.UserID,
			"error", err,
		)
	}

	uc.notifier.Notify(ctx, input.UserID, entity.Notification{
		Title:       "Expense Updated",
		Description: "Expense updated successfully",
		Severity:    entity.SeveritySuccess,
	})

	return &UpdateExpenseOutput{Expense: toExpenseOutput(updated)}, nil
}

// validateExpensePatch checks only the fields the patch sets.
func validateExpensePatch(input UpdateExpenseInput) error {
	if input.Amount != nil && !input.Amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if input.Category != nil && !entity.IsValidExpenseCategory(*input.Category) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			fmt.Sprintf("category %q is not a known category", *input.Category),
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	if input.PaymentMethod != nil && !entity.IsValidPaymentMethod(*input.PaymentMethod) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPaymentMethod,
			fmt.Sprintf("payment method %q is not a known method", *input.PaymentMethod),
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if input.ExpenseDate != nil && input.ExpenseDate.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	if input.ExpenseTime != nil && *input.ExpenseTime != "" {
		if _, err := time.Parse(entity.ExpenseTimeLayout, *input.ExpenseTime); err != nil {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseTime,
				"expense time must be in HH:MM format",
				domainerror.ErrInvalidExpenseTime,
			)
		}
	}

	if input.Description != nil && len(*input.Description) > MaxDescriptionLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}

	return nil
}
