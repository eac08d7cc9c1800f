// Package expense contains expense-related use cases.
package expense

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

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 255

// AddExpenseInput represents the input for expense creation.
type AddExpenseInput struct {
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Category      entity.ExpenseCategory
	Description   string
	PaymentMethod entity.PaymentMethod
	ExpenseDate   time.Time
	ExpenseTime   string
	Tags          []string
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *ExpenseOutput
}

// AddExpenseUseCase handles expense creation logic.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ListCache
	notifier    adapter.Notifier
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.ListCache,
	notifier adapter.Notifier,
) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
		notifier:    notifier,
	}
}

// Execute performs the expense creation.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotAuthorized,
			"authentication required to add expenses",
			domainerror.ErrNotAuthenticated,
		)
	}

	if err := validateExpenseFields(input.Amount, input.Category, input.PaymentMethod, input.ExpenseDate, input.ExpenseTime, input.Description); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Amount,
		input.Category,
		input.Description,
		input.PaymentMethod,
		input.ExpenseDate,
		input.ExpenseTime,
		input.Tags,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		uc.notifier.Notify(ctx, input.UserID, entity.Notification{
			Title:       "Error",
			Description: "Failed to add expense: " + err.Error(),
			Severity:    entity.SeverityError,
		})
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	uc.invalidateCache(ctx, input.UserID)

	uc.notifier.Notify(ctx, input.UserID, entity.Notification{
		Title:       "Expense Added",
		Description: fmt.Sprintf("Added %s expense of %s", expense.Category, expense.Amount.StringFixed(2)),
		Severity:    entity.SeveritySuccess,
	})

	return &AddExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}

func (uc *AddExpenseUseCase) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, adapter.CollectionExpenses, userID); err != nil {
		slog.Warn("Expense list cache invalidation failed",
			"userID", userID,
			"error", err,
		)
	}
}

// validateExpenseFields checks the fixed-set and format constraints shared by
// create and update.
func validateExpenseFields(
	amount decimal.Decimal,
	category entity.ExpenseCategory,
	paymentMethod entity.PaymentMethod,
	expenseDate time.Time,
	expenseTime string,
	description string,
) error {
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if !entity.IsValidExpenseCategory(category) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			fmt.Sprintf("category %q is not a known category", category),
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	if !entity.IsValidPaymentMethod(paymentMethod) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPaymentMethod,
			fmt.Sprintf("payment method %q is not a known method", paymentMethod),
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if expenseDate.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	if expenseTime != "" {
		if _, err := time.Parse(entity.ExpenseTimeLayout, expenseTime); err != nil {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseTime,
				"expense time must be in HH:MM format",
				domainerror.ErrInvalidExpenseTime,
			)
		}
	}

	if len(description) > MaxDescriptionLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}

	return nil
}
