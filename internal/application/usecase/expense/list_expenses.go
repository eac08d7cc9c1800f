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
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID uuid.UUID
}

// ExpenseOutput represents a single expense in the output.
type ExpenseOutput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Category      entity.ExpenseCategory
	Description   string
	PaymentMethod entity.PaymentMethod
	ExpenseDate   time.Time
	ExpenseTime   string
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles listing expenses logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ListCache
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.ListCache) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute performs the expense listing. An anonymous caller gets an empty
// list rather than an error, so public pages can render without a session.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if input.UserID == uuid.Nil {
		return &ListExpensesOutput{Expenses: []*ExpenseOutput{}}, nil
	}

	var cached []*entity.Expense
	hit, err := uc.cache.Get(ctx, adapter.CollectionExpenses, input.UserID, &cached)
	if err != nil {
		slog.Warn("Expense list cache read failed",
			"userID", input.UserID,
			"error", err,
		)
	}
	if hit {
		return buildListExpensesOutput(cached), nil
	}

	expenses, err := uc.expenseRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	if err := uc.cache.Set(ctx, adapter.CollectionExpenses, input.UserID, expenses); err != nil {
		slog.Warn("Expense list cache write failed",
			"userID", input.UserID,
			"error", err,
		)
	}

	return buildListExpensesOutput(expenses), nil
}

func buildListExpensesOutput(expenses []*entity.Expense) *ListExpensesOutput {
	output := &ListExpensesOutput{
		Expenses: make([]*ExpenseOutput, len(expenses)),
	}
	for i, exp := range expenses {
		output.Expenses[i] = toExpenseOutput(exp)
	}
	return output
}

func toExpenseOutput(exp *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:            exp.ID,
		UserID:        exp.UserID,
		Amount:        exp.Amount,
		Category:      exp.Category,
		Description:   exp.Description,
		PaymentMethod: exp.PaymentMethod,
		ExpenseDate:   exp.ExpenseDate,
		ExpenseTime:   exp.ExpenseTime,
		Tags:          exp.Tags,
		CreatedAt:     exp.CreatedAt,
		UpdatedAt:     exp.UpdatedAt,
	}
}
