// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenseflow/backend/internal/domain/entity"
)

// ExpensePatch carries the partial field set for an expense update.
// Nil fields are left unchanged. Tags is replaced wholesale when non-nil.
type ExpensePatch struct {
	Amount        *decimal.Decimal
	Category      *entity.ExpenseCategory
	Description   *string
	PaymentMethod *entity.PaymentMethod
	ExpenseDate   *time.Time
	ExpenseTime   *string
	Tags          []string
}

// IsEmpty reports whether the patch changes nothing.
func (p ExpensePatch) IsEmpty() bool {
	return p.Amount == nil &&
		p.Category == nil &&
		p.Description == nil &&
		p.PaymentMethod == nil &&
		p.ExpenseDate == nil &&
		p.ExpenseTime == nil &&
		p.Tags == nil
}

// ExpenseRepository defines the interface for expense persistence operations.
// Every operation is scoped to the owning user: reads filter by owner, and
// single-row mutations filter by id AND owner so a row belonging to another
// identity can never be read or mutated.
type ExpenseRepository interface {
	// Create persists a new expense. The entity's UserID is the owner.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByOwner retrieves all expenses owned by the user, ordered by
	// (expense_date DESC, expense_time DESC) - most recent spend first.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// UpdateByOwner applies the patch to the expense matching id AND owner.
	// Returns domain ErrExpenseNotFound when the filter matches zero rows,
	// otherwise the updated entity.
	UpdateByOwner(ctx context.Context, id, userID uuid.UUID, patch ExpensePatch) (*entity.Expense, error)

	// DeleteByOwner removes the expense matching id AND owner. Returns
	// domain ErrExpenseNotFound when the filter matches zero rows.
	DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error
}
