// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenseflow/backend/internal/domain/entity"
)

// BudgetPatch carries the partial field set for a budget update.
// Nil fields are left unchanged; ClearCategory turns a category budget into
// a blanket budget across all categories.
type BudgetPatch struct {
	Category      *entity.ExpenseCategory
	ClearCategory bool
	Amount        *decimal.Decimal
	Period        *string
	StartDate     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p BudgetPatch) IsEmpty() bool {
	return p.Category == nil &&
		!p.ClearCategory &&
		p.Amount == nil &&
		p.Period == nil &&
		p.StartDate == nil
}

// BudgetRepository defines the interface for budget persistence operations.
// Ownership scoping matches ExpenseRepository: reads filter by owner and
// single-row mutations filter by id AND owner.
type BudgetRepository interface {
	// Create persists a new budget. The entity's UserID is the owner.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByOwner retrieves all budgets owned by the user, ordered by
	// created_at DESC.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// UpdateByOwner applies the patch to the budget matching id AND owner.
	// Returns domain ErrBudgetNotFound when the filter matches zero rows,
	// otherwise the updated entity.
	UpdateByOwner(ctx context.Context, id, userID uuid.UUID, patch BudgetPatch) (*entity.Budget, error)

	// DeleteByOwner removes the budget matching id AND owner. Returns
	// domain ErrBudgetNotFound when the filter matches zero rows.
	DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error
}
