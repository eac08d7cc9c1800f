// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriodMonthly is the default budget period label. The period is an
// opaque label to this layer; its recurrence semantics live in the client.
const BudgetPeriodMonthly = "monthly"

// Budget represents a spending ceiling set by a user. A nil Category means
// the ceiling applies to total spending across all categories.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  *ExpenseCategory
	Amount    decimal.Decimal
	Period    string
	StartDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity owned by the given user.
func NewBudget(
	userID uuid.UUID,
	category *ExpenseCategory,
	amount decimal.Decimal,
	period string,
	startDate time.Time,
) *Budget {
	now := time.Now().UTC()

	if period == "" {
		period = BudgetPeriodMonthly
	}

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Period:    period,
		StartDate: startDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
