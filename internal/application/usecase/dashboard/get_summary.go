// Package dashboard contains dashboard aggregation use cases.
package dashboard

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

// GetSummaryInput represents the input for the dashboard summary.
// ReferenceDate defaults to the current UTC day when zero, and is
// injectable so output is reproducible for any chosen day.
type GetSummaryInput struct {
	UserID        uuid.UUID
	ReferenceDate time.Time
}

// GetSummaryOutput represents the aggregated dashboard summary.
type GetSummaryOutput struct {
	ReferenceDate     time.Time
	TodayTotal        decimal.Decimal
	MonthTotal        decimal.Decimal
	TransactionCount  int
	AveragePerDay     decimal.Decimal
	CategoryBreakdown []CategoryTotal
	TrailingWeek      []DayTotal
}

// GetSummaryUseCase computes the dashboard summary from the identity's
// expense list.
type GetSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ListCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.ListCache) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute loads the expense list through the same cached path the list
// endpoint uses, then applies the pure aggregation functions. An anonymous
// caller gets an all-zero summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := input.ReferenceDate
	if now.IsZero() {
		now = time.Now().UTC()
	}

	if input.UserID == uuid.Nil {
		return buildSummary(nil, now), nil
	}

	var expenses []*entity.Expense
	hit, err := uc.cache.Get(ctx, adapter.CollectionExpenses, input.UserID, &expenses)
	if err != nil {
		slog.Warn("Expense list cache read failed",
			"userID", input.UserID,
			"error", err,
		)
	}
	if !hit {
		expenses, err = uc.expenseRepo.FindByOwner(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load expenses for summary: %w", err)
		}
		if err := uc.cache.Set(ctx, adapter.CollectionExpenses, input.UserID, expenses); err != nil {
			slog.Warn("Expense list cache write failed",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return buildSummary(expenses, now), nil
}

func buildSummary(expenses []*entity.Expense, now time.Time) *GetSummaryOutput {
	return &GetSummaryOutput{
		ReferenceDate:     now,
		TodayTotal:        TodayTotal(expenses, now),
		MonthTotal:        MonthTotal(expenses, now),
		TransactionCount:  TransactionCount(expenses, now),
		AveragePerDay:     AveragePerDay(expenses, now),
		CategoryBreakdown: CategoryBreakdown(expenses, now),
		TrailingWeek:      TrailingWeekSeries(expenses, now),
	}
}
