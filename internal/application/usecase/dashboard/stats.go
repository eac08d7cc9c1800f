// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expenseflow/backend/internal/domain/entity"
)

// averagePerDayDivisor is the fixed divisor for the per-day average. The
// average is always month total over 30, regardless of the month's actual
// length or how many days have elapsed.
var averagePerDayDivisor = decimal.NewFromInt(30)

// CategoryTotal is one category's spend over the monthly window.
type CategoryTotal struct {
	Category entity.ExpenseCategory
	Total    decimal.Decimal
}

// DayTotal is one calendar day's spend in the trailing week series.
type DayTotal struct {
	Date  time.Time
	Label string
	Total decimal.Decimal
}

// All functions below are pure: they never mutate the input slice and are
// deterministic for identical inputs. Date matching is calendar-date value
// equality, not timezone-interval logic.

// TodayTotal sums amounts for expenses dated exactly on now's calendar date.
func TodayTotal(expenses []*entity.Expense, now time.Time) decimal.Decimal {
	today := now.Format(entity.ExpenseDateLayout)
	total := decimal.Zero
	for _, exp := range expenses {
		if exp.DateKey() == today {
			total = total.Add(exp.Amount)
		}
	}
	return total
}

// MonthTotal sums amounts for expenses dated within the calendar month
// containing now, first through last day inclusive.
func MonthTotal(expenses []*entity.Expense, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		if inMonth(exp.ExpenseDate, now) {
			total = total.Add(exp.Amount)
		}
	}
	return total
}

// TransactionCount counts expenses dated within the calendar month containing now.
func TransactionCount(expenses []*entity.Expense, now time.Time) int {
	count := 0
	for _, exp := range expenses {
		if inMonth(exp.ExpenseDate, now) {
			count++
		}
	}
	return count
}

// AveragePerDay is the month total divided by a fixed 30, never the actual
// day count of the month.
func AveragePerDay(expenses []*entity.Expense, now time.Time) decimal.Decimal {
	return MonthTotal(expenses, now).Div(averagePerDayDivisor)
}

// CategoryBreakdown sums the monthly window per category. The result follows
// the fixed category enumeration order and omits categories with zero spend.
func CategoryBreakdown(expenses []*entity.Expense, now time.Time) []CategoryTotal {
	totals := make(map[entity.ExpenseCategory]decimal.Decimal, len(entity.ExpenseCategories))
	for _, exp := range expenses {
		if inMonth(exp.ExpenseDate, now) {
			totals[exp.Category] = totals[exp.Category].Add(exp.Amount)
		}
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for _, category := range entity.ExpenseCategories {
		total, ok := totals[category]
		if !ok || total.IsZero() {
			continue
		}
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: total})
	}
	return breakdown
}

// TrailingWeekSeries returns exactly 7 entries, one per calendar day from
// now-6d through now inclusive in chronological order. Days without expenses
// carry a zero total.
func TrailingWeekSeries(expenses []*entity.Expense, now time.Time) []DayTotal {
	byDay := make(map[string]decimal.Decimal)
	for _, exp := range expenses {
		key := exp.DateKey()
		byDay[key] = byDay[key].Add(exp.Amount)
	}

	series := make([]DayTotal, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		day := now.AddDate(0, 0, offset)
		total, ok := byDay[day.Format(entity.ExpenseDateLayout)]
		if !ok {
			total = decimal.Zero
		}
		series = append(series, DayTotal{
			Date:  day,
			Label: day.Format("Mon"),
			Total: total,
		})
	}
	return series
}

// inMonth reports whether the expense date falls in the calendar month of now.
func inMonth(date, now time.Time) bool {
	return date.Year() == now.Year() && date.Month() == now.Month()
}
