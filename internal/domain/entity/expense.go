// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents one of the fixed spending categories.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "food"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryRent          ExpenseCategory = "rent"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryHealth        ExpenseCategory = "health"
	CategoryEducation     ExpenseCategory = "education"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryUtilities     ExpenseCategory = "utilities"
	CategoryOthers        ExpenseCategory = "others"
)

// ExpenseCategories lists all categories in their fixed enumeration order.
// Aggregation output (category breakdown) follows this order.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryRent,
	CategoryShopping,
	CategoryHealth,
	CategoryEducation,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryOthers,
}

// IsValidExpenseCategory reports whether the value is a known category.
func IsValidExpenseCategory(c ExpenseCategory) bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// PaymentMethod represents how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodBank PaymentMethod = "bank"
)

// IsValidPaymentMethod reports whether the value is a known payment method.
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodCard, PaymentMethodBank:
		return true
	}
	return false
}

// ExpenseDateLayout is the calendar-date format used for expense dates.
// Date comparisons in aggregation are exact value comparisons of this form.
const ExpenseDateLayout = "2006-01-02"

// ExpenseTimeLayout is the time-of-day format used for expense times.
const ExpenseTimeLayout = "15:04"

// Expense represents a single spending event recorded by a user.
// The owner is fixed at creation and never transferred.
type Expense struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Category      ExpenseCategory
	Description   string
	PaymentMethod PaymentMethod
	ExpenseDate   time.Time // calendar date the spend occurred, date-only
	ExpenseTime   string    // time-of-day the spend occurred, "HH:MM"
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExpense creates a new Expense entity owned by the given user.
func NewExpense(
	userID uuid.UUID,
	amount decimal.Decimal,
	category ExpenseCategory,
	description string,
	paymentMethod PaymentMethod,
	expenseDate time.Time,
	expenseTime string,
	tags []string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        amount,
		Category:      category,
		Description:   description,
		PaymentMethod: paymentMethod,
		ExpenseDate:   expenseDate,
		ExpenseTime:   expenseTime,
		Tags:          tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DateKey returns the expense's calendar date in ExpenseDateLayout form.
func (e *Expense) DateKey() string {
	return e.ExpenseDate.Format(ExpenseDateLayout)
}
