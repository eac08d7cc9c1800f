// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/expenseflow/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category      string          `gorm:"type:varchar(20);not null;index"`
	Description   string          `gorm:"type:varchar(255)"`
	PaymentMethod string          `gorm:"type:varchar(10);not null"`
	ExpenseDate   time.Time       `gorm:"type:date;not null;index"`
	ExpenseTime   string          `gorm:"type:varchar(5)"`
	Tags          pq.StringArray  `gorm:"type:text[]"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Category:      entity.ExpenseCategory(m.Category),
		Description:   m.Description,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		ExpenseDate:   m.ExpenseDate,
		ExpenseTime:   m.ExpenseTime,
		Tags:          []string(m.Tags),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		UserID:        expense.UserID,
		Amount:        expense.Amount,
		Category:      string(expense.Category),
		Description:   expense.Description,
		PaymentMethod: string(expense.PaymentMethod),
		ExpenseDate:   expense.ExpenseDate,
		ExpenseTime:   expense.ExpenseTime,
		Tags:          pq.StringArray(expense.Tags),
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
}
