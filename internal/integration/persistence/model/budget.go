// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expenseflow/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. A NULL category
// is a blanket budget across all categories.
type BudgetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category  *string         `gorm:"type:varchar(20);index"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Period    string          `gorm:"type:varchar(10);not null;default:'monthly'"`
	StartDate time.Time       `gorm:"type:date;not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var category *entity.ExpenseCategory
	if m.Category != nil {
		c := entity.ExpenseCategory(*m.Category)
		category = &c
	}

	return &entity.Budget{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  category,
		Amount:    m.Amount,
		Period:    m.Period,
		StartDate: m.StartDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	var category *string
	if budget.Category != nil {
		c := string(*budget.Category)
		category = &c
	}

	return &BudgetModel{
		ID:        budget.ID,
		UserID:    budget.UserID,
		Category:  category,
		Amount:    budget.Amount,
		Period:    budget.Period,
		StartDate: budget.StartDate,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
