// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/expenseflow/backend/internal/application/adapter"
	"github.com/expenseflow/backend/internal/domain/entity"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
	"github.com/expenseflow/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByOwner retrieves all expenses owned by the user, most recent spend first.
func (r *expenseRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expense_date DESC, expense_time DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// UpdateByOwner applies the patch to the expense matching id AND owner in a
// single statement. Zero matched rows means the expense does not exist for
// this identity; the row is never read without the owner filter, so whether
// the id belongs to someone else is not distinguishable from it not existing.
func (r *expenseRepository) UpdateByOwner(ctx context.Context, id, userID uuid.UUID, patch adapter.ExpensePatch) (*entity.Expense, error) {
	updates := expensePatchColumns(patch)
	updates["updated_at"] = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.ErrExpenseNotFound
	}

	var expenseModel model.ExpenseModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expenseModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, err
	}
	return expenseModel.ToEntity(), nil
}

// DeleteByOwner removes the expense matching id AND owner.
func (r *expenseRepository) DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// expensePatchColumns maps the set patch fields to their columns.
func expensePatchColumns(patch adapter.ExpensePatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		updates["category"] = string(*patch.Category)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.PaymentMethod != nil {
		updates["payment_method"] = string(*patch.PaymentMethod)
	}
	if patch.ExpenseDate != nil {
		updates["expense_date"] = *patch.ExpenseDate
	}
	if patch.ExpenseTime != nil {
		updates["expense_time"] = *patch.ExpenseTime
	}
	if patch.Tags != nil {
		updates["tags"] = pq.StringArray(patch.Tags)
	}
	return updates
}
