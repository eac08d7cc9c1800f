// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expenseflow/backend/internal/application/adapter"
	"github.com/expenseflow/backend/internal/domain/entity"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
	"github.com/expenseflow/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByOwner retrieves all budgets owned by the user, newest first.
func (r *budgetRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// UpdateByOwner applies the patch to the budget matching id AND owner in a
// single statement; zero matched rows surfaces as not-found.
func (r *budgetRepository) UpdateByOwner(ctx context.Context, id, userID uuid.UUID, patch adapter.BudgetPatch) (*entity.Budget, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.ClearCategory {
		updates["category"] = nil
	} else if patch.Category != nil {
		updates["category"] = string(*patch.Category)
	}
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.Period != nil {
		updates["period"] = *patch.Period
	}
	if patch.StartDate != nil {
		updates["start_date"] = *patch.StartDate
	}

	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.ErrBudgetNotFound
	}

	var budgetModel model.BudgetModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&budgetModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, err
	}
	return budgetModel.ToEntity(), nil
}

// DeleteByOwner removes the budget matching id AND owner.
func (r *budgetRepository) DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}
