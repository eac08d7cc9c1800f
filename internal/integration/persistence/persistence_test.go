// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expenseflow/backend/internal/application/adapter"
	"github.com/expenseflow/backend/internal/domain/entity"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
	"github.com/expenseflow/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.ExpenseModel{},
		&model.BudgetModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newExpense(userID uuid.UUID, date time.Time, amount float64) *entity.Expense {
	return entity.NewExpense(
		userID,
		decimal.NewFromFloat(amount),
		entity.CategoryFood,
		"coffee",
		entity.PaymentMethodCard,
		date,
		"09:15",
		[]string{"morning", "caffeine"},
	)
}

func TestExpenseRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find by owner", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		owner := uuid.New()
		other := uuid.New()

		exp := newExpense(owner, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), 4.50)
		if err := repo.Create(ctx, exp); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if err := repo.Create(ctx, newExpense(other, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), 9)); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		found, err := repo.FindByOwner(ctx, owner)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(found))
		}
		if found[0].ID != exp.ID {
			t.Errorf("expected expense %s, got %s", exp.ID, found[0].ID)
		}
		if len(found[0].Tags) != 2 || found[0].Tags[0] != "morning" {
			t.Errorf("tags did not round-trip: %v", found[0].Tags)
		}
		if !found[0].Amount.Equal(decimal.NewFromFloat(4.50)) {
			t.Errorf("amount did not round-trip: %s", found[0].Amount)
		}
	})

	t.Run("find orders by date then time descending", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		owner := uuid.New()

		older := newExpense(owner, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 1)
		newest := newExpense(owner, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), 2)
		newest.ExpenseTime = "20:00"
		sameDayEarlier := newExpense(owner, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), 3)
		sameDayEarlier.ExpenseTime = "08:00"

		for _, exp := range []*entity.Expense{older, sameDayEarlier, newest} {
			if err := repo.Create(ctx, exp); err != nil {
				t.Fatalf("create failed: %v", err)
			}
		}

		found, err := repo.FindByOwner(ctx, owner)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(found) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(found))
		}
		if found[0].ID != newest.ID || found[1].ID != sameDayEarlier.ID || found[2].ID != older.ID {
			t.Error("expenses are not in (date DESC, time DESC) order")
		}
	})

	t.Run("update is scoped to the owner", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		owner := uuid.New()

		exp := newExpense(owner, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), 4.50)
		if err := repo.Create(ctx, exp); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		newAmount := decimal.NewFromFloat(7.25)
		updated, err := repo.UpdateByOwner(ctx, exp.ID, owner, adapter.ExpensePatch{Amount: &newAmount})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if !updated.Amount.Equal(newAmount) {
			t.Errorf("expected amount %s, got %s", newAmount, updated.Amount)
		}
		if updated.Description != "coffee" {
			t.Errorf("expected untouched description, got %q", updated.Description)
		}

		// Same id, wrong owner: zero rows matched.
		_, err = repo.UpdateByOwner(ctx, exp.ID, uuid.New(), adapter.ExpensePatch{Amount: &newAmount})
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("update replaces tags wholesale", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		owner := uuid.New()

		exp := newExpense(owner, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), 4.50)
		if err := repo.Create(ctx, exp); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		updated, err := repo.UpdateByOwner(ctx, exp.ID, owner, adapter.ExpensePatch{Tags: []string{"travel"}})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if len(updated.Tags) != 1 || updated.Tags[0] != "travel" {
			t.Errorf("expected tags replaced, got %v", updated.Tags)
		}
	})

	t.Run("delete is scoped to the owner", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		owner := uuid.New()

		exp := newExpense(owner, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), 4.50)
		if err := repo.Create(ctx, exp); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if err := repo.DeleteByOwner(ctx, exp.ID, uuid.New()); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound for foreign delete, got %v", err)
		}

		if err := repo.DeleteByOwner(ctx, exp.ID, owner); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		found, err := repo.FindByOwner(ctx, owner)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected 0 expenses after delete, got %d", len(found))
		}

		// Second delete of the same id is also not-found.
		if err := repo.DeleteByOwner(ctx, exp.ID, owner); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound on repeat delete, got %v", err)
		}
	})
}

func TestBudgetRepository(t *testing.T) {
	ctx := context.Background()

	newBudget := func(userID uuid.UUID, category *entity.ExpenseCategory) *entity.Budget {
		return entity.NewBudget(
			userID,
			category,
			decimal.NewFromInt(500),
			entity.BudgetPeriodMonthly,
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		)
	}

	t.Run("create and find by owner", func(t *testing.T) {
		repo := NewBudgetRepository(newTestDB(t))
		owner := uuid.New()

		category := entity.CategoryTransport
		if err := repo.Create(ctx, newBudget(owner, &category)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if err := repo.Create(ctx, newBudget(uuid.New(), nil)); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		found, err := repo.FindByOwner(ctx, owner)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(found))
		}
		if found[0].Category == nil || *found[0].Category != entity.CategoryTransport {
			t.Error("category did not round-trip")
		}
	})

	t.Run("nullable category round-trips", func(t *testing.T) {
		repo := NewBudgetRepository(newTestDB(t))
		owner := uuid.New()

		if err := repo.Create(ctx, newBudget(owner, nil)); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		found, err := repo.FindByOwner(ctx, owner)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(found))
		}
		if found[0].Category != nil {
			t.Errorf("expected nil category, got %v", *found[0].Category)
		}
	})

	t.Run("clearing the category widens the budget", func(t *testing.T) {
		repo := NewBudgetRepository(newTestDB(t))
		owner := uuid.New()

		category := entity.CategoryFood
		budget := newBudget(owner, &category)
		if err := repo.Create(ctx, budget); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		updated, err := repo.UpdateByOwner(ctx, budget.ID, owner, adapter.BudgetPatch{ClearCategory: true})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Category != nil {
			t.Errorf("expected nil category after clear, got %v", *updated.Category)
		}
	})

	t.Run("mutations are scoped to the owner", func(t *testing.T) {
		repo := NewBudgetRepository(newTestDB(t))
		owner := uuid.New()

		budget := newBudget(owner, nil)
		if err := repo.Create(ctx, budget); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		amount := decimal.NewFromInt(900)
		if _, err := repo.UpdateByOwner(ctx, budget.ID, uuid.New(), adapter.BudgetPatch{Amount: &amount}); !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound for foreign update, got %v", err)
		}
		if err := repo.DeleteByOwner(ctx, budget.ID, uuid.New()); !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound for foreign delete, got %v", err)
		}

		if err := repo.DeleteByOwner(ctx, budget.ID, owner); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and lookup", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		user := entity.NewUser("ana@example.com", "Ana", "hashed", time.Now().UTC())
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("find by email failed: %v", err)
		}
		if byEmail.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, byEmail.ID)
		}

		exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("exists check failed: %v", err)
		}
		if !exists {
			t.Error("expected email to exist")
		}

		if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("refresh token lifecycle", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))
		userID := uuid.New()
		expiresAt := time.Now().UTC().Add(time.Hour)

		if err := repo.SaveRefreshToken(ctx, "token-a", userID, expiresAt); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("validity check failed: %v", err)
		}
		if !valid {
			t.Error("expected token to be valid")
		}

		if err := repo.InvalidateRefreshToken(ctx, "token-a"); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}
		valid, err = repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("validity check failed: %v", err)
		}
		if valid {
			t.Error("expected token to be invalid after invalidation")
		}
	})

	t.Run("invalidate all user tokens", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))
		userID := uuid.New()
		expiresAt := time.Now().UTC().Add(time.Hour)

		for _, token := range []string{"t1", "t2"} {
			if err := repo.SaveRefreshToken(ctx, token, userID, expiresAt); err != nil {
				t.Fatalf("save failed: %v", err)
			}
		}

		if err := repo.InvalidateAllUserRefreshTokens(ctx, userID); err != nil {
			t.Fatalf("invalidate all failed: %v", err)
		}
		for _, token := range []string{"t1", "t2"} {
			valid, err := repo.IsRefreshTokenValid(ctx, token)
			if err != nil {
				t.Fatalf("validity check failed: %v", err)
			}
			if valid {
				t.Errorf("expected %s to be invalid", token)
			}
		}
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		repo := NewTokenRepository(newTestDB(t))

		if err := repo.SaveRefreshToken(ctx, "stale", uuid.New(), time.Now().UTC().Add(-time.Minute)); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		valid, err := repo.IsRefreshTokenValid(ctx, "stale")
		if err != nil {
			t.Fatalf("validity check failed: %v", err)
		}
		if valid {
			t.Error("expected expired token to be invalid")
		}
	})
}
