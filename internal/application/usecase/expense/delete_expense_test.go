// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expenseflow/backend/internal/domain/entity"
	domainerror "github.com/expenseflow/backend/internal/domain/error"
)

func TestDeleteExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the caller's expense", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		cache := newFakeListCache()
		notifier := newFakeNotifier()
		addUC := NewAddExpenseUseCase(repo, cache, newFakeNotifier())
		uc := NewDeleteExpenseUseCase(repo, cache, notifier)

		owner := uuid.New()
		out, err := addUC.Execute(ctx, validAddInput(owner))
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		if err := uc.Execute(ctx, DeleteExpenseInput{ExpenseID: out.Expense.ID, UserID: owner}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.expenses) != 0 {
			t.Errorf("expected 0 expenses after delete, got %d", len(repo.expenses))
		}

		last, ok := notifier.lastFor(owner)
		if !ok {
			t.Fatal("expected a notification")
		}
		if last.Severity != entity.SeveritySuccess {
			t.Errorf("expected success notification, got %s", last.Severity)
		}
	})

	t.Run("deleting another user's expense reports not found", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		addUC := NewAddExpenseUseCase(repo, newFakeListCache(), newFakeNotifier())
		uc := NewDeleteExpenseUseCase(repo, newFakeListCache(), newFakeNotifier())

		owner := uuid.New()
		out, err := addUC.Execute(ctx, validAddInput(owner))
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		err = uc.Execute(ctx, DeleteExpenseInput{ExpenseID: out.Expense.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
		if len(repo.expenses) != 1 {
			t.Error("expected the row to survive a foreign delete attempt")
		}
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		uc := NewDeleteExpenseUseCase(newFakeExpenseRepo(), newFakeListCache(), newFakeNotifier())

		err := uc.Execute(ctx, DeleteExpenseInput{ExpenseID: uuid.New(), UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("rejects anonymous caller", func(t *testing.T) {
		uc := NewDeleteExpenseUseCase(newFakeExpenseRepo(), newFakeListCache(), newFakeNotifier())

		err := uc.Execute(ctx, DeleteExpenseInput{ExpenseID: uuid.New(), UserID: uuid.Nil})
		if !errors.Is(err, domainerror.ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})
}
