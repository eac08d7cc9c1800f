// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestListExpensesUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only the caller's expenses", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		cache := newFakeListCache()
		addUC := NewAddExpenseUseCase(repo, cache, newFakeNotifier())
		listUC := NewListExpensesUseCase(repo, cache)

		owner := uuid.New()
		other := uuid.New()
		if _, err := addUC.Execute(ctx, validAddInput(owner)); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if _, err := addUC.Execute(ctx, validAddInput(other)); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		out, err := listUC.Execute(ctx, ListExpensesInput{UserID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Expenses) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(out.Expenses))
		}
		if out.Expenses[0].UserID != owner {
			t.Errorf("expected owner %s, got %s", owner, out.Expenses[0].UserID)
		}
	})

	t.Run("anonymous caller gets an empty list", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		listUC := NewListExpensesUseCase(repo, newFakeListCache())

		out, err := listUC.Execute(ctx, ListExpensesInput{UserID: uuid.Nil})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Expenses) != 0 {
			t.Errorf("expected empty list, got %d expenses", len(out.Expenses))
		}
	})

	t.Run("serves cached list without hitting the store", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		cache := newFakeListCache()
		listUC := NewListExpensesUseCase(repo, cache)

		owner := uuid.New()
		if _, err := listUC.Execute(ctx, ListExpensesInput{UserID: owner}); err != nil {
			t.Fatalf("warm-up failed: %v", err)
		}

		// The list is now cached; a broken store must not matter.
		repo.findErr = errors.New("connection refused")
		out, err := listUC.Execute(ctx, ListExpensesInput{UserID: owner})
		if err != nil {
			t.Fatalf("expected cached result, got error: %v", err)
		}
		if len(out.Expenses) != 0 {
			t.Errorf("expected cached empty list, got %d expenses", len(out.Expenses))
		}
	})

	t.Run("cache read failure falls through to the store", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		cache := newFakeListCache()
		cache.getErr = errors.New("redis down")
		addUC := NewAddExpenseUseCase(repo, newFakeListCache(), newFakeNotifier())
		listUC := NewListExpensesUseCase(repo, cache)

		owner := uuid.New()
		if _, err := addUC.Execute(ctx, validAddInput(owner)); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		out, err := listUC.Execute(ctx, ListExpensesInput{UserID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Expenses) != 1 {
			t.Errorf("expected 1 expense from store, got %d", len(out.Expenses))
		}
	})

	t.Run("store failure surfaces as error", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		repo.findErr = errors.New("connection refused")
		listUC := NewListExpensesUseCase(repo, newFakeListCache())

		_, err := listUC.Execute(ctx, ListExpensesInput{UserID: uuid.New()})
		if err == nil {
			t.Fatal("expected an error")
		}
	})
}
