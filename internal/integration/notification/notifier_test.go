// Package notification implements the user-facing notification sink.
package notification

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/expenseflow/backend/internal/domain/entity"
)

func TestFeedNotifier(t *testing.T) {
	ctx := context.Background()

	t.Run("records notifications newest first", func(t *testing.T) {
		notifier := NewFeedNotifier(10)
		userID := uuid.New()

		notifier.Notify(ctx, userID, entity.Notification{Title: "first", Severity: entity.SeveritySuccess})
		notifier.Notify(ctx, userID, entity.Notification{Title: "second", Severity: entity.SeverityError})

		recent := notifier.Recent(userID)
		if len(recent) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(recent))
		}
		if recent[0].Title != "second" || recent[1].Title != "first" {
			t.Error("expected newest-first ordering")
		}
		if recent[0].CreatedAt.IsZero() {
			t.Error("expected a timestamp to be stamped")
		}
	})

	t.Run("feeds are per user", func(t *testing.T) {
		notifier := NewFeedNotifier(10)
		a, b := uuid.New(), uuid.New()

		notifier.Notify(ctx, a, entity.Notification{Title: "for a"})

		if len(notifier.Recent(b)) != 0 {
			t.Error("user b must not see user a's feed")
		}
	})

	t.Run("feed is bounded", func(t *testing.T) {
		notifier := NewFeedNotifier(3)
		userID := uuid.New()

		for _, title := range []string{"1", "2", "3", "4", "5"} {
			notifier.Notify(ctx, userID, entity.Notification{Title: title})
		}

		recent := notifier.Recent(userID)
		if len(recent) != 3 {
			t.Fatalf("expected feed capped at 3, got %d", len(recent))
		}
		if recent[0].Title != "5" || recent[2].Title != "3" {
			t.Error("expected the oldest entries to be dropped")
		}
	})

	t.Run("concurrent notify is safe", func(t *testing.T) {
		notifier := NewFeedNotifier(100)
		userID := uuid.New()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				notifier.Notify(ctx, userID, entity.Notification{Title: "n"})
			}()
		}
		wg.Wait()

		if len(notifier.Recent(userID)) != 20 {
			t.Errorf("expected 20 notifications, got %d", len(notifier.Recent(userID)))
		}
	})
}
