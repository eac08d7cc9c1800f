// Package notification implements the user-facing notification sink.
package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/expenseflow/backend/internal/application/adapter"
	"github.com/expenseflow/backend/internal/domain/entity"
)

// defaultFeedSize bounds how many notifications are retained per user.
const defaultFeedSize = 50

// FeedNotifier implements adapter.Notifier. Every notification is written to
// the structured log and appended to a bounded in-memory per-user feed that
// the notifications endpoint serves. Notify never fails and never blocks on
// delivery.
type FeedNotifier struct {
	mu       sync.RWMutex
	feeds    map[uuid.UUID][]entity.Notification
	feedSize int
}

// NewFeedNotifier creates a notifier retaining up to feedSize notifications
// per user. A non-positive feedSize falls back to the default.
func NewFeedNotifier(feedSize int) *FeedNotifier {
	if feedSize <= 0 {
		feedSize = defaultFeedSize
	}
	return &FeedNotifier{
		feeds:    make(map[uuid.UUID][]entity.Notification),
		feedSize: feedSize,
	}
}

var _ adapter.Notifier = (*FeedNotifier)(nil)

// Notify records the notification for the user. Fire-and-forget: no error
// is returned and callers must not depend on delivery.
func (n *FeedNotifier) Notify(_ context.Context, userID uuid.UUID, notification entity.Notification) {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	slog.Info("User notification",
		"userID", userID,
		"title", notification.Title,
		"severity", notification.Severity,
		"description", notification.Description,
	)

	n.mu.Lock()
	defer n.mu.Unlock()

	feed := append(n.feeds[userID], notification)
	if len(feed) > n.feedSize {
		feed = feed[len(feed)-n.feedSize:]
	}
	n.feeds[userID] = feed
}

// Recent returns the user's retained notifications, newest first.
func (n *FeedNotifier) Recent(userID uuid.UUID) []entity.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	feed := n.feeds[userID]
	out := make([]entity.Notification, len(feed))
	for i, notification := range feed {
		out[len(feed)-1-i] = notification
	}
	return out
}
