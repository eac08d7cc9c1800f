// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expenseflow/backend/internal/domain/entity"
)

// Notifier is the fire-and-forget notification sink. Use cases report every
// mutation outcome through it; they never await or retry on its result, and
// a Notify call must not fail the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, notification entity.Notification)
}
