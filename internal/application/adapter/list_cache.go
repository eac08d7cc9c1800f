// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// Collection identifies a cached record collection.
type Collection string

const (
	CollectionExpenses Collection = "expenses"
	CollectionBudgets  Collection = "budgets"
)

// ListCache caches per-identity list query results, keyed by
// (collection, user). Mutations invalidate the key and the next read
// re-fetches from the store. Cache failures are never fatal to the caller:
// a failed Get is a miss, a failed Set or Invalidate is logged and ignored.
type ListCache interface {
	// Get unmarshals the cached list for (collection, user) into dest.
	// Returns false when no cached value exists.
	Get(ctx context.Context, collection Collection, userID uuid.UUID, dest any) (bool, error)

	// Set stores the list for (collection, user), replacing any prior value.
	Set(ctx context.Context, collection Collection, userID uuid.UUID, value any) error

	// Invalidate drops the cached list for (collection, user).
	Invalidate(ctx context.Context, collection Collection, userID uuid.UUID) error

	// InvalidateUser drops all cached lists for the user. Called when the
	// session ends so stale lists are never reused across identities.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
