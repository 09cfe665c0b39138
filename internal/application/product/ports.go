// Package product contains the catalog application services: syncing
// products from the remote platform, bulk import, inventory adjustment
// and cached read-side queries.
package product

import (
	"context"
	"time"

	"github.com/shopsync/backend/internal/domain/shared"
)

// Cache is the application-level cache contract. Implementations provide
// tag-scoped invalidation on top of plain key operations: entries stored
// with tags are dropped together when any of their tags is flushed.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Forget(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	Flush(ctx context.Context) error
	SetWithTags(ctx context.Context, tags []string, key, value string, ttl time.Duration) error
	RememberWithTags(ctx context.Context, tags []string, key string, ttl time.Duration, fn func() (string, error)) (string, error)
	FlushTags(ctx context.Context, tags []string) error
}

// EventDispatcher delivers domain events to registered handlers.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event shared.DomainEvent) error
	DispatchMany(ctx context.Context, events []shared.DomainEvent) error
}
