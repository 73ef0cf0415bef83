package ports

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for item aggregates.
// Stock changes flow through Update, which applies an optimistic version
// check so that two concurrent orders can never together oversell an item.
type ItemRepository interface {
	// Add persists a new item aggregate to storage.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item, typically a stock change.
	// Fails with an errs.VersionIsInvalidError when the stored version no
	// longer matches the version the aggregate was loaded with.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)
}
