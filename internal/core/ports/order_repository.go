package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Add must transitively persist the delivery and every order line reachable
// from the order in one atomic unit (cascade-on-save), so the aggregate is
// durably created whole or not at all.
type OrderRepository interface {
	// Add persists a new order aggregate together with its delivery and lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// delivery status.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a fully reconstructed order aggregate: its member, its
	// delivery and every line with the purchased item.
	// Returns an errs.ObjectNotFoundError when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAwaitingDelivery retrieves all placed orders whose delivery is
	// still in Ready status. Used by the delivery completion job.
	GetAllAwaitingDelivery(ctx context.Context) ([]*order.Order, error)
}
