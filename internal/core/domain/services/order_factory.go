package services

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
)

// OrderFactory is a domain service that assembles a new order aggregate.
// It spans the member, item and order aggregates: the delivery address comes
// from the member, the line price is snapshotted from the item, and the
// item's stock is deducted for the requested quantity.
//
// Business rules:
//   - The line records the item's price at ordering time
//   - Stock is deducted exactly once, and only if the whole assembly succeeds
//   - The delivery starts in the ready state at the member's address
//
// Example usage:
//
//	factory := NewOrderFactory()
//	newOrder, err := factory.Create(kernel.NewUUID(), purchaser, purchased, 3)
//	if errors.Is(err, item.ErrNotEnoughStock) {
//	    // The item cannot cover the requested quantity
//	    return
//	}
type OrderFactory struct{}

// NewOrderFactory creates a new OrderFactory instance.
func NewOrderFactory() OrderFactory {
	return OrderFactory{}
}

// Create assembles a placed order for count units of the item, delivered to
// the member's address. On any failure no stock is deducted.
func (f OrderFactory) Create(
	id kernel.UUID,
	purchaser *member.Member,
	purchased *item.Item,
	count int,
) (*order.Order, error) {
	if err := purchaser.Validate(); err != nil {
		return nil, err
	}
	if err := purchased.Validate(); err != nil {
		return nil, err
	}

	delivery, err := order.NewDelivery(purchaser.Address())
	if err != nil {
		return nil, err
	}

	line, err := order.NewOrderLine(purchased, purchased.Price(), count)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(id, purchaser, delivery, line)
}
