// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning flat response structures shaped for presentation.
package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its lines for display.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the order with the given id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents one order with its delivery state and lines.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	MemberName     string
	Status         string
	DeliveryStatus string
	OrderDate      time.Time
	TotalPrice     int
	Lines          []OrderLineResponse
}

// OrderLineResponse represents one line of an order: an item purchased at a
// snapshotted price.
type OrderLineResponse struct {
	ItemID     kernel.UUID
	ItemName   string
	OrderPrice int
	Count      int
}
