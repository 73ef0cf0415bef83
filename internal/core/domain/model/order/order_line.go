package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/pkg/errs"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine instance was not
// created through the NewOrderLine or RestoreOrderLine factory functions.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")

// OrderLine is a snapshot of one purchased item: the unit price at purchase
// time and the quantity bought. Lines exist only inside an order; the owning
// order sets the back-reference during construction and drives cancellation.
type OrderLine struct {
	order      *Order
	item       *item.Item
	orderPrice int
	count      int

	isConstructed bool
}

// NewOrderLine creates an OrderLine for count units of the given item at the
// given unit price, and deducts count from the item's stock.
//
// If the item's available stock is insufficient, the call fails with
// item.ErrNotEnoughStock and no line is created and no stock is deducted.
func NewOrderLine(it *item.Item, orderPrice int, count int) (*OrderLine, error) {
	line := &OrderLine{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setItem(it),
		line.setOrderPrice(orderPrice),
		line.setCount(count),
	); err != nil {
		return nil, err
	}

	// Stock is deducted last, after every validation passed, so a failed
	// construction never leaves a partial mutation behind.
	if err := it.RemoveStock(count); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreOrderLine reconstructs an OrderLine from persistent storage.
// Unlike NewOrderLine it does not touch the item's stock: the deduction
// already happened when the line was first created.
func RestoreOrderLine(it *item.Item, orderPrice int, count int) (*OrderLine, error) {
	line := &OrderLine{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setItem(it),
		line.setOrderPrice(orderPrice),
		line.setCount(count),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the OrderLine was created through a factory function.
func (l *OrderLine) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrOrderLineIsNotConstructed
	}

	return nil
}

// Order returns the owning order.
func (l *OrderLine) Order() *Order {
	return l.order
}

// Item returns the purchased item.
func (l *OrderLine) Item() *item.Item {
	return l.item
}

// OrderPrice returns the unit price captured at purchase time.
// It is independent of later item price changes.
func (l *OrderLine) OrderPrice() int {
	return l.orderPrice
}

// Count returns the purchased quantity.
func (l *OrderLine) Count() int {
	return l.count
}

// TotalPrice returns orderPrice multiplied by count.
func (l *OrderLine) TotalPrice() int {
	return l.orderPrice * l.count
}

// Cancel restores the deducted stock on the purchased item.
// The line has no status of its own; cancellation is driven by the owning
// order and is purely a stock-restoration side effect.
func (l *OrderLine) Cancel() error {
	return l.item.AddStock(l.count)
}

// setOrder links the line to its owning order.
// Called only during order construction.
func (l *OrderLine) setOrder(o *Order) {
	l.order = o
}

func (l *OrderLine) setItem(it *item.Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	l.item = it
	return nil
}

func (l *OrderLine) setOrderPrice(orderPrice int) error {
	if orderPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderPrice",
			fmt.Errorf("%d is negative", orderPrice))
	}
	l.orderPrice = orderPrice
	return nil
}

func (l *OrderLine) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count",
			fmt.Errorf("%d is not greater than 0", count))
	}
	l.count = count
	return nil
}
