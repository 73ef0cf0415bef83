// Package item provides the catalog item aggregate. Items carry a price and
// an available stock quantity; stock is mutated exclusively through
// RemoveStock and AddStock so that it can never drop below zero.
package item

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory functions.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrNotEnoughStock indicates an attempted stock deduction exceeding the
	// available quantity. The item's stock is left unchanged.
	ErrNotEnoughStock = errors.New("not enough stock")
)

// Item represents a purchasable catalog item.
//
// Item invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price must not be negative
//   - Stock quantity must never drop below zero
//   - Can only be created through NewItem or RestoreItem
type Item struct {
	id            kernel.UUID
	name          string
	price         int
	stockQuantity int

	// version supports the optimistic concurrency check applied by the
	// persistence adapter when stock changes are written back.
	version int

	isConstructed bool
}

// NewItem creates a new Item with validated attributes and version zero.
func NewItem(id kernel.UUID, name string, price int, stockQuantity int) (*Item, error) {
	it := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setPrice(price),
		it.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem reconstructs an Item from persistent storage, including its
// stored concurrency version.
func RestoreItem(id kernel.UUID, name string, price int, stockQuantity int, version int) (*Item, error) {
	it, err := NewItem(id, name, price, stockQuantity)
	if err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is negative", version))
	}

	it.version = version
	return it, nil
}

// Validate ensures the Item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by identifier.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current unit price.
func (i *Item) Price() int {
	return i.price
}

// StockQuantity returns the quantity currently available for sale.
func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

// Version returns the concurrency version loaded from storage.
// It is zero for newly created items and advances only on persistence.
func (i *Item) Version() int {
	return i.version
}

// RemoveStock deducts quantity from the available stock.
// Fails with ErrNotEnoughStock when the deduction would drive stock below
// zero; in that case the stock is left unchanged.
func (i *Item) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	rest := i.stockQuantity - quantity
	if rest < 0 {
		return ErrNotEnoughStock
	}

	i.stockQuantity = rest
	return nil
}

// AddStock returns quantity to the available stock, e.g. when an order line
// is cancelled.
func (i *Item) AddStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.stockQuantity += quantity
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}
	i.stockQuantity = stockQuantity
	return nil
}
