package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory functions.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery tracks the shipment of exactly one order. It is exclusively owned
// by its order: it is created together with the order, and its back-reference
// is set during order construction and never afterwards.
type Delivery struct {
	order   *Order
	address kernel.Address
	status  DeliveryStatus

	isConstructed bool
}

// NewDelivery creates a Delivery in DeliveryReady status for the given
// shipping address. The address is the member's address copied at order time.
func NewDelivery(address kernel.Address) (*Delivery, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		address:       address,
		status:        DeliveryReady,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	if err := errors.Join(address.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Delivery{
		address:       address,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Delivery was created through a factory function.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// Order returns the owning order.
// It is nil only for a delivery not yet linked into an order.
func (d *Delivery) Order() *Order {
	return d.order
}

// Address returns the shipping address captured at order time.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

// Status returns the current shipment status.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// Complete marks the shipment as delivered.
// Fails if the delivery is not in DeliveryReady status.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// setOrder links the delivery to its owning order.
// Called only during order construction.
func (d *Delivery) setOrder(o *Order) {
	d.order = o
}
