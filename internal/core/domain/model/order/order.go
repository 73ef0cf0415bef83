package order

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyDelivered indicates an attempted cancellation of an order
	// whose delivery is already completed.
	ErrOrderAlreadyDelivered = errors.New("already-delivered orders cannot be cancelled")

	// ErrOrderAlreadyCancelled indicates a repeated cancellation. Cancelled is
	// a terminal status; cancelling again would double-credit the stock.
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")
)

// Order is the aggregate root of the order model. It owns its order lines and
// its delivery, references the purchasing member, and exposes the
// cancellation state machine.
//
// Order maintains these invariants:
//   - Every owned line's back-reference points to this order
//   - The delivery's back-reference points to this order
//   - The member's order collection contains this order (inverse side,
//     updated in the same construction step that sets the member reference)
//   - The line collection is fixed at creation time; lines are never added
//     or removed afterwards
//   - Status transitions only Placed -> Cancelled, irreversibly
type Order struct {
	id        kernel.UUID
	member    *member.Member
	lines     []*OrderLine
	delivery  *Delivery
	orderDate time.Time
	status    Status

	isConstructed bool
}

// NewOrder assembles a new order aggregate. It links all bidirectional
// relationships in one step: member<->order, order<->delivery and
// order<->line for every supplied line. After it returns, all links are
// mutually consistent, the status is Placed and the order date is set.
//
// A real order should carry at least one line; the factory accepts an empty
// line set and leaves that guard to the caller.
func NewOrder(id kernel.UUID, m *member.Member, d *Delivery, lines ...*OrderLine) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		m.Validate(),
		d.Validate(),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		status:        Placed,
		orderDate:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := o.linkMember(m); err != nil {
		return nil, err
	}
	o.linkDelivery(d)
	for _, line := range lines {
		o.linkLine(line)
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage,
// re-linking member, delivery and lines exactly as NewOrder does.
func RestoreOrder(
	id kernel.UUID,
	m *member.Member,
	d *Delivery,
	status Status,
	orderDate time.Time,
	lines ...*OrderLine,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		m.Validate(),
		d.Validate(),
		status.Validate(),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		status:        status,
		orderDate:     orderDate,
		isConstructed: true,
	}

	if err := o.linkMember(m); err != nil {
		return nil, err
	}
	o.linkDelivery(d)
	for _, line := range lines {
		o.linkLine(line)
	}

	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Member returns the purchasing member.
func (o *Order) Member() *member.Member {
	return o.member
}

// Delivery returns the order's delivery record.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Lines returns a read-only snapshot of the order lines in insertion order.
func (o *Order) Lines() []*OrderLine {
	lines := make([]*OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// Cancel cancels the order and restores the stock of every order line.
//
// Preconditions:
//   - The delivery must not be completed (ErrOrderAlreadyDelivered)
//   - The order must not already be cancelled (ErrOrderAlreadyCancelled)
//
// On failure no mutation is performed. The cascade across lines is made
// atomic by the transactional scope the caller runs in: nothing is durable
// until that scope commits.
func (o *Order) Cancel() error {
	if o.delivery.Status() == DeliveryComp {
		return ErrOrderAlreadyDelivered
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	for _, line := range o.lines {
		if err := line.Cancel(); err != nil {
			return err
		}
	}

	return nil
}

// CompleteDelivery marks the order's shipment as delivered.
func (o *Order) CompleteDelivery() error {
	return o.delivery.Complete()
}

// TotalPrice returns the sum of every line's total. It is a pure query and
// stays defined for a cancelled order, reporting the original total.
func (o *Order) TotalPrice() int {
	total := 0
	for _, line := range o.lines {
		total += line.TotalPrice()
	}
	return total
}

// linkMember sets the authoritative member reference and updates the inverse
// collection in the same step, keeping both sides consistent.
func (o *Order) linkMember(m *member.Member) error {
	if err := m.LinkOrder(o); err != nil {
		return err
	}
	o.member = m
	return nil
}

func (o *Order) linkDelivery(d *Delivery) {
	o.delivery = d
	d.setOrder(o)
}

func (o *Order) linkLine(line *OrderLine) {
	o.lines = append(o.lines, line)
	line.setOrder(o)
}

func validateLines(lines []*OrderLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}
