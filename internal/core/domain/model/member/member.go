// Package member provides the member aggregate: the customer who places
// orders. The member holds the inverse side of the member/order relationship;
// it never initiates the order lifecycle itself.
package member

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrMemberIsNotConstructed is returned when a Member instance was not
	// created through the NewMember or RestoreMember factory functions.
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

	// ErrOrderIsRequired is returned when linking a nil order to a member.
	ErrOrderIsRequired = errs.NewValueIsRequiredError("order")
)

// Order is the member-side view of an order owned by the member.
// It is satisfied by the order aggregate; declaring the contract here keeps
// the inverse side of the relationship free of an import cycle.
type Order interface {
	ID() kernel.UUID
}

// Member represents a registered customer.
//
// A member owns a collection of orders. The collection is the derived side of
// the bidirectional member/order link: the order's member reference is
// authoritative, and LinkOrder is the only way the collection grows. It is
// invoked exclusively by order construction, which guarantees both sides are
// updated together.
type Member struct {
	id      kernel.UUID
	name    string
	address kernel.Address
	orders  []Order

	isConstructed bool
}

// NewMember creates a new Member with validated attributes and an empty
// order collection.
func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	m := &Member{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setAddress(address),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember reconstructs a Member from persistent storage.
// The order collection starts empty; orders restored within the same session
// re-link themselves through their own restore constructors.
func RestoreMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	return NewMember(id, name, address)
}

// Validate ensures the Member was created through a factory function.
func (m *Member) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMemberIsNotConstructed
	}

	return nil
}

// IsEqual compares two members by identifier.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// Address returns the member's shipping address.
func (m *Member) Address() kernel.Address {
	return m.address
}

// Orders returns a read-only snapshot of the orders linked to this member
// in the current session.
func (m *Member) Orders() []Order {
	orders := make([]Order, len(m.orders))
	copy(orders, m.orders)
	return orders
}

// LinkOrder appends an order to the member's collection. It is the inverse
// half of the member/order association and must only be called by order
// construction, never directly.
func (m *Member) LinkOrder(order Order) error {
	if order == nil {
		return ErrOrderIsRequired
	}

	m.orders = append(m.orders, order)
	return nil
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m.address = address
	return nil
}
