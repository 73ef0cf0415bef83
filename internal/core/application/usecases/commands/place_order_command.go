package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place an order: a member buys
// count units of one item at the item's current price.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(memberID, itemID, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	itemID   kernel.UUID
	count    int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates that both identifiers are valid and count is positive.
func NewPlaceOrderCommand(memberID kernel.UUID, itemID kernel.UUID, count int) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setItemID(itemID),
		cmd.setCount(count),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// MemberID returns the purchasing member's identifier.
func (c PlaceOrderCommand) MemberID() kernel.UUID {
	return c.memberID
}

// ItemID returns the purchased item's identifier.
func (c PlaceOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Count returns the requested quantity.
func (c PlaceOrderCommand) Count() int {
	return c.count
}

func (c *PlaceOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *PlaceOrderCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *PlaceOrderCommand) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count",
			fmt.Errorf("%d is not greater than 0", count))
	}

	c.count = count
	return nil
}
