package commands

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrCompleteDeliveriesCommandIsNotConstructed = errors.New(
		"CompleteDeliveriesCommand must be created via NewCompleteDeliveriesCommand constructor",
	)
)

// CompleteDeliveriesCommand represents a sweep that marks pending shipments as
// delivered once an order has been placed for at least the configured age.
// It is driven by the delivery completion job.
type CompleteDeliveriesCommand struct { //nolint:recvcheck //using for validation
	deliveredAfter time.Duration

	guard guard.ConstructorGuard
}

// NewCompleteDeliveriesCommand creates a sweep command. deliveredAfter is the
// minimum age an order must have before its shipment counts as delivered; it
// must not be negative.
func NewCompleteDeliveriesCommand(deliveredAfter time.Duration) (CompleteDeliveriesCommand, error) {
	cmd := CompleteDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveredAfter(deliveredAfter); err != nil {
		return CompleteDeliveriesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveriesCommandIsNotConstructed)
}

// DeliveredAfter returns the minimum order age for the sweep.
func (c CompleteDeliveriesCommand) DeliveredAfter() time.Duration {
	return c.deliveredAfter
}

func (c *CompleteDeliveriesCommand) setDeliveredAfter(deliveredAfter time.Duration) error {
	if deliveredAfter < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveredAfter",
			fmt.Errorf("%s is negative", deliveredAfter))
	}

	c.deliveredAfter = deliveredAfter
	return nil
}
