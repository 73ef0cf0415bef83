package commands

import (
	"context"
	"time"
)

// CompleteDeliveriesCommandHandler marks pending shipments as delivered.
// Retrieves all placed orders still awaiting delivery and completes those old
// enough, persisting each status change within one transaction. It stands in
// for a carrier callback in this system.
type CompleteDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveriesCommandHandler creates a handler for the delivery sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteDeliveriesCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveriesCommandHandler {
	return CompleteDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many deliveries were completed.
func (h CompleteDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	awaiting, err := orderRepo.GetAllAwaitingDelivery(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.DeliveredAfter())

	completed := 0
	for _, aggregate := range awaiting {
		if aggregate.OrderDate().After(cutoff) {
			continue
		}

		if err = aggregate.CompleteDelivery(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}

		completed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return completed, nil
}
