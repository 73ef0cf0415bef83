package commands

import (
	"context"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Loads the order aggregate, runs the domain cancellation (which validates the
// delivery state and restores every line's stock), then explicitly re-saves
// the order and each affected item within the same transaction. Go has no
// dirty-state flush, so the handler performs those saves itself; the unit of
// work makes them atomic.
//
// Failures surface directly: an unresolved order id as errs.ErrObjectNotFound,
// a completed delivery as order.ErrOrderAlreadyDelivered, a repeated
// cancellation as order.ErrOrderAlreadyCancelled. On any failure the
// transaction rolls back and no stock is restored.
type CancelOrderCommandHandler struct {
	uowFactory OrderItemUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderItemUoWFactory spanning order and item repositories.
func NewCancelOrderCommandHandler(uowFactory OrderItemUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	for _, line := range aggregate.Lines() {
		if err = itemRepo.Update(ctx, line.Item()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
