package commands

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Loads the member and the item, assembles the aggregate through the
// OrderFactory domain service and persists everything in a single transaction.
//
// Failures surface directly: an unresolved member or item id as
// errs.ErrObjectNotFound, insufficient stock as item.ErrNotEnoughStock.
// On any failure the transaction rolls back and no stock is deducted.
type PlaceOrderCommandHandler struct {
	uowFactory   UoWFactory
	orderFactory services.OrderFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning member, item and order repositories.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		orderFactory: services.NewOrderFactory(),
	}
}

// Handle processes the order placement command and returns the new order's id.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()
	itemRepo := uow.ItemRepository()
	orderRepo := uow.OrderRepository()

	purchaser, err := memberRepo.Get(ctx, cmd.MemberID())
	if err != nil {
		return kernel.UUID{}, err
	}

	purchased, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := h.orderFactory.Create(kernel.NewUUID(), purchaser, purchased, cmd.Count())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = itemRepo.Update(ctx, purchased); err != nil {
		return kernel.UUID{}, err
	}

	// Add cascades to the delivery and the order lines.
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}
