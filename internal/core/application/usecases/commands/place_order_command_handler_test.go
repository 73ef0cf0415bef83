package commands_test

import (
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/item"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	purchaser := fixtureMember(t)
	purchased := fixtureItem(t, 1000, 10)
	cmd, _ := commands.NewPlaceOrderCommand(purchaser.ID(), purchased.ID(), 3)

	memberRepo := new(MockMemberRepository)
	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		memberRepo.On("Get", mock.Anything, purchaser.ID()).Return(purchaser, nil).Once(),
		itemRepo.On("Get", mock.Anything, purchased.ID()).Return(purchased, nil).Once(),
		itemRepo.On("Update", mock.Anything, purchased).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	orderID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, orderID.Validate())
	assert.Equal(t, 7, purchased.StockQuantity())
	memberRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	purchaser := fixtureMember(t)
	purchased := fixtureItem(t, 1000, 10)
	cmd, _ := commands.NewPlaceOrderCommand(purchaser.ID(), purchased.ID(), 3)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_MemberNotFound(t *testing.T) {
	ctx := t.Context()
	purchaser := fixtureMember(t)
	purchased := fixtureItem(t, 1000, 10)
	cmd, _ := commands.NewPlaceOrderCommand(purchaser.ID(), purchased.ID(), 3)

	memberRepo := new(MockMemberRepository)
	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		memberRepo.On("Get", mock.Anything, purchaser.ID()).
			Return(nil, errs.NewObjectNotFoundError("memberId", purchaser.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	itemRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NotEnoughStock(t *testing.T) {
	ctx := t.Context()
	purchaser := fixtureMember(t)
	purchased := fixtureItem(t, 1000, 2)
	cmd, _ := commands.NewPlaceOrderCommand(purchaser.ID(), purchased.ID(), 3)

	memberRepo := new(MockMemberRepository)
	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		memberRepo.On("Get", mock.Anything, purchaser.ID()).Return(purchaser, nil).Once(),
		itemRepo.On("Get", mock.Anything, purchased.ID()).Return(purchased, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, item.ErrNotEnoughStock)
	assert.Equal(t, 2, purchased.StockQuantity())
	itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	purchaser := fixtureMember(t)
	purchased := fixtureItem(t, 1000, 10)
	cmd, _ := commands.NewPlaceOrderCommand(purchaser.ID(), purchased.ID(), 3)

	memberRepo := new(MockMemberRepository)
	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		memberRepo.On("Get", mock.Anything, purchaser.ID()).Return(purchaser, nil).Once(),
		itemRepo.On("Get", mock.Anything, purchased.ID()).Return(purchased, nil).Once(),
		itemRepo.On("Update", mock.Anything, purchased).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
