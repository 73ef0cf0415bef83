package commands_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func fixtureAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Seoul", "Main St", "04524")
	require.NoError(t, err)
	return address
}

func fixtureMember(t *testing.T) *member.Member {
	t.Helper()
	m, err := member.NewMember(kernel.NewUUID(), "Kim", fixtureAddress(t))
	require.NoError(t, err)
	return m
}

func fixtureItem(t *testing.T, price, stock int) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), "Hexagonal Go", price, stock)
	require.NoError(t, err)
	return it
}

// fixturePlacedOrder builds a placed order for one item (price 1000, stock 10)
// with three units already deducted, dated orderDate.
func fixturePlacedOrder(t *testing.T, orderDate time.Time) *order.Order {
	t.Helper()

	m := fixtureMember(t)
	it := fixtureItem(t, 1000, 10)

	line, err := order.NewOrderLine(it, it.Price(), 3)
	require.NoError(t, err)

	delivery, err := order.NewDelivery(m.Address())
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(kernel.NewUUID(), m, delivery, order.Placed, orderDate, line)
	require.NoError(t, err)
	return aggregate
}
