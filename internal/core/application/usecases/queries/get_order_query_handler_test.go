package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubAggregateTracker accepts any tracking call.
type stubAggregateTracker struct{}

func (stubAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetOrderQueryHandler
	orderRepo  *orderrepo.GormOrderRepository
	memberRepo *memberrepo.GormMemberRepository
	itemRepo   *itemrepo.GormItemRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.OrderLineDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, stubAggregateTracker{})
	suite.memberRepo = memberrepo.NewGormMemberRepository(db, stubAggregateTracker{})
	suite.itemRepo = itemrepo.NewGormItemRepository(db, stubAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, deliveries, order_lines, members, items CASCADE").Error
	suite.Require().NoError(err)
}

// placeTestOrder persists a member, an item and an order of three units at
// price 1000.
func (suite *GetOrderQueryHandlerTestSuite) placeTestOrder() *order.Order {
	ctx := context.Background()

	address, err := kernel.NewAddress("Seoul", "Main St", "04524")
	suite.Require().NoError(err)
	purchaser, err := member.NewMember(kernel.NewUUID(), "Kim", address)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.memberRepo.Add(ctx, purchaser))

	purchased, err := item.NewItem(kernel.NewUUID(), "Hexagonal Go", 1000, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.itemRepo.Add(ctx, purchased))

	line, err := order.NewOrderLine(purchased, purchased.Price(), 3)
	suite.Require().NoError(err)
	delivery, err := order.NewDelivery(purchaser.Address())
	suite.Require().NoError(err)
	placed, err := order.NewOrder(kernel.NewUUID(), purchaser, delivery, line)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, placed))

	return placed
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsOrderWithLines() {
	placed := suite.placeTestOrder()

	query, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(placed.ID(), result.ID)
	suite.Equal("Kim", result.MemberName)
	suite.Equal("Placed", result.Status)
	suite.Equal("Ready", result.DeliveryStatus)
	suite.Equal(3000, result.TotalPrice)

	suite.Require().Len(result.Lines, 1)
	suite.Equal("Hexagonal Go", result.Lines[0].ItemName)
	suite.Equal(1000, result.Lines[0].OrderPrice)
	suite.Equal(3, result.Lines[0].Count)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_CancelledOrder_ReturnsCancelledStatus() {
	placed := suite.placeTestOrder()
	suite.Require().NoError(placed.Cancel())
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), placed))

	query, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("Cancelled", result.Status)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsValidationError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
