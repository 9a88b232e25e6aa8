package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	cache     *stubCache
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)

	suite.cache = newStubCache()
	suite.handler = queries.NewGetActiveOrdersQueryHandler(suite.db, suite.cache)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ReturnsOrdersWithItems() {
	created := suite.createOrder("Alice", "Widget", 2, 9.99)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(created.ID()))
	suite.Equal("Alice", result[0].ClientName)
	suite.Equal(order.Initiated, result[0].Status)
	suite.Require().Len(result[0].Items, 1)
	suite.Equal("Widget", result[0].Items[0].Description)
	suite.Equal(2, result[0].Items[0].Quantity)
	suite.InDelta(9.99, result[0].Items[0].UnitPrice, 0.001)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ExcludesDeliveredOrders() {
	active := suite.createOrder("Alice", "Widget", 1, 5)
	delivered := suite.createOrder("Bob", "Gadget", 1, 7)

	ctx := context.Background()
	suite.Require().NoError(suite.orderRepo.UpdateStatus(ctx, delivered.ID(), order.Initiated, order.Sent))
	suite.Require().NoError(suite.orderRepo.SoftDelete(ctx, delivered.ID(), order.Sent))

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(active.ID()))
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SecondCallIsServedFromCache() {
	suite.createOrder("Alice", "Widget", 1, 5)

	ctx := context.Background()
	query := queries.NewGetActiveOrdersQuery()

	first, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(first, 1)

	// Bypass the write path so the cached listing goes stale.
	err = suite.db.Exec("UPDATE orders SET client_name = 'Changed'").Error
	suite.Require().NoError(err)

	second, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(second, 1)
	suite.Equal("Alice", second[0].ClientName)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_CacheRemovalForcesRefresh() {
	suite.createOrder("Alice", "Widget", 1, 5)

	ctx := context.Background()
	query := queries.NewGetActiveOrdersQuery()

	_, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	err = suite.db.Exec("UPDATE orders SET client_name = 'Changed'").Error
	suite.Require().NoError(err)

	suite.cache.Remove(ports.ActiveOrdersCacheKey)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Changed", result[0].ClientName)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_OrdersAreSortedByCreationTime() {
	first := suite.createOrder("Alice", "Widget", 1, 5)
	second := suite.createOrder("Bob", "Gadget", 1, 7)

	err := suite.db.Exec(
		"UPDATE orders SET created_at = created_at - interval '1 hour' WHERE id = ?",
		first.ID().Bytes(),
	).Error
	suite.Require().NoError(err)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) createOrder(
	clientName, description string,
	quantity int,
	unitPrice float64,
) *order.Order {
	item, err := order.NewItem(description, quantity, unitPrice)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), clientName, []order.Item{item})
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}

// mockAggregateTracker satisfies the repository constructor for test purposes.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

// stubCache is a plain map-backed cache without TTL, so tests control
// staleness explicitly.
type stubCache struct {
	entries map[string]any
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]any)}
}

func (c *stubCache) Get(key string) (any, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *stubCache) Set(key string, value any) {
	c.entries[key] = value
}

func (c *stubCache) Remove(key string) {
	delete(c.entries, key)
}
