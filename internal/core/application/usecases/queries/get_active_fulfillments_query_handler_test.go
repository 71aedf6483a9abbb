package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/fulfillmentrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker implements the repository's tracker for test purposes.
// It's a no-op implementation since query tests don't need aggregate tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

func newTestFulfillment(s *suite.Suite) *fulfillment.Fulfillment {
	addr, err := kernel.NewAddress("1 Main St", "", "Springfield", "", "00000", "US")
	s.Require().NoError(err)

	f, err := fulfillment.NewFulfillment(kernel.NewUUID(), kernel.NewUUID(), addr)
	s.Require().NoError(err)
	return f
}

type GetActiveFulfillmentsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveFulfillmentsQueryHandler
}

func (suite *GetActiveFulfillmentsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&fulfillmentrepo.FulfillmentDTO{}, &fulfillmentrepo.TrackingEventDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveFulfillmentsQueryHandler(db)
}

func (suite *GetActiveFulfillmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveFulfillmentsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE fulfillment_tracking_events, fulfillments").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveFulfillmentsQueryHandlerTestSuite) saveFulfillments(fulfillments ...*fulfillment.Fulfillment) {
	repo := fulfillmentrepo.NewGormFulfillmentRepository(suite.db, &mockAggregateTracker{})
	for _, f := range fulfillments {
		err := repo.Add(context.Background(), f)
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveFulfillmentsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveFulfillmentsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveFulfillmentsQueryHandlerTestSuite) TestHandle_ExcludesCompletedLifecycles() {
	pending := newTestFulfillment(&suite.Suite)

	processing := newTestFulfillment(&suite.Suite)
	suite.Require().NoError(processing.StartProcessing())

	cancelled := newTestFulfillment(&suite.Suite)
	suite.Require().NoError(cancelled.Cancel("out of stock"))

	suite.saveFulfillments(pending, processing, cancelled)

	query := queries.NewGetActiveFulfillmentsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	ids := make(map[string]string)
	for _, r := range result {
		ids[r.ID.String()] = r.Status
	}
	suite.Equal("pending", ids[pending.ID().String()])
	suite.Equal("processing", ids[processing.ID().String()])
	suite.NotContains(ids, cancelled.ID().String())
}

func (suite *GetActiveFulfillmentsQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	f := newTestFulfillment(&suite.Suite)
	f.SetOrderNumber("SO-1042")
	suite.Require().NoError(f.SetEstimatedDelivery(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)))
	suite.saveFulfillments(f)

	query := queries.NewGetActiveFulfillmentsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(f.ID()))
	suite.True(result[0].OrderID.IsEqual(f.OrderID()))
	suite.Equal("SO-1042", result[0].OrderNumber)
	suite.Require().NotNil(result[0].EstimatedDeliveryAt)
	suite.Equal(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC), result[0].EstimatedDeliveryAt.UTC())
}

func (suite *GetActiveFulfillmentsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveFulfillmentsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveFulfillmentsQuery constructor")
}

func TestGetActiveFulfillmentsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(GetActiveFulfillmentsQueryHandlerTestSuite))
}
