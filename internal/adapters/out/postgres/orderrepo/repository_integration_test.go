package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	storage "teashop/internal/adapters/out/postgres"
	"teashop/internal/adapters/out/postgres/orderrepo"
	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/core/domain/model/order"
	"teashop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers. The conditional-update
// semantics of checkout, claim and completion can only be verified against a
// real database, including the partial unique index guarding open carts.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Full schema including the partial unique index on open carts
	suite.Require().NoError(storage.Migrate(db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpsertCart_NewCustomer_CreatesCart() {
	ctx := context.Background()

	err := suite.repository.UpsertCart(ctx, "alice", []string{"taro-milk", "matcha-latte"})
	suite.Require().NoError(err)

	cart, err := suite.repository.GetCart(ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal("alice", cart.CustomerID())
	suite.Equal(order.StateCart, cart.State())
	suite.Equal([]string{"taro-milk", "matcha-latte"}, cart.ProductIDs())
	suite.Nil(cart.Operator())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpsertCart_ExistingCart_ReplacesItems() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.UpsertCart(ctx, "alice", []string{"taro-milk"}))
	suite.Require().NoError(suite.repository.UpsertCart(ctx, "alice", []string{"mango-smoothie"}))

	cart, err := suite.repository.GetCart(ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal([]string{"mango-smoothie"}, cart.ProductIDs())

	suite.assertCartCount("alice", 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpsertCart_EmptyItems_KeepsCartOpen() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.UpsertCart(ctx, "alice", nil))

	cart, err := suite.repository.GetCart(ctx, "alice")
	suite.Require().NoError(err)
	suite.Empty(cart.ProductIDs())
	suite.assertCartCount("alice", 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpsertCart_ConcurrentWrites_SingleCartSurvives() {
	ctx := context.Background()

	// Hammer the same customer from many goroutines. The partial unique
	// index collapses every racing insert into a single open cart row.
	const writers = 10
	var wg sync.WaitGroup
	errCh := make(chan error, writers)

	for i := range writers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			items := []string{"taro-milk"}
			if n%2 == 0 {
				items = []string{"matcha-latte", "brown-sugar-boba"}
			}
			errCh <- suite.repository.UpsertCart(ctx, "alice", items)
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}

	suite.assertCartCount("alice", 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpsertCart_AfterCheckout_OpensFreshCart() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.UpsertCart(ctx, "alice", []string{"taro-milk"}))

	matched, err := suite.repository.CheckoutCart(ctx, "alice")
	suite.Require().NoError(err)
	suite.True(matched)

	// Previous order is out of cart state, a new cart row is allowed
	suite.Require().NoError(suite.repository.UpsertCart(ctx, "alice", []string{"mango-smoothie"}))

	suite.assertCartCount("alice", 1)
	suite.assertStateCount("alice", order.StateProcessing, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetCart_NoOpenCart_ReturnsNotFoundError() {
	ctx := context.Background()

	cart, err := suite.repository.GetCart(ctx, "nobody")
	suite.Nil(cart)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCheckoutCart_NoOpenCart_NotMatched() {
	ctx := context.Background()

	matched, err := suite.repository.CheckoutCart(ctx, "nobody")
	suite.Require().NoError(err)
	suite.False(matched)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCheckoutCart_Twice_SecondNotMatched() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.UpsertCart(ctx, "alice", []string{"taro-milk"}))

	matched, err := suite.repository.CheckoutCart(ctx, "alice")
	suite.Require().NoError(err)
	suite.True(matched)

	matched, err = suite.repository.CheckoutCart(ctx, "alice")
	suite.Require().NoError(err)
	suite.False(matched)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdvance_ClaimAndComplete_HappyPath() {
	ctx := context.Background()
	orderID := suite.createProcessingOrder(ctx, "alice")

	claim, err := order.NewTransition(orderID, order.StateDelivering, "op-1")
	suite.Require().NoError(err)

	matched, err := suite.repository.Advance(ctx, claim)
	suite.Require().NoError(err)
	suite.True(matched)
	suite.assertOrderRow(orderID, order.StateDelivering, ptr("op-1"))

	complete, err := order.NewTransition(orderID, order.StateDone, "op-1")
	suite.Require().NoError(err)

	matched, err = suite.repository.Advance(ctx, complete)
	suite.Require().NoError(err)
	suite.True(matched)
	suite.assertOrderRow(orderID, order.StateDone, ptr("op-1"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdvance_ReplayedTransition_StillMatches() {
	ctx := context.Background()
	orderID := suite.createProcessingOrder(ctx, "alice")

	claim, err := order.NewTransition(orderID, order.StateDelivering, "op-1")
	suite.Require().NoError(err)

	for range 3 {
		matched, advErr := suite.repository.Advance(ctx, claim)
		suite.Require().NoError(advErr)
		suite.True(matched)
	}

	suite.assertOrderRow(orderID, order.StateDelivering, ptr("op-1"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdvance_ClaimedByOther_NotMatched() {
	ctx := context.Background()
	orderID := suite.createProcessingOrder(ctx, "alice")

	claim, err := order.NewTransition(orderID, order.StateDelivering, "op-1")
	suite.Require().NoError(err)
	matched, err := suite.repository.Advance(ctx, claim)
	suite.Require().NoError(err)
	suite.True(matched)

	rival, err := order.NewTransition(orderID, order.StateDelivering, "op-2")
	suite.Require().NoError(err)
	matched, err = suite.repository.Advance(ctx, rival)
	suite.Require().NoError(err)
	suite.False(matched)

	suite.assertOrderRow(orderID, order.StateDelivering, ptr("op-1"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdvance_ConcurrentClaims_ExactlyOneWins() {
	ctx := context.Background()
	orderID := suite.createProcessingOrder(ctx, "alice")

	operators := []string{"op-1", "op-2", "op-3", "op-4", "op-5"}
	wins := make(chan string, len(operators))
	var wg sync.WaitGroup

	for _, op := range operators {
		wg.Add(1)
		go func(operatorID string) {
			defer wg.Done()
			claim, err := order.NewTransition(orderID, order.StateDelivering, operatorID)
			if err != nil {
				return
			}
			matched, err := suite.repository.Advance(ctx, claim)
			if err == nil && matched {
				wins <- operatorID
			}
		}(op)
	}
	wg.Wait()
	close(wins)

	var winners []string
	for w := range wins {
		winners = append(winners, w)
	}
	suite.Require().Len(winners, 1)
	suite.assertOrderRow(orderID, order.StateDelivering, &winners[0])
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdvance_CompleteByNonOwner_NotMatched() {
	ctx := context.Background()
	orderID := suite.createProcessingOrder(ctx, "alice")

	claim, err := order.NewTransition(orderID, order.StateDelivering, "op-1")
	suite.Require().NoError(err)
	matched, err := suite.repository.Advance(ctx, claim)
	suite.Require().NoError(err)
	suite.True(matched)

	complete, err := order.NewTransition(orderID, order.StateDone, "op-2")
	suite.Require().NoError(err)
	matched, err = suite.repository.Advance(ctx, complete)
	suite.Require().NoError(err)
	suite.False(matched)

	suite.assertOrderRow(orderID, order.StateDelivering, ptr("op-1"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdvance_CompleteUnclaimedOrder_NotMatched() {
	ctx := context.Background()
	orderID := suite.createProcessingOrder(ctx, "alice")

	// Skipping the claim step: done requires an owner, processing has none
	complete, err := order.NewTransition(orderID, order.StateDone, "op-1")
	suite.Require().NoError(err)

	matched, err := suite.repository.Advance(ctx, complete)
	suite.Require().NoError(err)
	suite.False(matched)

	suite.assertOrderRow(orderID, order.StateProcessing, nil)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdvance_CartOrder_NotMatched() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.UpsertCart(ctx, "alice", []string{"taro-milk"}))
	cart, err := suite.repository.GetCart(ctx, "alice")
	suite.Require().NoError(err)

	claim, err := order.NewTransition(cart.ID(), order.StateDelivering, "op-1")
	suite.Require().NoError(err)

	matched, err := suite.repository.Advance(ctx, claim)
	suite.Require().NoError(err)
	suite.False(matched)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdvance_UnknownOrder_NotMatched() {
	ctx := context.Background()

	claim, err := order.NewTransition(kernel.NewUUID(), order.StateDelivering, "op-1")
	suite.Require().NoError(err)

	matched, err := suite.repository.Advance(ctx, claim)
	suite.Require().NoError(err)
	suite.False(matched)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteStaleCarts_RemovesOnlyOldCarts() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.UpsertCart(ctx, "alice", []string{"taro-milk"}))
	suite.Require().NoError(suite.repository.UpsertCart(ctx, "bob", []string{"matcha-latte"}))
	suite.createProcessingOrder(ctx, "carol")

	// Age alice's cart past the retention window
	stale := time.Now().UTC().Add(-48 * time.Hour)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("customer_id = ? AND state = ?", "alice", order.StateCart.String()).
		Update("updated_at", stale).Error)

	deleted, err := suite.repository.DeleteStaleCarts(ctx, time.Now().UTC().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.repository.GetCart(ctx, "alice")
	suite.Require().Error(err)

	_, err = suite.repository.GetCart(ctx, "bob")
	suite.Require().NoError(err)

	suite.assertStateCount("carol", order.StateProcessing, 1)
}

// createProcessingOrder opens a cart for the customer and checks it out,
// returning the id of the resulting processing order.
func (suite *OrderRepositoryIntegrationTestSuite) createProcessingOrder(
	ctx context.Context, customerID string,
) kernel.UUID {
	suite.Require().NoError(suite.repository.UpsertCart(ctx, customerID, []string{"taro-milk"}))

	cart, err := suite.repository.GetCart(ctx, customerID)
	suite.Require().NoError(err)

	matched, err := suite.repository.CheckoutCart(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().True(matched)

	return cart.ID()
}

// assertOrderRow verifies the persisted state and operator of a single order.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderRow(
	id kernel.UUID, expectedState order.State, expectedOperator *string,
) {
	var dto orderrepo.OrderDTO
	err := suite.db.First(&dto, "id = ?", id.Bytes()).Error
	suite.Require().NoError(err)
	suite.Equal(expectedState.String(), dto.State)
	if expectedOperator == nil {
		suite.Nil(dto.OperatorID)
	} else {
		suite.Require().NotNil(dto.OperatorID)
		suite.Equal(*expectedOperator, *dto.OperatorID)
	}
}

// assertCartCount verifies the number of open cart rows for a customer.
func (suite *OrderRepositoryIntegrationTestSuite) assertCartCount(customerID string, expected int) {
	suite.assertStateCount(customerID, order.StateCart, expected)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertStateCount(
	customerID string, state order.State, expected int,
) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).
		Where("customer_id = ? AND state = ?", customerID, state.String()).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func ptr(s string) *string {
	return &s
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
