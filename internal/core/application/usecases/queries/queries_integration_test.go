package queries_test

import (
	"context"
	"testing"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/testdb"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	database *testdb.Database
	db       *sqlx.DB
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	database, err := testdb.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	db, err := sqlx.Connect("postgres", database.DSN)
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Close())
	}
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.db.MustExec("TRUNCATE TABLE orders, order_toppings RESTART IDENTITY")
}

func (suite *OrderQueriesTestSuite) TestGetOrder_WithToppings() {
	id := suite.insertOrder("Margherita", order.Ready, "basil", "mozzarella")
	query, err := queries.NewGetOrderQuery(order.ID(id))
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(queries.OrderResponse{
		ID:        id,
		PizzaType: "Margherita",
		Status:    "ready",
		Toppings: []queries.ToppingResponse{
			{ID: 1, Name: "basil"},
			{ID: 2, Name: "mozzarella"},
		},
	}, resp)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_WithoutToppings() {
	id := suite.insertOrder("Marinara", order.Pending)
	query, _ := queries.NewGetOrderQuery(order.ID(id))

	resp, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(resp.Toppings)
	suite.Empty(resp.Toppings)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_RepeatedReadsAreIdentical() {
	id := suite.insertOrder("Quattro Formaggi", order.Pending, "gorgonzola", "fontina")
	query, err := queries.NewGetOrderQuery(order.ID(id))
	suite.Require().NoError(err)
	handler := queries.NewGetOrderQueryHandler(suite.db)

	first, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	second, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_NotFound() {
	query, _ := queries.NewGetOrderQuery(404)

	_, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NotErrorIs(err, errs.ErrStorageUnavailable)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_InvalidQuery() {
	_, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (suite *OrderQueriesTestSuite) TestGetFirstPendingOrder_LowestPendingID() {
	suite.insertOrderWithID(3, order.Pending)
	suite.insertOrderWithID(1, order.Completed)
	suite.insertOrderWithID(2, order.Pending)

	resp, err := queries.NewGetFirstPendingOrderQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetFirstPendingOrderQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(2), resp.ID)
	suite.Equal("pending", resp.Status)
}

func (suite *OrderQueriesTestSuite) TestGetFirstPendingOrder_DoesNotChangeStatus() {
	id := suite.insertOrder("Diavola", order.Pending, "salami")
	handler := queries.NewGetFirstPendingOrderQueryHandler(suite.db)

	first, err := handler.Handle(context.Background(), queries.NewGetFirstPendingOrderQuery())
	suite.Require().NoError(err)
	second, err := handler.Handle(context.Background(), queries.NewGetFirstPendingOrderQuery())
	suite.Require().NoError(err)

	suite.Equal(id, first.ID)
	suite.Equal(first, second)
	suite.Equal([]queries.ToppingResponse{{ID: 1, Name: "salami"}}, first.Toppings)
}

func (suite *OrderQueriesTestSuite) TestGetFirstPendingOrder_NonePending() {
	suite.insertOrder("Margherita", order.Completed)
	suite.insertOrder("Margherita", "PENDING")

	_, err := queries.NewGetFirstPendingOrderQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetFirstPendingOrderQuery())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetPendingOrders_QueueInIDOrder() {
	suite.insertOrderWithID(5, order.Pending)
	suite.insertOrderWithID(2, order.InProgress)
	suite.insertOrderWithID(4, order.Pending)
	suite.insertOrderWithID(1, order.Pending)
	suite.db.MustExec(`INSERT INTO order_toppings (order_id, topping, topping_name) VALUES
		(4, 2, 'olives'), (4, 1, 'capers'), (2, 1, 'ham')`)

	queue, err := queries.NewGetPendingOrdersQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetPendingOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(queue, 3)
	suite.Equal(int64(1), queue[0].ID)
	suite.Equal(int64(4), queue[1].ID)
	suite.Equal(int64(5), queue[2].ID)
	suite.Equal([]queries.ToppingResponse{{ID: 1, Name: "capers"}, {ID: 2, Name: "olives"}}, queue[1].Toppings)
	suite.Empty(queue[0].Toppings)
}

func (suite *OrderQueriesTestSuite) TestGetPendingOrders_Empty() {
	queue, err := queries.NewGetPendingOrdersQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetPendingOrdersQuery())
	suite.Require().NoError(err)
	suite.NotNil(queue)
	suite.Empty(queue)
}

func (suite *OrderQueriesTestSuite) TestHandle_ContextCancellation_ReturnsStorageError() {
	suite.insertOrder("Margherita", order.Pending)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := queries.NewGetPendingOrdersQueryHandler(suite.db).Handle(ctx, queries.NewGetPendingOrdersQuery())
	suite.Require().ErrorIs(err, errs.ErrStorageUnavailable)
}

func (suite *OrderQueriesTestSuite) insertOrder(pizzaType string, status order.Status, toppings ...string) int64 {
	var id int64
	err := suite.db.QueryRowx(
		"INSERT INTO orders (pizza_type, status) VALUES ($1, $2) RETURNING id", pizzaType, status.String(),
	).Scan(&id)
	suite.Require().NoError(err)

	for i, name := range toppings {
		suite.db.MustExec("INSERT INTO order_toppings (order_id, topping, topping_name) VALUES ($1, $2, $3)",
			id, i+1, name)
	}
	return id
}

func (suite *OrderQueriesTestSuite) insertOrderWithID(id int64, status order.Status) {
	suite.db.MustExec("INSERT INTO orders (id, pizza_type, status) VALUES ($1, 'Margherita', $2)", id, status.String())
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
