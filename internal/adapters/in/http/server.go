package http

import (
	"context"
	"log/slog"
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/generated/servers"
	"pizzeria/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Use case contracts the server depends on. The command and query handlers
// satisfy them; tests substitute fakes.
type (
	placeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}
	updateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}
	claimNextOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ClaimNextOrderCommand) (*order.Order, error)
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
	getFirstPendingOrderHandler interface {
		Handle(ctx context.Context, query queries.GetFirstPendingOrderQuery) (queries.OrderResponse, error)
	}
	getPendingOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.OrderResponse, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        placeOrderHandler
	updateOrderStatusHandler updateOrderStatusHandler
	claimNextOrderHandler    claimNextOrderHandler

	// Query handlers
	getOrderHandler             getOrderHandler
	getFirstPendingOrderHandler getFirstPendingOrderHandler
	getPendingOrdersHandler     getPendingOrdersHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler placeOrderHandler,
	updateOrderStatusHandler updateOrderStatusHandler,
	claimNextOrderHandler claimNextOrderHandler,
	getOrderHandler getOrderHandler,
	getFirstPendingOrderHandler getFirstPendingOrderHandler,
	getPendingOrdersHandler getPendingOrdersHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		claimNextOrderHandler:       claimNextOrderHandler,
		getOrderHandler:             getOrderHandler,
		getFirstPendingOrderHandler: getFirstPendingOrderHandler,
		getPendingOrdersHandler:     getPendingOrdersHandler,
		logger:                      logger.With("component", "http"),
	}
}

// PlaceOrder handles POST /api/orders - stores a new pending order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	cmd := commands.NewPlaceOrderCommand(*body.PizzaType, body.Toppings)
	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	metrics.OrdersPlaced.Inc()
	s.logger.InfoContext(ctx.Request().Context(), "order placed",
		slog.Int64("order_id", int64(placed.ID())),
		slog.Int("toppings", len(placed.Toppings())))

	return ctx.JSON(http.StatusCreated, fromOrder(placed))
}

// GetOrderById handles GET /api/orders/{orderId}.
func (s *Server) GetOrderById(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(order.ID(orderId))
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromResponse(resp))
}

// UpdateOrderStatus handles PUT /api/orders/{orderId} - overwrites the status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdateOrderStatus
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	status := order.Status(*body.Status)
	cmd, err := commands.NewUpdateOrderStatusCommand(order.ID(orderId), status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	metrics.StatusUpdates.WithLabelValues(statusLabel(status)).Inc()
	return ctx.NoContent(http.StatusOK)
}

// GetFirstPendingOrder handles GET /api/orders - returns the oldest pending order.
func (s *Server) GetFirstPendingOrder(ctx echo.Context) error {
	resp, err := s.getFirstPendingOrderHandler.Handle(ctx.Request().Context(), queries.NewGetFirstPendingOrderQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromResponse(resp))
}

// ClaimNextOrder handles POST /api/orders/claim - takes the oldest pending order
// off the queue.
func (s *Server) ClaimNextOrder(ctx echo.Context) error {
	var body servers.ClaimOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	var status order.Status
	if body.Status != nil {
		status = order.Status(*body.Status)
	}

	cmd, err := commands.NewClaimNextOrderCommand(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	claimed, err := s.claimNextOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	metrics.OrdersClaimed.WithLabelValues(metrics.SourceAPI).Inc()
	s.logger.InfoContext(ctx.Request().Context(), "order claimed",
		slog.Int64("order_id", int64(claimed.ID())),
		slog.String("status", claimed.Status().String()))

	return ctx.JSON(http.StatusOK, fromOrder(claimed))
}

// GetPendingOrders handles GET /api/orders/queue - lists pending orders, oldest first.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = fromResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

func fromOrder(o *order.Order) servers.Order {
	toppings := o.Toppings()
	response := servers.Order{
		Id:        int64(o.ID()),
		PizzaType: o.PizzaType(),
		Status:    o.Status().String(),
		Toppings:  make([]servers.Topping, len(toppings)),
	}
	for i, t := range toppings {
		response.Toppings[i] = servers.Topping{Id: t.Sequence(), Name: t.Name()}
	}
	return response
}

func fromResponse(o queries.OrderResponse) servers.Order {
	response := servers.Order{
		Id:        o.ID,
		PizzaType: o.PizzaType,
		Status:    o.Status,
		Toppings:  make([]servers.Topping, len(o.Toppings)),
	}
	for i, t := range o.Toppings {
		response.Toppings[i] = servers.Topping{Id: t.ID, Name: t.Name}
	}
	return response
}

func statusLabel(status order.Status) string {
	if status.IsKnown() {
		return status.String()
	}
	return "other"
}
