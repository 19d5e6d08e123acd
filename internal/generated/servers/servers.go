// Package servers holds the request and response types of api/openapi.yaml and
// binds its operations to echo routes.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ClaimOrder defines model for ClaimOrder.
type ClaimOrder struct {
	Status *string `json:"status,omitempty" validate:"omitempty,max=64"`
}

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	PizzaType *string  `json:"pizzaType" validate:"required,max=255"`
	Toppings  []string `json:"toppings,omitempty" validate:"dive,max=255"`
}

// Order defines model for Order.
type Order struct {
	Id        int64     `json:"id"`
	PizzaType string    `json:"pizzaType"`
	Status    string    `json:"status"`
	Toppings  []Topping `json:"toppings"`
}

// Topping defines model for Topping.
type Topping struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// UpdateOrderStatus defines model for UpdateOrderStatus.
type UpdateOrderStatus struct {
	Status *string `json:"status" validate:"required,max=64"`
}

// OrderId defines the orderId path parameter.
type OrderId = int64

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get the oldest pending order
	// (GET /api/orders)
	GetFirstPendingOrder(ctx echo.Context) error
	// Place an order
	// (POST /api/orders)
	PlaceOrder(ctx echo.Context) error
	// Claim the next pending order
	// (POST /api/orders/claim)
	ClaimNextOrder(ctx echo.Context) error
	// List the kitchen queue
	// (GET /api/orders/queue)
	GetPendingOrders(ctx echo.Context) error
	// Get an order
	// (GET /api/orders/{orderId})
	GetOrderById(ctx echo.Context, orderId OrderId) error
	// Update the status of an order
	// (PUT /api/orders/{orderId})
	UpdateOrderStatus(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetFirstPendingOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetFirstPendingOrder(ctx echo.Context) error {
	return w.Handler.GetFirstPendingOrder(ctx)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

// ClaimNextOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ClaimNextOrder(ctx echo.Context) error {
	return w.Handler.ClaimNextOrder(ctx)
}

// GetPendingOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetPendingOrders(ctx echo.Context) error {
	return w.Handler.GetPendingOrders(ctx)
}

// GetOrderById converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderById(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderById(ctx, orderId)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

func bindOrderId(ctx echo.Context) (OrderId, error) {
	var orderId OrderId
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/orders", wrapper.GetFirstPendingOrder)
	router.POST(baseURL+"/api/orders", wrapper.PlaceOrder)
	router.POST(baseURL+"/api/orders/claim", wrapper.ClaimNextOrder)
	router.GET(baseURL+"/api/orders/queue", wrapper.GetPendingOrders)
	router.GET(baseURL+"/api/orders/:orderId", wrapper.GetOrderById)
	router.PUT(baseURL+"/api/orders/:orderId", wrapper.UpdateOrderStatus)
}
