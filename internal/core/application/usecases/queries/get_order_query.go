package queries

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its toppings.
//
// Example:
//
//	query, err := NewGetOrderQuery(42)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no order 42
//	}
type GetOrderQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given id.
// Ids are always greater than zero.
func NewGetOrderQuery(orderID order.ID) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderQuery) OrderID() order.ID {
	return q.orderID
}
