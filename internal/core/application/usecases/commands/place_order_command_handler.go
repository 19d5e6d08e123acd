package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler creates pending orders.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, NewPlaceOrderCommand("Diavola", nil))
//	switch {
//	case errors.Is(err, errs.ErrValueIsOutOfRange):
//	    // a name does not fit the store
//	case errors.Is(err, errs.ErrStorageUnavailable):
//	    // nothing was written
//	}
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the order and its toppings in one transaction and returns the
// order with its generated id. Either everything is stored or nothing is.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.PizzaType(), cmd.Toppings())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, storageUnavailable("place order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, storageUnavailable("place order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, storageUnavailable("place order", err)
	}

	return placed, nil
}
