package commands

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand overwrites the status of one order.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(42, order.Ready)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type UpdateOrderStatusCommand struct {
	orderID order.ID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates the id and the status length.
// Any status text is accepted, including ones the kitchen does not name.
func NewUpdateOrderStatusCommand(orderID order.ID, status order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the id of the order to update.
func (c UpdateOrderStatusCommand) OrderID() order.ID {
	return c.orderID
}

// Status returns the new status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID order.ID) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
