package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrClaimNextOrderCommandIsNotConstructed = errors.New(
	"ClaimNextOrderCommand must be created via NewClaimNextOrderCommand constructor",
)

// ClaimNextOrderCommand takes the oldest pending order off the kitchen queue.
//
// Example:
//
//	cmd, _ := NewClaimNextOrderCommand("")
//	claimed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPendingOrder) {
//	    // queue is empty
//	}
type ClaimNextOrderCommand struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewClaimNextOrderCommand creates a claim that moves the order to status.
// An empty status means order.InProgress. Pending is rejected because the
// claimed order would stay in the queue.
func NewClaimNextOrderCommand(status order.Status) (ClaimNextOrderCommand, error) {
	if status == "" {
		status = order.InProgress
	}
	if status.IsPending() {
		return ClaimNextOrderCommand{}, order.ErrClaimStatusIsPending
	}
	if err := status.Validate(); err != nil {
		return ClaimNextOrderCommand{}, err
	}

	return ClaimNextOrderCommand{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimNextOrderCommandIsNotConstructed)
}

// Status returns the status the claimed order is moved to.
func (c ClaimNextOrderCommand) Status() order.Status {
	return c.status
}
