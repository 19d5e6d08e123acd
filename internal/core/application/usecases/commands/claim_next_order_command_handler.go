package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// ErrNoPendingOrder is returned when no pending order can be claimed.
var ErrNoPendingOrder = errors.New("no pending order")

// ClaimNextOrderCommandHandler hands the oldest pending order to the kitchen.
// Selection and status change happen in one transaction on a row locked with
// SKIP LOCKED, so concurrent claims always receive different orders.
//
// Example:
//
//	handler := NewClaimNextOrderCommandHandler(uowFactory)
//	cmd, _ := NewClaimNextOrderCommand(order.InProgress)
//	claimed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrder):
//	    log.Println("Nothing to cook")
//	case err != nil:
//	    log.Printf("Claim failed: %v", err)
//	default:
//	    log.Printf("Cooking order %d", claimed.ID())
//	}
type ClaimNextOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimNextOrderCommandHandler creates a handler for kitchen claims.
func NewClaimNextOrderCommandHandler(uowFactory OrderUoWFactory) ClaimNextOrderCommandHandler {
	return ClaimNextOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the oldest pending order not held by another transaction and
// returns it with its new status.
func (h ClaimNextOrderCommandHandler) Handle(ctx context.Context, cmd ClaimNextOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, storageUnavailable("claim next order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	next, err := repo.LockFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoPendingOrder
	}
	if err != nil {
		return nil, storageUnavailable("claim next order", err)
	}

	if err = next.Claim(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, next); err != nil {
		return nil, storageUnavailable("claim next order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, storageUnavailable("claim next order", err)
	}

	return next, nil
}
