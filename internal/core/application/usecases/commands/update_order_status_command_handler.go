package commands

import (
	"context"
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// ErrOrderNotFound is returned when the order to update does not exist.
var ErrOrderNotFound = errors.New("order not found")

// UpdateOrderStatusCommandHandler changes the status of an existing order.
// The status is overwritten unconditionally; the last writer wins.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order with its row locked, sets the new status and stores it.
// Returns an error matching both ErrOrderNotFound and errs.ErrObjectNotFound
// when the order does not exist; nothing is written in that case.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return storageUnavailable("update order status", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	target, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	}
	if err != nil {
		return storageUnavailable("update order status", err)
	}

	if err = target.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	err = repo.Update(ctx, target)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	}
	if err != nil {
		return storageUnavailable("update order status", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return storageUnavailable("update order status", err)
	}

	return nil
}
