// Package ports defines the storage contracts of the order lifecycle.
// These interfaces establish contracts between the application layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Repositories obtained from a UnitOfWork run inside its transaction.
type OrderRepository interface {
	// Add persists a new order and its toppings and assigns the generated id
	// to the aggregate. The order row is written first, then the toppings.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	// Pizza type and toppings are immutable and are not written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its toppings by id.
	// Returns errs.ObjectNotFoundError when no order has that id.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error)

	// GetFirstPending retrieves the pending order with the smallest id.
	// Returns errs.ObjectNotFoundError when no order is pending.
	GetFirstPending(ctx context.Context) (*order.Order, error)

	// LockFirstPending is GetFirstPending for claiming: the returned row is locked
	// until the transaction ends and rows locked by other transactions are skipped,
	// so concurrent claimers never receive the same order.
	LockFirstPending(ctx context.Context) (*order.Order, error)
}
