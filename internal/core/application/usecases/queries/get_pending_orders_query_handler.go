package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"

	"github.com/jmoiron/sqlx"
)

// GetPendingOrdersQueryHandler reads the kitchen queue.
type GetPendingOrdersQueryHandler struct {
	db *sqlx.DB
}

// NewGetPendingOrdersQueryHandler creates a handler reading through db.
func NewGetPendingOrdersQueryHandler(db *sqlx.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle returns all pending orders sorted by id. An empty queue is an empty
// slice, not an error.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := selectOrders(ctx, h.db, `
		SELECT id, pizza_type, status
		FROM orders
		WHERE status = $1
		ORDER BY id
	`, order.Pending.String())
	if err != nil {
		return nil, storageUnavailable("get pending orders", err)
	}

	return orders, nil
}
