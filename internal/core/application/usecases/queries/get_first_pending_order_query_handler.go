package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
)

// GetFirstPendingOrderQueryHandler finds the pending order with the lowest id.
// The order is not locked; two callers may see the same order. Use the claim
// command to take an order off the queue.
//
// Example:
//
//	handler := NewGetFirstPendingOrderQueryHandler(db)
//	next, err := handler.Handle(ctx, NewGetFirstPendingOrderQuery())
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("kitchen is idle")
//	}
type GetFirstPendingOrderQueryHandler struct {
	db *sqlx.DB
}

// NewGetFirstPendingOrderQueryHandler creates a handler reading through db.
func NewGetFirstPendingOrderQueryHandler(db *sqlx.DB) GetFirstPendingOrderQueryHandler {
	return GetFirstPendingOrderQueryHandler{db: db}
}

// Handle returns the oldest pending order or errs.ObjectNotFoundError when
// nothing is pending. The status match is exact and case-sensitive.
func (h GetFirstPendingOrderQueryHandler) Handle(
	ctx context.Context,
	query GetFirstPendingOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	resp, err := getOrder(ctx, h.db, `
		SELECT id, pizza_type, status
		FROM orders
		WHERE status = $1
		ORDER BY id
		LIMIT 1
	`, order.Pending.String())
	if isNoRows(err) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", "first pending")
	}
	if err != nil {
		return OrderResponse{}, storageUnavailable("get first pending order", err)
	}

	return resp, nil
}
