package queries

import (
	"context"

	"pizzeria/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
)

// GetOrderQueryHandler reads a single order.
type GetOrderQueryHandler struct {
	db *sqlx.DB
}

// NewGetOrderQueryHandler creates a handler reading through db.
func NewGetOrderQueryHandler(db *sqlx.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or errs.ObjectNotFoundError when no order has the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	resp, err := getOrder(ctx, h.db, `
		SELECT id, pizza_type, status
		FROM orders
		WHERE id = $1
	`, int64(query.OrderID()))
	if isNoRows(err) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, storageUnavailable("get order", err)
	}

	return resp, nil
}
