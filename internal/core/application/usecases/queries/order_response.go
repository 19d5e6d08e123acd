// Package queries contains read-only operations over the order store.
// Query handlers read with sqlx directly instead of loading aggregates.
package queries

import (
	"context"
	"database/sql"
	"errors"

	"pizzeria/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
)

// OrderResponse is the read model of an order.
//
// Example:
//
//	OrderResponse{
//	    ID:        42,
//	    PizzaType: "Margherita",
//	    Status:    "pending",
//	    Toppings:  []ToppingResponse{{ID: 1, Name: "basil"}},
//	}
type OrderResponse struct {
	ID        int64
	PizzaType string
	Status    string
	Toppings  []ToppingResponse
}

// ToppingResponse is one topping of an order. ID is the position within the order.
type ToppingResponse struct {
	ID   int
	Name string
}

type orderRow struct {
	ID        int64  `db:"id"`
	PizzaType string `db:"pizza_type"`
	Status    string `db:"status"`
}

type toppingRow struct {
	OrderID int64  `db:"order_id"`
	Topping int    `db:"topping"`
	Name    string `db:"topping_name"`
}

// getOrder runs a single-row order query and attaches the toppings.
// Returns sql.ErrNoRows when nothing matches.
func getOrder(ctx context.Context, db *sqlx.DB, query string, args ...any) (OrderResponse, error) {
	var row orderRow
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		return OrderResponse{}, err
	}

	responses, err := withToppings(ctx, db, []orderRow{row})
	if err != nil {
		return OrderResponse{}, err
	}
	return responses[0], nil
}

// selectOrders runs a multi-row order query and attaches the toppings,
// keeping the row order of the query.
func selectOrders(ctx context.Context, db *sqlx.DB, query string, args ...any) ([]OrderResponse, error) {
	rows := make([]orderRow, 0)
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return withToppings(ctx, db, rows)
}

func withToppings(ctx context.Context, db *sqlx.DB, rows []orderRow) ([]OrderResponse, error) {
	responses := make([]OrderResponse, 0, len(rows))
	if len(rows) == 0 {
		return responses, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := sqlx.In(`
		SELECT order_id, topping, topping_name
		FROM order_toppings
		WHERE order_id IN (?)
		ORDER BY order_id, topping
	`, ids)
	if err != nil {
		return nil, err
	}

	toppings := make([]toppingRow, 0)
	if err = db.SelectContext(ctx, &toppings, db.Rebind(query), args...); err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]ToppingResponse, len(rows))
	for _, t := range toppings {
		byOrder[t.OrderID] = append(byOrder[t.OrderID], ToppingResponse{ID: t.Topping, Name: t.Name})
	}

	for _, row := range rows {
		orderToppings := byOrder[row.ID]
		if orderToppings == nil {
			orderToppings = make([]ToppingResponse, 0)
		}
		responses = append(responses, OrderResponse{
			ID:        row.ID,
			PizzaType: row.PizzaType,
			Status:    row.Status,
			Toppings:  orderToppings,
		})
	}
	return responses, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func storageUnavailable(operation string, err error) error {
	return errs.NewStorageUnavailableError(operation, err)
}
