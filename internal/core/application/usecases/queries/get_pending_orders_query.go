package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery lists the kitchen queue: every pending order, oldest first.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read queue: %w", err)
//	}
//	fmt.Printf("%d orders waiting\n", len(queue))
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates the query. It has no parameters.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}
