package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrGetFirstPendingOrderQueryIsNotConstructed = errors.New(
	"GetFirstPendingOrderQuery must be created via NewGetFirstPendingOrderQuery constructor",
)

// GetFirstPendingOrderQuery peeks at the oldest pending order without claiming it.
type GetFirstPendingOrderQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFirstPendingOrderQuery creates the query. It has no parameters.
func NewGetFirstPendingOrderQuery() GetFirstPendingOrderQuery {
	return GetFirstPendingOrderQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFirstPendingOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetFirstPendingOrderQueryIsNotConstructed)
}
