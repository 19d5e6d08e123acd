package order

import (
	"fmt"
	"unicode/utf8"

	"pizzeria/internal/pkg/errs"
)

// MaxNameLength bounds pizza type and topping names.
const MaxNameLength = 255

// Topping is a single topping on an order. Its identity is the owning order id
// plus the 1-based position the customer listed it at.
type Topping struct {
	orderID  ID
	sequence int
	name     string
}

// NewTopping creates a topping that is not yet linked to a stored order.
func NewTopping(sequence int, name string) (Topping, error) {
	return RestoreTopping(0, sequence, name)
}

// RestoreTopping rebuilds a topping read from the order store.
func RestoreTopping(orderID ID, sequence int, name string) (Topping, error) {
	if sequence <= 0 {
		return Topping{}, errs.NewValueIsInvalidErrorWithCause(
			"topping sequence is invalid",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}
	if err := validateName("topping name length", name); err != nil {
		return Topping{}, err
	}

	return Topping{orderID: orderID, sequence: sequence, name: name}, nil
}

// OrderID returns the owning order id, zero until the order is stored.
func (t Topping) OrderID() ID {
	return t.orderID
}

// Sequence returns the position of the topping within its order.
func (t Topping) Sequence() int {
	return t.sequence
}

// Name returns the topping name.
func (t Topping) Name() string {
	return t.name
}

func validateName(param, name string) error {
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError(param, n, 0, MaxNameLength)
	}
	return nil
}
