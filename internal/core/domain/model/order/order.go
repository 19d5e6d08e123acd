package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIDIsAlreadyAssigned is returned when the store tries to assign an id twice.
	ErrOrderIDIsAlreadyAssigned = errors.New("order id is already assigned")
)

// ID identifies a stored order. Ids are generated by the order store in
// increasing order and never reused, so a lower id means an older order.
type ID int64

// Order is a customer's pizza order and the aggregate root of this package.
//
// Order follows these invariants:
//   - A new order has Pending status and a zero ID until it is stored
//   - Once assigned, the ID never changes
//   - Pizza type and toppings are fixed at creation
//   - Toppings belong to exactly this order
type Order struct {
	// id is zero until the store assigns one
	id ID

	pizzaType string

	status Status

	// toppings are owned by the order; their order is not significant
	toppings []Topping

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a pending order for pizzaType with one topping per name.
// Empty pizza types and empty topping lists are accepted.
//
// Example:
//
//	o, err := order.NewOrder("Margherita", []string{"basil", "mozzarella"})
//	if err != nil {
//	    // a name is longer than the store allows
//	}
func NewOrder(pizzaType string, toppingNames []string) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	toppings := make([]Topping, 0, len(toppingNames))
	validationErrs := []error{o.setPizzaType(pizzaType)}
	for i, name := range toppingNames {
		topping, err := NewTopping(i+1, name)
		if err != nil {
			validationErrs = append(validationErrs, err)
			continue
		}
		toppings = append(toppings, topping)
	}

	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	o.toppings = toppings
	return o, nil
}

// RestoreOrder rebuilds an order read from the order store.
// The toppings must already be linked to id.
func RestoreOrder(id ID, pizzaType string, status Status, toppings []Topping) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}

	o := &Order{
		id:            id,
		isConstructed: true,
	}

	validationErrs := []error{
		o.setPizzaType(pizzaType),
		status.Validate(),
	}
	for _, topping := range toppings {
		if topping.OrderID() != id {
			validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause(
				"topping order id is invalid",
				fmt.Errorf("topping %d belongs to order %d, not %d", topping.Sequence(), topping.OrderID(), id),
			))
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	o.status = status
	o.toppings = append([]Topping(nil), toppings...)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two stored orders by id. Unstored orders are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order id, zero until the order is stored.
func (o *Order) ID() ID {
	return o.id
}

// IsStored reports whether the store has assigned an id.
func (o *Order) IsStored() bool {
	return o.id != 0
}

// PizzaType returns the ordered pizza type.
func (o *Order) PizzaType() string {
	return o.pizzaType
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// Toppings returns a copy of the order's toppings.
func (o *Order) Toppings() []Topping {
	return append([]Topping(nil), o.toppings...)
}

// AssignID records the id generated by the store and links every topping to it.
// It may be called once.
func (o *Order) AssignID(id ID) error {
	if o.id != 0 {
		return ErrOrderIDIsAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}

	o.id = id
	for i := range o.toppings {
		o.toppings[i].orderID = id
	}
	return nil
}

// ChangeStatus overwrites the status. Any status that fits the store is accepted,
// whatever the current status is.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// Claim hands a pending order to the kitchen by moving it to target.
// Returns an error if the order is not pending.
func (o *Order) Claim(target Status) error {
	newStatus, err := o.status.Claim(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setPizzaType(pizzaType string) error {
	if err := validateName("pizza type length", pizzaType); err != nil {
		return err
	}
	o.pizzaType = pizzaType
	return nil
}
