package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request for a new pizza order.
//
// Example:
//
//	cmd := NewPlaceOrderCommand("Margherita", []string{"basil"})
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %d is pending", placed.ID())
type PlaceOrderCommand struct {
	pizzaType string
	toppings  []string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. Name limits are
// enforced when the order aggregate is built.
func NewPlaceOrderCommand(pizzaType string, toppings []string) PlaceOrderCommand {
	return PlaceOrderCommand{
		pizzaType: pizzaType,
		toppings:  append([]string{}, toppings...),
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// PizzaType returns the requested pizza type.
func (c PlaceOrderCommand) PizzaType() string {
	return c.pizzaType
}

// Toppings returns the topping names in request order.
func (c PlaceOrderCommand) Toppings() []string {
	return append([]string{}, c.toppings...)
}
