// Package orderrepo provides the GORM persistence of the order aggregate: data
// transfer objects, mapping functions and the repository itself.
package orderrepo

import (
	"pizzeria/internal/core/domain/model/order"
)

// OrderDTO represents the orders table. The (status, id) index serves the
// oldest-pending lookup.
type OrderDTO struct {
	ID        int64        `gorm:"primaryKey;autoIncrement"`
	PizzaType string       `gorm:"type:varchar(255);not null"`
	Status    string       `gorm:"type:varchar(64);not null;index:idx_orders_status_id,priority:1"`
	Toppings  []ToppingDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ToppingDTO represents one row of order_toppings, keyed by (order_id, topping).
type ToppingDTO struct {
	OrderID     int64  `gorm:"primaryKey;autoIncrement:false"`
	Topping     int    `gorm:"primaryKey;autoIncrement:false"`
	ToppingName string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for topping rows.
func (ToppingDTO) TableName() string {
	return "order_toppings"
}

// fromDomain converts the order row of an aggregate. Toppings are mapped
// separately because they can only be written once the order id is known.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        int64(aggregate.ID()),
		PizzaType: aggregate.PizzaType(),
		Status:    aggregate.Status().String(),
	}
}

// toppingsFromDomain links the aggregate's toppings to orderID.
func toppingsFromDomain(orderID int64, aggregate *order.Order) []ToppingDTO {
	toppings := aggregate.Toppings()
	dtos := make([]ToppingDTO, 0, len(toppings))
	for _, t := range toppings {
		dtos = append(dtos, ToppingDTO{
			OrderID:     orderID,
			Topping:     t.Sequence(),
			ToppingName: t.Name(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate from an order row and its topping rows.
func toDomain(dto OrderDTO) (*order.Order, error) {
	toppings := make([]order.Topping, 0, len(dto.Toppings))
	for _, t := range dto.Toppings {
		topping, err := order.RestoreTopping(order.ID(t.OrderID), t.Topping, t.ToppingName)
		if err != nil {
			return nil, err
		}
		toppings = append(toppings, topping)
	}

	return order.RestoreOrder(order.ID(dto.ID), dto.PizzaType, order.Status(dto.Status), toppings)
}
