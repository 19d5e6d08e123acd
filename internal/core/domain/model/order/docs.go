// Package order provides the Order aggregate of the pizzeria: an order for one
// pizza type with its toppings and a status.
//
// The package includes:
//   - Order: The aggregate root that owns identity, pizza type, status and toppings
//   - Topping: A child entity identified by (order id, sequence)
//   - Status: The order status with the named kitchen states
//
// Key business rules:
//   - A new order always starts in Pending status and has no identifier until the store assigns one
//   - The identifier is assigned once and never changes
//   - Status can be overwritten with any value; no transition table is enforced
//   - Only a Pending order can be claimed by the kitchen
//   - Text fields are bounded by the column sizes of the order store
package order
