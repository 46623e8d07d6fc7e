// Package order provides domain entities and business logic for customer
// orders in the fulfillment system. It implements the Order aggregate root
// with its financial snapshot and lifecycle state machine.
//
// The package includes:
//   - Order: The aggregate root owning line items, computed totals, payment
//     flag, and the linked delivery partner
//   - Item: An immutable line-item value object (price × quantity subtotal)
//   - Status: A state machine enforcing the strict fulfillment workflow
//
// Key business rules:
//   - total = subtotal + tax + deliveryFee, computed once at creation with
//     fixed-point decimal arithmetic
//   - Status follows Created -> Confirmed -> Preparing -> ReadyForPickup ->
//     OutForDelivery -> Delivered, with Cancelled reachable from any
//     non-terminal status; transitions outside the table are rejected
//   - OutForDelivery and Delivered require a linked delivery partner
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
