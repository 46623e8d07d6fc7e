// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order together with its payment and delivery
// state. The read model joins what the write side keeps in three aggregates,
// so order tracking needs a single round trip.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the order tracking read model.
// Payment and Delivery are nil until the corresponding record exists.
type GetOrderQueryResponse struct {
	ID                   kernel.UUID
	UserID               kernel.UUID
	RestaurantID         kernel.UUID
	Items                []OrderItemResponse
	Subtotal             decimal.Decimal
	Tax                  decimal.Decimal
	DeliveryFee          decimal.Decimal
	Total                decimal.Decimal
	Status               string
	IsPaid               bool
	DeliveryAddress      string
	DeliveryInstructions string
	CreatedAt            time.Time
	DeliveredAt          *time.Time
	Payment              *OrderPaymentResponse
	Delivery             *OrderDeliveryResponse
}

// OrderItemResponse is one line of the order in the read model.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

// OrderPaymentResponse is the payment slice of the order read model.
type OrderPaymentResponse struct {
	PaymentID     kernel.UUID
	Status        string
	GatewayRef    string
	FailureReason string
}

// OrderDeliveryResponse is the delivery slice of the order read model.
type OrderDeliveryResponse struct {
	AssignmentID  kernel.UUID
	PartnerID     kernel.UUID
	Status        string
	AssignedAt    time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
	FailureReason string
}
