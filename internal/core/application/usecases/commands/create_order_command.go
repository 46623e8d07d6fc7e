package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired  = errors.New("at least one order item is required")
	ErrOrderAddressIsRequired = errors.New("delivery address is required")
)

// OrderItemParam carries one basket line of a new order.
// Item-level validation happens in the domain when the handler builds the
// order; the command only checks the basket is not empty.
type OrderItemParam struct {
	MenuItemID   kernel.UUID
	Name         string
	Price        decimal.Decimal
	Quantity     int
	Instructions string
}

// CreateOrderCommand represents a request to place a new order.
// Totals (subtotal, tax, delivery fee) are derived by the domain, never
// accepted from the caller.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	userID               kernel.UUID
	restaurantID         kernel.UUID
	items                []OrderItemParam
	deliveryAddress      string
	deliveryInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, a non-empty basket and a delivery address.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []OrderItemParam,
	deliveryAddress string,
	deliveryInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryInstructions: deliveryInstructions,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the ordering customer's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// RestaurantID returns the restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the basket lines.
func (c CreateOrderCommand) Items() []OrderItemParam {
	items := make([]OrderItemParam, len(c.items))
	copy(items, c.items)
	return items
}

// DeliveryAddress returns where the order is delivered.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryInstructions returns the customer's delivery notes, may be empty.
func (c CreateOrderCommand) DeliveryInstructions() string {
	return c.deliveryInstructions
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemParam) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = make([]OrderItemParam, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrOrderAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}
