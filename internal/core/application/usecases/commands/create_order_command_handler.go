package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Builds the order aggregate from the basket, letting the domain derive the
// financial snapshot, and persists it in Created status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, param := range cmd.Items() {
		item, err := order.NewItem(
			param.MenuItemID, param.Name, param.Price, param.Quantity, param.Instructions)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), cmd.RestaurantID(),
		items, cmd.DeliveryAddress(), cmd.DeliveryInstructions())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
