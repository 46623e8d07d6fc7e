package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves the order tracking read model from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and assembles the read model.
// Returns ObjectNotFound when the order does not exist. The payment and
// delivery slices stay nil until those records appear.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if response.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return nil, err
	}
	if response.Payment, err = h.loadPayment(ctx, query.OrderID()); err != nil {
		return nil, err
	}
	if response.Delivery, err = h.loadDelivery(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*GetOrderQueryResponse, error) {
	var response GetOrderQueryResponse
	var id, userID, restaurantID uuid.UUID
	var instructions sql.NullString
	var deliveredAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			restaurant_id,
			subtotal,
			tax,
			delivery_fee,
			total,
			status,
			is_paid,
			delivery_address,
			delivery_instructions,
			created_at,
			delivered_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&userID,
		&restaurantID,
		&response.Subtotal,
		&response.Tax,
		&response.DeliveryFee,
		&response.Total,
		&response.Status,
		&response.IsPaid,
		&response.DeliveryAddress,
		&instructions,
		&response.CreatedAt,
		&deliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return nil, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return nil, err
	}
	if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return nil, err
	}
	response.DeliveryInstructions = instructions.String
	if deliveredAt.Valid {
		t := deliveredAt.Time
		response.DeliveredAt = &t
	}

	return &response, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var menuItemID uuid.UUID

		if err = rows.Scan(&menuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}

		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderQueryHandler) loadPayment(
	ctx context.Context,
	orderID kernel.UUID,
) (*OrderPaymentResponse, error) {
	var response OrderPaymentResponse
	var paymentID uuid.UUID
	var failureReason sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			gateway_ref,
			failure_reason
		FROM payments
		WHERE order_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, orderID.Bytes()).Row()

	err := row.Scan(&paymentID, &response.Status, &response.GatewayRef, &failureReason)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if response.PaymentID, err = kernel.UUIDFromBytes(paymentID[:]); err != nil {
		return nil, err
	}
	response.FailureReason = failureReason.String

	return &response, nil
}

func (h GetOrderQueryHandler) loadDelivery(
	ctx context.Context,
	orderID kernel.UUID,
) (*OrderDeliveryResponse, error) {
	var response OrderDeliveryResponse
	var assignmentID, partnerID uuid.UUID
	var pickedUpAt, deliveredAt sql.NullTime
	var failureReason sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			partner_id,
			status,
			assigned_at,
			picked_up_at,
			delivered_at,
			failure_reason
		FROM assignments
		WHERE order_id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&assignmentID,
		&partnerID,
		&response.Status,
		&response.AssignedAt,
		&pickedUpAt,
		&deliveredAt,
		&failureReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if response.AssignmentID, err = kernel.UUIDFromBytes(assignmentID[:]); err != nil {
		return nil, err
	}
	if response.PartnerID, err = kernel.UUIDFromBytes(partnerID[:]); err != nil {
		return nil, err
	}
	if pickedUpAt.Valid {
		t := pickedUpAt.Time
		response.PickedUpAt = &t
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		response.DeliveredAt = &t
	}
	response.FailureReason = failureReason.String

	return &response, nil
}
