// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Money columns use numeric(12,2); the status is stored as its string form so
// read-side SQL stays legible.
type OrderDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID         uuid.UUID       `gorm:"type:uuid;index"`
	PartnerID            *uuid.UUID      `gorm:"type:uuid;index"`
	Items                []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal             decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax                  decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total                decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status               string          `gorm:"index"`
	IsPaid               bool            `gorm:"index"`
	PaymentRef           string
	DeliveryAddress      string
	DeliveryInstructions string
	CreatedAt            time.Time
	DeliveredAt          *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line in the order_items table.
type ItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID   uuid.UUID `gorm:"type:uuid"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity     int
	Instructions string
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:           uuid.New(),
			OrderID:      aggregate.ID().Bytes(),
			MenuItemID:   item.MenuItemID().Bytes(),
			Name:         item.Name(),
			Price:        item.Price(),
			Quantity:     item.Quantity(),
			Instructions: item.Instructions(),
		})
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		UserID:               aggregate.UserID().Bytes(),
		RestaurantID:         aggregate.RestaurantID().Bytes(),
		PartnerID:            partnerID,
		Items:                itemDTOs,
		Subtotal:             aggregate.Subtotal(),
		Tax:                  aggregate.Tax(),
		DeliveryFee:          aggregate.DeliveryFee(),
		Total:                aggregate.Total(),
		Status:               aggregate.Status().String(),
		IsPaid:               aggregate.IsPaid(),
		PaymentRef:           aggregate.PaymentRef(),
		DeliveryAddress:      aggregate.DeliveryAddress(),
		DeliveryInstructions: aggregate.DeliveryInstructions(),
		CreatedAt:            aggregate.CreatedAt(),
		DeliveredAt:          aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(
			menuItemID, itemDTO.Name, itemDTO.Price, itemDTO.Quantity, itemDTO.Instructions)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, userID, restaurantID, items,
		dto.Subtotal, dto.Tax, dto.DeliveryFee, dto.Total,
		status, dto.IsPaid, dto.PaymentRef, partnerID,
		dto.DeliveryAddress, dto.DeliveryInstructions,
		dto.CreatedAt, dto.DeliveredAt,
	)
}
