package http

import "time"

// Request bodies bound from JSON. Coordinates and booleans use pointers so
// "absent" and "zero" stay distinguishable for validation.

type OrderItemRequest struct {
	MenuItemID   string `json:"menuItemId"   validate:"required,uuid"`
	Name         string `json:"name"         validate:"required"`
	Price        string `json:"price"        validate:"required"`
	Quantity     int    `json:"quantity"     validate:"required,min=1"`
	Instructions string `json:"instructions"`
}

type CreateOrderRequest struct {
	RestaurantID         string             `json:"restaurantId" validate:"required,uuid"`
	Items                []OrderItemRequest `json:"items"        validate:"required,min=1,dive"`
	DeliveryAddress      string             `json:"deliveryAddress" validate:"required"`
	DeliveryInstructions string             `json:"deliveryInstructions"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreatePaymentIntentRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
	Method  string `json:"method"`
}

type RefundPaymentRequest struct {
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

type RegisterPartnerRequest struct {
	Name          string `json:"name"       validate:"required"`
	Credential    string `json:"credential" validate:"required,min=8"`
	Vehicle       string `json:"vehicle"    validate:"required"`
	VehicleNumber string `json:"vehicleNumber"`
}

type UpdatePartnerLocationRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

type SetPartnerAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type CreateAssignmentRequest struct {
	OrderID         string   `json:"orderId"         validate:"required,uuid"`
	PickupAddress   string   `json:"pickupAddress"   validate:"required"`
	PickupLatitude  *float64 `json:"pickupLatitude"  validate:"required"`
	PickupLongitude *float64 `json:"pickupLongitude" validate:"required"`
}

type AdvanceDeliveryRequest struct {
	Status        string `json:"status" validate:"required"`
	FailureReason string `json:"failureReason"`
}

type RateDeliveryRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}

// Response bodies.

type CreatedResponse struct {
	ID string `json:"id"`
}

type PaymentIntentResponse struct {
	PaymentID    string `json:"paymentId"`
	GatewayRef   string `json:"gatewayRef"`
	ClientSecret string `json:"clientSecret"`
}

type OrderItemResponse struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
}

type OrderPaymentResponse struct {
	PaymentID     string `json:"paymentId"`
	Status        string `json:"status"`
	GatewayRef    string `json:"gatewayRef"`
	FailureReason string `json:"failureReason,omitempty"`
}

type OrderDeliveryResponse struct {
	AssignmentID  string     `json:"assignmentId"`
	PartnerID     string     `json:"partnerId"`
	Status        string     `json:"status"`
	AssignedAt    time.Time  `json:"assignedAt"`
	PickedUpAt    *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty"`
	FailureReason string     `json:"failureReason,omitempty"`
}

type OrderResponse struct {
	ID                   string                 `json:"id"`
	UserID               string                 `json:"userId"`
	RestaurantID         string                 `json:"restaurantId"`
	Items                []OrderItemResponse    `json:"items"`
	Subtotal             string                 `json:"subtotal"`
	Tax                  string                 `json:"tax"`
	DeliveryFee          string                 `json:"deliveryFee"`
	Total                string                 `json:"total"`
	Status               string                 `json:"status"`
	IsPaid               bool                   `json:"isPaid"`
	DeliveryAddress      string                 `json:"deliveryAddress"`
	DeliveryInstructions string                 `json:"deliveryInstructions,omitempty"`
	CreatedAt            time.Time              `json:"createdAt"`
	DeliveredAt          *time.Time             `json:"deliveredAt,omitempty"`
	Payment              *OrderPaymentResponse  `json:"payment,omitempty"`
	Delivery             *OrderDeliveryResponse `json:"delivery,omitempty"`
}

type NearbyPartnerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Rating         float64 `json:"rating"`
	Vehicle        string  `json:"vehicle"`
	DistanceMeters float64 `json:"distanceMeters"`
}

type PartnerAssignmentResponse struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"orderId"`
	Status          string     `json:"status"`
	PickupAddress   string     `json:"pickupAddress"`
	DeliveryAddress string     `json:"deliveryAddress"`
	AssignedAt      time.Time  `json:"assignedAt"`
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
	FailureReason   string     `json:"failureReason,omitempty"`
	CustomerRating  *int       `json:"customerRating,omitempty"`
}
