// Package http exposes the fulfillment use cases over a JSON REST API.
// Authentication is a JWT carrying the caller id and role; handlers stay
// thin and translate between request DTOs and commands/queries.
package http

import (
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server wires the HTTP routes to the application layer.
type Server struct {
	// Command handlers
	createOrderHandler            commands.CreateOrderCommandHandler
	updateOrderStatusHandler      commands.UpdateOrderStatusCommandHandler
	createPaymentIntentHandler    commands.CreatePaymentIntentCommandHandler
	confirmPaymentHandler         commands.ConfirmPaymentCommandHandler
	refundPaymentHandler          commands.RefundPaymentCommandHandler
	registerPartnerHandler        commands.RegisterPartnerCommandHandler
	verifyPartnerHandler          commands.VerifyPartnerCommandHandler
	updatePartnerLocationHandler  commands.UpdatePartnerLocationCommandHandler
	setPartnerAvailabilityHandler commands.SetPartnerAvailabilityCommandHandler
	createAssignmentHandler       commands.CreateAssignmentCommandHandler
	advanceDeliveryHandler        commands.AdvanceDeliveryCommandHandler
	rateDeliveryHandler           commands.RateDeliveryCommandHandler

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	getNearbyPartnersHandler     queries.GetNearbyPartnersQueryHandler
	getPartnerAssignmentsHandler queries.GetPartnerAssignmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createPaymentIntentHandler commands.CreatePaymentIntentCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	refundPaymentHandler commands.RefundPaymentCommandHandler,
	registerPartnerHandler commands.RegisterPartnerCommandHandler,
	verifyPartnerHandler commands.VerifyPartnerCommandHandler,
	updatePartnerLocationHandler commands.UpdatePartnerLocationCommandHandler,
	setPartnerAvailabilityHandler commands.SetPartnerAvailabilityCommandHandler,
	createAssignmentHandler commands.CreateAssignmentCommandHandler,
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler,
	rateDeliveryHandler commands.RateDeliveryCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getNearbyPartnersHandler queries.GetNearbyPartnersQueryHandler,
	getPartnerAssignmentsHandler queries.GetPartnerAssignmentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		updateOrderStatusHandler:      updateOrderStatusHandler,
		createPaymentIntentHandler:    createPaymentIntentHandler,
		confirmPaymentHandler:         confirmPaymentHandler,
		refundPaymentHandler:          refundPaymentHandler,
		registerPartnerHandler:        registerPartnerHandler,
		verifyPartnerHandler:          verifyPartnerHandler,
		updatePartnerLocationHandler:  updatePartnerLocationHandler,
		setPartnerAvailabilityHandler: setPartnerAvailabilityHandler,
		createAssignmentHandler:       createAssignmentHandler,
		advanceDeliveryHandler:        advanceDeliveryHandler,
		rateDeliveryHandler:           rateDeliveryHandler,
		getOrderHandler:               getOrderHandler,
		getNearbyPartnersHandler:      getNearbyPartnersHandler,
		getPartnerAssignmentsHandler:  getPartnerAssignmentsHandler,
	}
}

// RegisterRoutes mounts all routes on the echo instance. Everything except
// partner registration and the nearby-partner search requires a valid token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/partners/register", s.RegisterPartner)
	api.GET("/partners/nearby", s.GetNearbyPartners)

	auth := api.Group("", JWTMiddleware(jwtSecret))

	auth.POST("/orders", requireRole(s.CreateOrder, RoleUser))
	auth.GET("/orders/:id", s.GetOrder)
	auth.PUT("/orders/:id/status", requireRole(s.UpdateOrderStatus, RoleService))

	auth.POST("/payments/intents", requireRole(s.CreatePaymentIntent, RoleUser))
	auth.POST("/payments/confirm/:gatewayRef", requireRole(s.ConfirmPayment, RoleService))
	auth.PUT("/payments/:id/refund", requireRole(s.RefundPayment, RoleService))

	auth.PUT("/partners/:id/verify", requireRole(s.VerifyPartner, RoleService))
	auth.PUT("/partners/:id/location", requireRole(s.UpdatePartnerLocation, RolePartner))
	auth.PUT("/partners/:id/availability", requireRole(s.SetPartnerAvailability, RolePartner))

	auth.POST("/deliveries", requireRole(s.CreateAssignment, RoleService))
	auth.PUT("/deliveries/:id/status", requireRole(s.AdvanceDelivery, RolePartner))
	auth.PUT("/deliveries/:id/rate", requireRole(s.RateDelivery, RoleUser))
	auth.GET("/deliveries/partner/all", requireRole(s.GetPartnerAssignments, RolePartner))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	userID, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("restaurantId"))
	}

	items := make([]commands.OrderItemParam, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return respondError(c, errs.NewValueIsInvalidError("menuItemId"))
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return respondError(c, errs.NewValueIsInvalidError("price"))
		}
		items = append(items, commands.OrderItemParam{
			MenuItemID:   menuItemID,
			Name:         item.Name,
			Price:        price,
			Quantity:     item.Quantity,
			Instructions: item.Instructions,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, userID, restaurantID, items, req.DeliveryAddress, req.DeliveryInstructions)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("id"))
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("status"))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreatePaymentIntent handles POST /api/v1/payments/intents.
func (s *Server) CreatePaymentIntent(c echo.Context) error {
	var req CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("orderId"))
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(kernel.NewUUID(), orderID, req.Method)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.createPaymentIntentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, PaymentIntentResponse{
		PaymentID:    result.PaymentID,
		GatewayRef:   result.GatewayRef,
		ClientSecret: result.ClientSecret,
	})
}

// ConfirmPayment handles POST /api/v1/payments/confirm/:gatewayRef.
func (s *Server) ConfirmPayment(c echo.Context) error {
	cmd, err := commands.NewConfirmPaymentCommand(c.Param("gatewayRef"))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.confirmPaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RefundPayment handles PUT /api/v1/payments/:id/refund.
func (s *Server) RefundPayment(c echo.Context) error {
	paymentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("id"))
	}

	var req RefundPaymentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	amount := decimal.Zero
	if req.Amount != "" {
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil {
			return respondError(c, errs.NewValueIsInvalidError("amount"))
		}
	}

	cmd, err := commands.NewRefundPaymentCommand(paymentID, amount, req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.refundPaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RegisterPartner handles POST /api/v1/partners/register.
func (s *Server) RegisterPartner(c echo.Context) error {
	var req RegisterPartnerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	vehicle, err := partner.VehicleFromString(req.Vehicle)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("vehicle"))
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterPartnerCommand(
		partnerID, req.Name, req.Credential, vehicle, req.VehicleNumber)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.registerPartnerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: partnerID.String()})
}

// VerifyPartner handles PUT /api/v1/partners/:id/verify.
func (s *Server) VerifyPartner(c echo.Context) error {
	partnerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("id"))
	}

	cmd, err := commands.NewVerifyPartnerCommand(partnerID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.verifyPartnerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdatePartnerLocation handles PUT /api/v1/partners/:id/location.
func (s *Server) UpdatePartnerLocation(c echo.Context) error {
	partnerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("id"))
	}

	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdatePartnerLocationRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	location, err := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewUpdatePartnerLocationCommand(partnerID, caller, location)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.updatePartnerLocationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetPartnerAvailability handles PUT /api/v1/partners/:id/availability.
func (s *Server) SetPartnerAvailability(c echo.Context) error {
	partnerID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("id"))
	}

	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req SetPartnerAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSetPartnerAvailabilityCommand(partnerID, caller, *req.Available)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.setPartnerAvailabilityHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateAssignment handles POST /api/v1/deliveries.
func (s *Server) CreateAssignment(c echo.Context) error {
	var req CreateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("orderId"))
	}

	pickup, err := kernel.NewGeoPoint(*req.PickupLatitude, *req.PickupLongitude)
	if err != nil {
		return respondError(c, err)
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAssignmentCommand(assignmentID, orderID, pickup, req.PickupAddress)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.createAssignmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: assignmentID.String()})
}

// AdvanceDelivery handles PUT /api/v1/deliveries/:id/status.
func (s *Server) AdvanceDelivery(c echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("id"))
	}

	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req AdvanceDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := assignment.StatusFromString(req.Status)
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("status"))
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(assignmentID, caller, target, req.FailureReason)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.advanceDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RateDelivery handles PUT /api/v1/deliveries/:id/rate.
func (s *Server) RateDelivery(c echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("id"))
	}

	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req RateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRateDeliveryCommand(assignmentID, caller, req.Rating, req.Feedback)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.rateDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidError("id"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(result))
}

// GetNearbyPartners handles GET /api/v1/partners/nearby.
func (s *Server) GetNearbyPartners(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return respondError(c, errs.NewValueIsRequiredError("latitude"))
	}
	long, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return respondError(c, errs.NewValueIsRequiredError("longitude"))
	}

	radius := defaultNearbyRadiusMeters
	if raw := c.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(c, errs.NewValueIsInvalidError("radius"))
		}
	}

	origin, err := kernel.NewGeoPoint(lat, long)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetNearbyPartnersQuery(origin, radius)
	if err != nil {
		return respondError(c, err)
	}

	partners, err := s.getNearbyPartnersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]NearbyPartnerResponse, len(partners))
	for i, p := range partners {
		response[i] = NearbyPartnerResponse{
			ID:             p.ID.String(),
			Name:           p.Name,
			Latitude:       p.Location.Latitude(),
			Longitude:      p.Location.Longitude(),
			Rating:         p.Rating,
			Vehicle:        p.Vehicle,
			DistanceMeters: p.DistanceMeters,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetPartnerAssignments handles GET /api/v1/deliveries/partner/all.
func (s *Server) GetPartnerAssignments(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetPartnerAssignmentsQuery(caller)
	if err != nil {
		return respondError(c, err)
	}

	history, err := s.getPartnerAssignmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]PartnerAssignmentResponse, len(history))
	for i, a := range history {
		response[i] = PartnerAssignmentResponse{
			ID:              a.ID.String(),
			OrderID:         a.OrderID.String(),
			Status:          a.Status,
			PickupAddress:   a.PickupAddress,
			DeliveryAddress: a.DeliveryAddress,
			AssignedAt:      a.AssignedAt,
			DeliveredAt:     a.DeliveredAt,
			FailureReason:   a.FailureReason,
			CustomerRating:  a.CustomerRating,
		}
	}

	return c.JSON(http.StatusOK, response)
}

const defaultNearbyRadiusMeters = 5000.0

func toOrderResponse(result *queries.GetOrderQueryResponse) OrderResponse {
	response := OrderResponse{
		ID:                   result.ID.String(),
		UserID:               result.UserID.String(),
		RestaurantID:         result.RestaurantID.String(),
		Subtotal:             result.Subtotal.StringFixed(2),
		Tax:                  result.Tax.StringFixed(2),
		DeliveryFee:          result.DeliveryFee.StringFixed(2),
		Total:                result.Total.StringFixed(2),
		Status:               result.Status,
		IsPaid:               result.IsPaid,
		DeliveryAddress:      result.DeliveryAddress,
		DeliveryInstructions: result.DeliveryInstructions,
		CreatedAt:            result.CreatedAt,
		DeliveredAt:          result.DeliveredAt,
	}

	response.Items = make([]OrderItemResponse, len(result.Items))
	for i, item := range result.Items {
		response.Items[i] = OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			Price:      item.Price.StringFixed(2),
			Quantity:   item.Quantity,
		}
	}

	if result.Payment != nil {
		response.Payment = &OrderPaymentResponse{
			PaymentID:     result.Payment.PaymentID.String(),
			Status:        result.Payment.Status,
			GatewayRef:    result.Payment.GatewayRef,
			FailureReason: result.Payment.FailureReason,
		}
	}

	if result.Delivery != nil {
		response.Delivery = &OrderDeliveryResponse{
			AssignmentID:  result.Delivery.AssignmentID.String(),
			PartnerID:     result.Delivery.PartnerID.String(),
			Status:        result.Delivery.Status,
			AssignedAt:    result.Delivery.AssignedAt,
			PickedUpAt:    result.Delivery.PickedUpAt,
			DeliveredAt:   result.Delivery.DeliveredAt,
			FailureReason: result.Delivery.FailureReason,
		}
	}

	return response
}
