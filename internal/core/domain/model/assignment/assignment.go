package assignment

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// CustomerRatingMin is the lowest rating a customer can leave.
	CustomerRatingMin = 1
	// CustomerRatingMax is the highest rating a customer can leave.
	CustomerRatingMax = 5
)

// Domain errors for delivery assignment operations.
var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly
	// initialized DeliveryAssignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"DeliveryAssignment must be created via NewDeliveryAssignment constructor")
	// ErrPickupAddressIsRequired is returned when the pickup address is empty.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickupAddress")
	// ErrDeliveryAddressIsRequired is returned when the delivery address is empty.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
	// ErrFailureReasonIsRequired is returned when failing without a reason.
	ErrFailureReasonIsRequired = errs.NewValueIsRequiredError("failureReason")
	// ErrAssignmentIsAlreadyRated is returned when rating an assignment twice.
	ErrAssignmentIsAlreadyRated = errs.NewConflictError("assignment is already rated")
)

// DeliveryAssignment represents one partner carrying one order.
// It is an aggregate root tracking the hand-off milestones from acceptance to
// delivery, the failure outcome, and the customer's one-shot rating.
//
// Business rules:
//   - Exactly one assignment may ever exist per order; the use case layer and
//     a unique index on orderID enforce this across aggregates
//   - Milestones advance only along the status transition table
//   - Failing requires a reason; Delivered and Failed are final
//   - A rating can be recorded once, and only after delivery
type DeliveryAssignment struct {
	id                   kernel.UUID
	orderID              kernel.UUID
	partnerID            kernel.UUID
	status               Status
	pickupAddress        string
	deliveryAddress      string
	deliveryInstructions string
	assignedAt           time.Time
	pickedUpAt           *time.Time
	deliveredAt          *time.Time
	failureReason        string
	customerRating       *int
	customerFeedback     string

	guard guard.ConstructorGuard
}

// NewDeliveryAssignment creates an assignment in the Assigned state.
func NewDeliveryAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	deliveryInstructions string,
) (*DeliveryAssignment, error) {
	a := &DeliveryAssignment{
		status:               Assigned,
		deliveryInstructions: deliveryInstructions,
		assignedAt:           time.Now().UTC(),
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setPartnerID(partnerID),
		a.setPickupAddress(pickupAddress),
		a.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreDeliveryAssignment reconstructs a DeliveryAssignment aggregate from
// persistent storage.
func RestoreDeliveryAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID kernel.UUID,
	status Status,
	pickupAddress string,
	deliveryAddress string,
	deliveryInstructions string,
	assignedAt time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	failureReason string,
	customerRating *int,
	customerFeedback string,
) (*DeliveryAssignment, error) {
	a := &DeliveryAssignment{
		deliveryInstructions: deliveryInstructions,
		assignedAt:           assignedAt,
		pickedUpAt:           pickedUpAt,
		deliveredAt:          deliveredAt,
		failureReason:        failureReason,
		customerFeedback:     customerFeedback,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setPartnerID(partnerID),
		a.setPickupAddress(pickupAddress),
		a.setDeliveryAddress(deliveryAddress),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	a.status = status

	if customerRating != nil {
		if *customerRating < CustomerRatingMin || *customerRating > CustomerRatingMax {
			return nil, errs.NewValueIsOutOfRangeError(
				"customerRating", *customerRating, CustomerRatingMin, CustomerRatingMax)
		}
		rating := *customerRating
		a.customerRating = &rating
	}

	return a, nil
}

// Validate checks whether the DeliveryAssignment was properly constructed.
// The zero value is invalid and fails this validation.
func (a *DeliveryAssignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by identity.
func (a *DeliveryAssignment) IsEqual(other *DeliveryAssignment) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *DeliveryAssignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the order being delivered.
func (a *DeliveryAssignment) OrderID() kernel.UUID {
	return a.orderID
}

// PartnerID returns the identifier of the partner carrying the order.
func (a *DeliveryAssignment) PartnerID() kernel.UUID {
	return a.partnerID
}

// Status returns the current lifecycle status.
func (a *DeliveryAssignment) Status() Status {
	return a.status
}

// PickupAddress returns where the partner collects the order.
func (a *DeliveryAssignment) PickupAddress() string {
	return a.pickupAddress
}

// DeliveryAddress returns where the order is handed to the customer.
func (a *DeliveryAssignment) DeliveryAddress() string {
	return a.deliveryAddress
}

// DeliveryInstructions returns the customer's delivery notes, may be empty.
func (a *DeliveryAssignment) DeliveryInstructions() string {
	return a.deliveryInstructions
}

// AssignedAt returns when the partner accepted the delivery.
func (a *DeliveryAssignment) AssignedAt() time.Time {
	return a.assignedAt
}

// PickedUpAt returns when the order was collected, nil before pickup.
func (a *DeliveryAssignment) PickedUpAt() *time.Time {
	return a.pickedUpAt
}

// DeliveredAt returns when the order was delivered, nil before delivery.
func (a *DeliveryAssignment) DeliveredAt() *time.Time {
	return a.deliveredAt
}

// FailureReason returns why the delivery failed, empty unless Failed.
func (a *DeliveryAssignment) FailureReason() string {
	return a.failureReason
}

// CustomerRating returns the customer's rating, nil until rated.
func (a *DeliveryAssignment) CustomerRating() *int {
	if a.customerRating == nil {
		return nil
	}
	rating := *a.customerRating
	return &rating
}

// CustomerFeedback returns the customer's free-form feedback, may be empty.
func (a *DeliveryAssignment) CustomerFeedback() string {
	return a.customerFeedback
}

// Advance moves the assignment to the target milestone.
// PickedUp stamps pickedUpAt, Delivered stamps deliveredAt, Failed requires a
// non-empty reason. Any transition outside the table returns InvalidState.
func (a *DeliveryAssignment) Advance(target Status, failureReason string) error {
	if target == Failed && failureReason == "" {
		return ErrFailureReasonIsRequired
	}

	next, err := a.status.TransitionTo(target)
	if err != nil {
		return err
	}

	a.status = next
	switch next { //nolint:exhaustive // only milestone stamps need handling
	case PickedUp:
		now := time.Now().UTC()
		a.pickedUpAt = &now
	case Delivered:
		now := time.Now().UTC()
		a.deliveredAt = &now
	case Failed:
		a.failureReason = failureReason
	}

	return nil
}

// Rate records the customer's one-shot rating of the delivery.
// Returns InvalidState unless the assignment is Delivered, Conflict when a
// rating already exists, and an out-of-range error outside [1..5].
func (a *DeliveryAssignment) Rate(rating int, feedback string) error {
	if rating < CustomerRatingMin || rating > CustomerRatingMax {
		return errs.NewValueIsOutOfRangeError(
			"rating", rating, CustomerRatingMin, CustomerRatingMax)
	}
	if a.status != Delivered {
		return errs.NewInvalidStateError("rate delivery", a.status.String())
	}
	if a.customerRating != nil {
		return ErrAssignmentIsAlreadyRated
	}

	r := rating
	a.customerRating = &r
	a.customerFeedback = feedback
	return nil
}

func (a *DeliveryAssignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

func (a *DeliveryAssignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	a.orderID = orderID
	return nil
}

func (a *DeliveryAssignment) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	a.partnerID = partnerID
	return nil
}

func (a *DeliveryAssignment) setPickupAddress(address string) error {
	if address == "" {
		return ErrPickupAddressIsRequired
	}

	a.pickupAddress = address
	return nil
}

func (a *DeliveryAssignment) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	a.deliveryAddress = address
	return nil
}
