package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Pricing constants applied to every order. Money is fixed-point decimal
// throughout so subtotal, tax, and total reconcile exactly.
var (
	// TaxRate is the flat tax fraction applied to the order subtotal.
	TaxRate = decimal.NewFromFloat(0.10)
	// FlatDeliveryFee is the delivery fee added to every order.
	FlatDeliveryFee = decimal.NewFromFloat(5.00)
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through a constructor function.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when attempting to create an order without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrDeliveryAddressIsRequired is returned when the delivery address is empty.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrOrderIsAlreadyPaid is returned when marking an already-paid order paid again.
	ErrOrderIsAlreadyPaid = errs.NewConflictError("order is already paid")
	// ErrPartnerIsAlreadyAssigned is returned when a delivery partner is already linked.
	ErrPartnerIsAlreadyAssigned = errs.NewConflictError("delivery partner is already assigned")
)

// Order is the aggregate root for a customer order. It owns the financial
// snapshot computed at creation time (line items, subtotal, tax, delivery
// fee, total) and drives the order's own lifecycle through the Status state
// machine.
//
// Order invariants:
//   - total = subtotal + tax + deliveryFee; line subtotal = price × quantity
//   - everything except status, isPaid, paymentRef, partnerID, and
//     deliveredAt is immutable after construction
//   - OutForDelivery and Delivered require a linked delivery partner
//   - Delivered stamps the delivery timestamp
//
// Orders are never deleted, only terminated (Delivered or Cancelled).
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID
	items        []Item

	subtotal    decimal.Decimal
	tax         decimal.Decimal
	deliveryFee decimal.Decimal
	total       decimal.Decimal

	status     Status
	isPaid     bool
	paymentRef string
	partnerID  *kernel.UUID

	deliveryAddress      string
	deliveryInstructions string

	createdAt   time.Time
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in Created status and computes its financial
// snapshot from the line items: subtotal is the sum of line subtotals, tax is
// TaxRate × subtotal, and total is subtotal + tax + FlatDeliveryFee.
//
// Returns a validation error when the identifiers are invalid, the item list
// is empty, any item is improperly constructed, or the delivery address is
// missing.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	deliveryAddress string,
	deliveryInstructions string,
) (*Order, error) {
	o := &Order{
		status:               Created,
		deliveryInstructions: deliveryInstructions,
		createdAt:            time.Now().UTC(),
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.subtotal = decimal.Zero
	for _, item := range o.items {
		o.subtotal = o.subtotal.Add(item.Subtotal())
	}
	o.tax = o.subtotal.Mul(TaxRate)
	o.deliveryFee = FlatDeliveryFee
	o.total = o.subtotal.Add(o.tax).Add(o.deliveryFee)

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it does not recompute the financial snapshot: the stored
// amounts are authoritative. The restored order behaves identically to one
// created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	subtotal, tax, deliveryFee, total decimal.Decimal,
	status Status,
	isPaid bool,
	paymentRef string,
	partnerID *kernel.UUID,
	deliveryAddress string,
	deliveryInstructions string,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		subtotal:             subtotal,
		tax:                  tax,
		deliveryFee:          deliveryFee,
		total:                total,
		isPaid:               isPaid,
		paymentRef:           paymentRef,
		deliveryInstructions: deliveryInstructions,
		createdAt:            createdAt,
		deliveredAt:          deliveredAt,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
		id := *partnerID
		o.partnerID = &id
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the ordering customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of line subtotals.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// Tax returns the tax amount.
func (o *Order) Tax() decimal.Decimal {
	return o.tax
}

// DeliveryFee returns the delivery fee.
func (o *Order) DeliveryFee() decimal.Decimal {
	return o.deliveryFee
}

// Total returns subtotal + tax + deliveryFee.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether the order's payment has completed.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// PaymentRef returns the linked payment reference, empty when unpaid.
func (o *Order) PaymentRef() string {
	return o.paymentRef
}

// Partner returns the linked delivery partner's ID, nil when unassigned.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// DeliveryAddress returns the delivery destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryInstructions returns the free-text delivery instructions.
func (o *Order) DeliveryInstructions() string {
	return o.deliveryInstructions
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, nil until Delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ChangeStatus transitions the order to the target status.
//
// The transition must be defined in the status table; anything else fails
// with InvalidState, including any transition out of a terminal status.
// OutForDelivery and Delivered additionally require a linked delivery
// partner. Reaching Delivered stamps the delivery timestamp.
func (o *Order) ChangeStatus(target Status) error {
	if (target == OutForDelivery || target == Delivered) && o.partnerID == nil {
		return errs.NewInvalidStateErrorWithCause(
			"transition to "+target.String(), o.status.String(),
			errors.New("no delivery partner is assigned"))
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		now := time.Now().UTC()
		o.deliveredAt = &now
	}

	return nil
}

// MarkPaid records a completed payment against the order.
// Fails with Conflict when the order is already paid; the payment reference
// is required.
func (o *Order) MarkPaid(paymentRef string) error {
	if o.isPaid {
		return ErrOrderIsAlreadyPaid
	}
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}

	o.isPaid = true
	o.paymentRef = paymentRef
	return nil
}

// AssignPartner links a delivery partner to the order.
// Fails with Conflict when a partner is already linked and with InvalidState
// when the order is in a terminal status.
func (o *Order) AssignPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if o.partnerID != nil {
		return ErrPartnerIsAlreadyAssigned
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("assign delivery partner", o.status.String())
	}

	o.partnerID = &partnerID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}
