package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for line-item construction.
var (
	// ErrItemNameIsRequired is returned when a line item has no name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item represents one ordered line: a menu item at a unit price, a quantity,
// and optional free-text preparation instructions. Items are immutable value
// objects; the per-line subtotal is always price × quantity.
//
// Money is carried as fixed-point decimal, never floating point, so line
// subtotals reconcile exactly with the order totals.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	name         string
	price        decimal.Decimal
	quantity     int
	instructions string
	guard        guard.ConstructorGuard
}

// NewItem creates a validated line item.
// The menu-item ID must be a valid UUID, the name non-empty, the unit price
// positive, and the quantity at least 1.
func NewItem(
	menuItemID kernel.UUID,
	name string,
	price decimal.Decimal,
	quantity int,
	instructions string,
) (Item, error) {
	item := Item{
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the display name of the ordered menu item.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Instructions returns the free-text preparation instructions.
func (i Item) Instructions() string {
	return i.instructions
}

// Subtotal returns price × quantity for this line.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() || price.IsZero() {
		return errs.NewValueIsInvalidError("item price must be positive")
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
