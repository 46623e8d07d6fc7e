package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidItem(t *testing.T, price string, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), "Margherita", decimal.RequireFromString(price), quantity, "")
	require.NoError(t, err)
	return item
}

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{createValidItem(t, "12.50", 2)},
		"1 Main Street", "leave at the door")
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

// advanceTo walks the order along the forward path until it reaches target.
func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	path := []order.Status{
		order.Confirmed, order.Preparing, order.ReadyForPickup,
		order.OutForDelivery, order.Delivered,
	}
	for _, s := range path {
		if o.Status() == target {
			return
		}
		require.NoError(t, o.ChangeStatus(s))
	}
	require.Equal(t, target, o.Status())
}

func TestNewItem(t *testing.T) {
	t.Run("should create item and compute line subtotal", func(t *testing.T) {
		item, err := order.NewItem(
			kernel.NewUUID(), "Margherita", decimal.RequireFromString("12.50"), 3, "extra basil")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Margherita", item.Name())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "extra basil", item.Instructions())
		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("37.50")))
	})

	t.Run("should return error for invalid inputs", func(t *testing.T) {
		validID := kernel.NewUUID()
		price := decimal.RequireFromString("12.50")

		_, err := order.NewItem(kernel.UUID{}, "Margherita", price, 1, "")
		require.Error(t, err)

		_, err = order.NewItem(validID, "", price, 1, "")
		require.Error(t, err)

		_, err = order.NewItem(validID, "Margherita", decimal.Zero, 1, "")
		require.Error(t, err)

		_, err = order.NewItem(validID, "Margherita", decimal.RequireFromString("-1"), 1, "")
		require.Error(t, err)

		_, err = order.NewItem(validID, "Margherita", price, 0, "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item
		require.Error(t, item.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should compute totals from items", func(t *testing.T) {
		// Basket: (10.00 x 2) + (5.00 x 1) with 10% tax and a flat 5.00 fee.
		items := []order.Item{
			createValidItem(t, "10.00", 2),
			createValidItem(t, "5.00", 1),
		}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, "1 Main Street", "")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.Subtotal().Equal(decimal.RequireFromString("25.00")),
			"subtotal = %s", o.Subtotal())
		assert.True(t, o.Tax().Equal(decimal.RequireFromString("2.50")),
			"tax = %s", o.Tax())
		assert.True(t, o.DeliveryFee().Equal(decimal.RequireFromString("5.00")))
		assert.True(t, o.Total().Equal(decimal.RequireFromString("32.50")),
			"total = %s", o.Total())
		assert.Equal(t, order.Created, o.Status())
		assert.False(t, o.IsPaid())
		assert.Nil(t, o.Partner())
		assert.Nil(t, o.DeliveredAt())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("total always reconciles with parts", func(t *testing.T) {
		o := createValidOrder(t)

		sum := o.Subtotal().Add(o.Tax()).Add(o.DeliveryFee())
		assert.True(t, o.Total().Equal(sum))
	})

	t.Run("should return error for empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "1 Main Street", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for missing address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{createValidItem(t, "10.00", 1)}, "", "")

		require.Error(t, err)
	})

	t.Run("should return error for invalid IDs", func(t *testing.T) {
		items := []order.Item{createValidItem(t, "10.00", 1)}

		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), items, "a", "")
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), items, "a", "")
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, items, "a", "")
		require.Error(t, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		require.Error(t, o.Validate())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks the full forward path", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.AssignPartner(kernel.NewUUID()))

		advanceTo(t, o, order.Delivered)

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
	})

	t.Run("rejects illegal transition", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ChangeStatus(order.Preparing)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("rejects OutForDelivery without a partner", func(t *testing.T) {
		o := createValidOrder(t)
		advanceTo(t, o, order.ReadyForPickup)

		err := o.ChangeStatus(order.OutForDelivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.ReadyForPickup, o.Status())
	})

	t.Run("cancellation is terminal", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		err := o.ChangeStatus(order.Confirmed)

		require.Error(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("records payment reference", func(t *testing.T) {
		o := createValidOrder(t)

		require.NoError(t, o.MarkPaid("pi_123"))

		assert.True(t, o.IsPaid())
		assert.Equal(t, "pi_123", o.PaymentRef())
	})

	t.Run("second payment fails with conflict", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.MarkPaid("pi_123"))

		err := o.MarkPaid("pi_456")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, "pi_123", o.PaymentRef())
	})

	t.Run("empty reference is rejected", func(t *testing.T) {
		o := createValidOrder(t)

		require.Error(t, o.MarkPaid(""))
		assert.False(t, o.IsPaid())
	})
}

func TestOrder_AssignPartner(t *testing.T) {
	t.Run("links the partner once", func(t *testing.T) {
		o := createValidOrder(t)
		partnerID := kernel.NewUUID()

		require.NoError(t, o.AssignPartner(partnerID))

		require.NotNil(t, o.Partner())
		assert.True(t, o.Partner().IsEqual(partnerID))
	})

	t.Run("second assignment fails with conflict", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.AssignPartner(kernel.NewUUID()))

		err := o.AssignPartner(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("terminal order rejects assignment", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		err := o.AssignPartner(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round-trips aggregate state", func(t *testing.T) {
		original := createValidOrder(t)
		require.NoError(t, original.MarkPaid("pi_123"))

		restored, err := order.RestoreOrder(
			original.ID(), original.UserID(), original.RestaurantID(),
			original.Items(),
			original.Subtotal(), original.Tax(), original.DeliveryFee(), original.Total(),
			original.Status(), original.IsPaid(), original.PaymentRef(),
			original.Partner(),
			original.DeliveryAddress(), original.DeliveryInstructions(),
			original.CreatedAt(), original.DeliveredAt(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, original.Status(), restored.Status())
		assert.True(t, restored.Total().Equal(original.Total()))
		assert.True(t, restored.IsPaid())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		original := createValidOrder(t)

		_, err := order.RestoreOrder(
			original.ID(), original.UserID(), original.RestaurantID(),
			original.Items(),
			original.Subtotal(), original.Tax(), original.DeliveryFee(), original.Total(),
			order.Unknown, false, "", nil,
			original.DeliveryAddress(), "",
			original.CreatedAt(), nil,
		)

		require.Error(t, err)
	})
}
