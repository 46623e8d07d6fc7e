package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Shared domain fixtures for the handler tests.

func testItemParams() []commands.OrderItemParam {
	return []commands.OrderItemParam{{
		MenuItemID: kernel.NewUUID(),
		Name:       "Margherita",
		Price:      decimal.RequireFromString("12.50"),
		Quantity:   2,
	}}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), "Margherita", decimal.RequireFromString("12.50"), 2, "")
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, "1 Main Street", "")
	require.NoError(t, err)
	return o
}

func newPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	require.NoError(t, o.MarkPaid("pi_123"))
	return o
}

// newDispatchedOrder is paid, Confirmed through ReadyForPickup and carries a partner.
func newDispatchedOrder(t *testing.T, partnerID kernel.UUID) *order.Order {
	t.Helper()
	o := newPaidOrder(t)
	require.NoError(t, o.AssignPartner(partnerID))
	for _, s := range []order.Status{order.Confirmed, order.Preparing, order.ReadyForPickup} {
		require.NoError(t, o.ChangeStatus(s))
	}
	return o
}

func newPendingIntent(t *testing.T, orderID kernel.UUID) *payment.PaymentIntent {
	t.Helper()
	p, err := payment.NewPaymentIntent(
		kernel.NewUUID(), orderID, decimal.RequireFromString("32.50"), "pi_123")
	require.NoError(t, err)
	return p
}

func newDispatchablePartner(t *testing.T, lat, long float64) *partner.DeliveryPartner {
	t.Helper()
	p, err := partner.NewDeliveryPartner(
		kernel.NewUUID(), "Alice", testHash, partner.Bicycle, "")
	require.NoError(t, err)
	require.NoError(t, p.Verify())
	require.NoError(t, p.SetAvailable())
	point, err := kernel.NewGeoPoint(lat, long)
	require.NoError(t, err)
	require.NoError(t, p.UpdateLocation(point))
	return p
}

// newBusyPartner is verified with one completed delivery, off the pool.
func newBusyPartner(t *testing.T, id kernel.UUID) *partner.DeliveryPartner {
	t.Helper()
	p, err := partner.RestoreDeliveryPartner(
		id, "Alice", testHash, true, false, nil, 0, 0, partner.Bicycle, "")
	require.NoError(t, err)
	return p
}

func newAssignment(t *testing.T, orderID, partnerID kernel.UUID) *assignment.DeliveryAssignment {
	t.Helper()
	a, err := assignment.NewDeliveryAssignment(
		kernel.NewUUID(), orderID, partnerID, "12 Restaurant Row", "1 Main Street", "")
	require.NoError(t, err)
	return a
}

func newDeliveredAssignment(t *testing.T, orderID, partnerID kernel.UUID) *assignment.DeliveryAssignment {
	t.Helper()
	a := newAssignment(t, orderID, partnerID)
	require.NoError(t, a.Advance(assignment.PickedUp, ""))
	require.NoError(t, a.Advance(assignment.InTransit, ""))
	require.NoError(t, a.Advance(assignment.Delivered, ""))
	return a
}

func testGeoPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(48.8566, 2.3522)
	require.NoError(t, err)
	return point
}
