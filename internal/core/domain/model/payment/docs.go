// Package payment contains the PaymentIntent aggregate.
//
// A PaymentIntent tracks one charge attempt against an order through the
// external payment gateway. The aggregate stores the local view of the charge
// (amount, gateway reference, outcome references) while the gateway remains
// the source of truth for the money movement itself: status only advances
// when a confirmed gateway outcome is reported back.
//
// Lifecycle: Pending -> Completed -> Refunded, with Pending -> Failed for
// cancelled or declined charges. Failed and Refunded are terminal.
package payment
