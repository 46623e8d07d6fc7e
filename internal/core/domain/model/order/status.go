package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Created -> Confirmed -> Preparing -> ReadyForPickup -> OutForDelivery -> Delivered
//	   │           │            │              │                 │
//	   └───────────┴────────────┴──────────────┴─────────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no further transition is permitted.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	Created

	// Confirmed indicates payment completed and the restaurant notified.
	Confirmed

	// Preparing indicates the restaurant is preparing the order.
	Preparing

	// ReadyForPickup indicates the order awaits pickup by a delivery partner.
	ReadyForPickup

	// OutForDelivery indicates a delivery partner carries the order.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Created:        "Created",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		ReadyForPickup: "ReadyForPickup",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "Created",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		ReadyForPickup: "ReadyForPickup",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getTransitions returns the set of targets reachable from each status.
// Cancellation is reachable from every non-terminal status; the forward path
// is strictly linear.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {ReadyForPickup, Cancelled},
		ReadyForPickup: {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses a status from its string representation.
// Used when rehydrating orders from storage and when accepting API input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a known status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateTransition checks whether target is reachable from the current
// status without performing the transition. Returns InvalidState when the
// transition is not in the table.
func (s Status) ValidateTransition(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return nil
		}
	}

	return errs.NewInvalidStateError(
		fmt.Sprintf("transition to %s", target), s.String())
}

// TransitionTo transitions to the target status.
// Returns (target, nil) on a valid transition or (0, InvalidState) when the
// target is not reachable from the current status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.ValidateTransition(target); err != nil {
		return 0, err
	}

	return target, nil
}
