package assignment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery assignment.
//
// State transitions:
//
//	Assigned -> PickedUp -> InTransit -> Delivered
//	   │           │            │
//	   └───────────┴────────────┴──> Failed
//
// Delivered and Failed are terminal: no further transition is permitted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Assigned is the initial status when a partner accepts the delivery.
	Assigned

	// PickedUp indicates the partner collected the order from the restaurant.
	PickedUp

	// InTransit indicates the partner is en route to the customer.
	InTransit

	// Delivered indicates the order was handed to the customer. Terminal.
	Delivered

	// Failed indicates the delivery could not complete. Terminal.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

// getTransitions returns the set of targets reachable from each status.
// Failure is reachable from every non-terminal status; the forward path is
// strictly linear.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Assigned:  {PickedUp, Failed},
		PickedUp:  {InTransit, Failed},
		InTransit: {Delivered, Failed},
		Delivered: {},
		Failed:    {},
	}
}

// StatusFromString parses a status from its string representation.
// Used when rehydrating assignments from storage and when accepting API input.
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
	return s == Delivered || s == Failed
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
