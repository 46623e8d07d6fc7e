package payment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment intent.
//
// State transitions:
//
//	Pending -> Completed -> Refunded
//	   │
//	   └────> Failed
//
// Failed and Refunded are terminal: no further transition is permitted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status while the gateway intent awaits confirmation.
	Pending

	// Completed indicates the gateway reported a successful charge.
	Completed

	// Failed indicates the gateway cancelled or declined the charge. Terminal.
	Failed

	// Refunded indicates a completed charge was refunded. Terminal.
	Refunded
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Failed:    "Failed",
		Refunded:  "Refunded",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Completed: "Completed",
		Failed:    "Failed",
		Refunded:  "Refunded",
	}
}

// getTransitions returns the set of targets reachable from each status.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Completed, Failed},
		Completed: {Refunded},
		Failed:    {},
		Refunded:  {},
	}
}

// StatusFromString parses a status from its string representation.
// Used when rehydrating payment intents from storage.
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
	return s == Failed || s == Refunded
}

// IsActive reports whether the intent still holds or may still capture the
// customer's money. An order with an active intent must not open another one.
func (s Status) IsActive() bool {
	return s == Pending || s == Completed
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
