// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure taxonomy of the fulfillment core:
//   - ObjectNotFoundError: the requested entity is absent
//   - ConflictError: duplicate creation or a lost concurrent write
//   - UnauthorizedError / ForbiddenError: caller identity failures
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: input validation
//   - InvalidStateError: operation not legal in the current lifecycle state
//   - UpstreamGatewayError: payment-gateway call failed, safe to retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Classification is done with errors.Is against the sentinels; the HTTP
// adapter relies on this to translate failures into response codes.
package errs
