package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a use case error onto an HTTP status and writes the
// JSON error body. Unknown errors become 500 with a generic message so
// internals never leak to the caller.
func respondError(c echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrUpstreamGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
