package http

import (
	"net/http"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func Test_statusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"NotFound", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"Conflict", errs.NewConflictError("order already has an assignment"), http.StatusConflict},
		{"InvalidState", errs.NewInvalidStateError("refund", "Pending"), http.StatusConflict},
		{"ValueIsInvalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"ValueIsRequired", errs.NewValueIsRequiredError("latitude"), http.StatusBadRequest},
		{"ValueIsOutOfRange", errs.NewValueIsOutOfRangeError("rating", 6, 1, 5), http.StatusBadRequest},
		{"Unauthorized", errs.NewUnauthorizedError("no caller identity"), http.StatusUnauthorized},
		{"Forbidden", errs.NewForbiddenError("caller", "resource"), http.StatusForbidden},
		{"UpstreamGateway", errs.NewUpstreamGatewayError("refund payment", assert.AnError), http.StatusBadGateway},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFor(tt.err))
		})
	}
}
