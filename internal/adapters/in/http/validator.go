package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo so request DTOs
// are checked right after binding.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the echo request validator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

var _ echo.Validator = (*RequestValidator)(nil)
