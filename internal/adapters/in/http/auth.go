package http

import (
	"net/http"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Caller roles carried in the JWT "role" claim.
const (
	RoleUser    = "user"
	RolePartner = "partner"
	RoleService = "service"
)

const claimsContextKey = "claims"

// Claims is the token payload this service trusts. Subject is the caller's
// identifier; token issuance happens elsewhere.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTMiddleware returns the echo middleware that authenticates requests and
// stores the parsed Claims in the request context.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(_ echo.Context) jwt.Claims {
			return new(Claims)
		},
		SuccessHandler: func(c echo.Context) {
			token := c.Get("user").(*jwt.Token)
			c.Set(claimsContextKey, token.Claims.(*Claims))
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing or invalid token",
			})
		},
	})
}

// requireRole wraps a handler and rejects callers whose role claim does not
// match any of the allowed roles.
func requireRole(next echo.HandlerFunc, roles ...string) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(claimsContextKey).(*Claims)
		if !ok {
			return respondError(c, errs.NewUnauthorizedError("no caller identity"))
		}
		for _, role := range roles {
			if claims.Role == role {
				return next(c)
			}
		}
		return respondError(c, errs.NewForbiddenError(claims.Subject, c.Path()))
	}
}

// callerID extracts the authenticated caller's identifier from the claims.
func callerID(c echo.Context) (kernel.UUID, error) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	if !ok {
		return kernel.UUID{}, errs.NewUnauthorizedError("no caller identity")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedError("malformed caller identifier")
	}

	return id, nil
}
