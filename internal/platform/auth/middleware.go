package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	staffClaimsKey  contextKey = "staff_claims"
	familyClaimsKey contextKey = "family_claims"
)

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
	}
	return parts[1], nil
}

// RequireStaff authenticates a staff bearer token and stores its claims on
// the request context. It runs before any handler touches the store.
func RequireStaff(issuer *Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := issuer.VerifyStaff(tokenStr)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := context.WithValue(c.Request().Context(), staffClaimsKey, claims)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireFamily authenticates a family bearer token and stores its claims on
// the request context. Scope against the requested patient is checked by the
// handler via RequireFamilyScope.
func RequireFamily(issuer *Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := issuer.VerifyFamily(tokenStr)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid family token")
			}

			ctx := context.WithValue(c.Request().Context(), familyClaimsKey, claims)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// StaffFromContext retrieves staff claims stored by RequireStaff.
func StaffFromContext(ctx context.Context) *StaffClaims {
	claims, _ := ctx.Value(staffClaimsKey).(*StaffClaims)
	return claims
}

// FamilyFromContext retrieves family claims stored by RequireFamily.
func FamilyFromContext(ctx context.Context) *FamilyClaims {
	claims, _ := ctx.Value(familyClaimsKey).(*FamilyClaims)
	return claims
}

// ContextWithStaff returns ctx carrying the given staff claims. Intended for
// tests that exercise handlers without the middleware chain.
func ContextWithStaff(ctx context.Context, claims *StaffClaims) context.Context {
	return context.WithValue(ctx, staffClaimsKey, claims)
}

// ContextWithFamily returns ctx carrying the given family claims.
func ContextWithFamily(ctx context.Context, claims *FamilyClaims) context.Context {
	return context.WithValue(ctx, familyClaimsKey, claims)
}
