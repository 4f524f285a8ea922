package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Staff roles as stored in usuarios.tipo_usuario.
const (
	RoleAdmin  = "administrador"
	RoleMedico = "medico"
)

// RequireRole returns middleware that rejects staff whose role is not in the
// allowed set. The match is exact; there is no implicit admin bypass.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := StaffFromContext(c.Request().Context())
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			for _, required := range roles {
				if claims.UserType == required {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}

// StaffOnly is the standing "admin or medical staff" policy.
func StaffOnly() echo.MiddlewareFunc {
	return RequireRole(RoleAdmin, RoleMedico)
}

// AdminOnly is the standing "admin only" policy.
func AdminOnly() echo.MiddlewareFunc {
	return RequireRole(RoleAdmin)
}

// RequireFamilyScope checks that the family claims are bound to the patient
// being accessed. A family token is not merely role-checked: every
// family-facing operation re-validates the patient binding against the
// resource, not just the token's validity.
func RequireFamilyScope(claims *FamilyClaims, patientID int64) error {
	if claims == nil || claims.Type != familyTokenType {
		return ErrTokenInvalid
	}
	if claims.PatientID != patientID {
		return ErrForbidden
	}
	return nil
}
