package familyportal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mvega09/SIACOM/internal/domain/patient"
	"github.com/mvega09/SIACOM/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	issuer *auth.Issuer
}

func NewHandler(svc *Service, issuer *auth.Issuer) *Handler {
	return &Handler{svc: svc, issuer: issuer}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	fam := g.Group("", auth.RequireFamily(h.issuer))
	fam.GET("/family/patient/:patient_id", h.PatientView)
}

func (h *Handler) PatientView(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.Param("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	claims := auth.FamilyFromContext(c.Request().Context())
	if err := auth.RequireFamilyScope(claims, patientID); err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, "token not valid for this patient")
		}
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid family token")
	}

	view, err := h.svc.PatientView(c.Request().Context(), patientID)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "family view query failed")
	}
	return c.JSON(http.StatusOK, view)
}
