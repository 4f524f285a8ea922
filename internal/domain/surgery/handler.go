package surgery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mvega09/SIACOM/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	staff := g.Group("", auth.StaffOnly())
	staff.GET("/cirugias/:paciente_id", h.ListByPatient)
	staff.PUT("/cirugias/:cirugia_id/estado", h.UpdateState)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.Param("paciente_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "surgery query failed")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateState(c echo.Context) error {
	surgeryID, err := strconv.ParseInt(c.Param("cirugia_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid surgery id")
	}
	state := c.QueryParam("estado")
	if state == "" {
		var body struct {
			State string `json:"estado"`
		}
		if err := c.Bind(&body); err == nil {
			state = body.State
		}
	}
	if state == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "estado is required")
	}

	err = h.svc.TransitionState(c.Request().Context(), surgeryID, state)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"message": "Estado actualizado correctamente"})
	case errors.Is(err, ErrInvalidState):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid state: "+state)
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "surgery not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "state update failed")
	}
}
