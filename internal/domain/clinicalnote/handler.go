package clinicalnote

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
	staff.GET("/evoluciones/:paciente_id", h.ListByPatient)
	staff.POST("/evoluciones/:paciente_id", h.Record)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.Param("paciente_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "clinical note query failed")
	}
	return c.JSON(http.StatusOK, items)
}

type recordRequest struct {
	GeneralState  string  `json:"estado_general"`
	Description   string  `json:"descripcion"`
	TreatmentPlan *string `json:"plan_tratamiento"`
	Observations  *string `json:"observaciones"`
	PhysicianID   int64   `json:"medico_id"`
}

func (h *Handler) Record(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.Param("paciente_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	n := &Note{
		PatientID:     patientID,
		GeneralState:  req.GeneralState,
		Description:   req.Description,
		TreatmentPlan: req.TreatmentPlan,
		Observations:  req.Observations,
		PhysicianID:   req.PhysicianID,
	}

	if err := h.svc.Record(c.Request().Context(), n); err != nil {
		if errors.Is(err, ErrMissingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "clinical note insert failed")
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Evolución clínica registrada correctamente"})
}
