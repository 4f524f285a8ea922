package vitals

import (
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
	staff.GET("/signos-vitales/:paciente_id", h.ListByPatient)
	staff.POST("/signos-vitales/:paciente_id", h.Record)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.Param("paciente_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "vital signs query failed")
	}
	return c.JSON(http.StatusOK, items)
}

type recordRequest struct {
	SystolicBP       *int     `json:"presion_sistolica"`
	DiastolicBP      *int     `json:"presion_diastolica"`
	HeartRate        *int     `json:"frecuencia_cardiaca"`
	Temperature      *float64 `json:"temperatura"`
	OxygenSaturation *int     `json:"saturacion_oxigeno"`
	PainScale        *int     `json:"dolor_escala"`
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

	v := &VitalSigns{
		PatientID:        patientID,
		SystolicBP:       req.SystolicBP,
		DiastolicBP:      req.DiastolicBP,
		HeartRate:        req.HeartRate,
		Temperature:      req.Temperature,
		OxygenSaturation: req.OxygenSaturation,
		PainScale:        req.PainScale,
	}
	if claims := auth.StaffFromContext(c.Request().Context()); claims != nil {
		v.RecordedByID = &claims.UserID
	}

	if err := h.svc.Record(c.Request().Context(), v); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "vital signs insert failed")
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Signos vitales registrados correctamente"})
}
