package dashboard

import (
	"net/http"

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
	staff.GET("/dashboard/stats", h.Stats)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "stats query failed")
	}
	return c.JSON(http.StatusOK, stats)
}
