package familyaccess

import (
	"errors"
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

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/family/login", h.Login)
}

type loginRequest struct {
	PatientCode string `json:"patient_code"`
	FamilyCode  string `json:"family_code"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserType    string `json:"user_type"`
	PatientID   int64  `json:"patient_id"`
	FamilyID    int64  `json:"family_id"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PatientCode == "" || req.FamilyCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_code and family_code are required")
	}

	res, err := h.svc.Login(c.Request().Context(), req.PatientCode, req.FamilyCode)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidFamilyCode) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid family codes")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		UserType:    "familiar",
		PatientID:   res.PatientID,
		FamilyID:    res.FamilyID,
	})
}
