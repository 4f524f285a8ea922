package familyaccess

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func postFamilyLogin(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/family/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Login(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.codes = append(repo.codes, &AccessCode{
		ID: 1, PatientID: 5, ContactID: 17,
		PatientCode: "PAC-5", FamilyCode: "FAM-17", Active: true,
	})
	h := NewHandler(svc)
	e := echo.New()

	c, rec := postFamilyLogin(e, `{"patient_code":"PAC-5","family_code":"FAM-17"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserType != "familiar" {
		t.Errorf("expected user_type familiar, got %q", resp.UserType)
	}
	if resp.PatientID != 5 || resp.FamilyID != 17 {
		t.Errorf("unexpected binding fields: %+v", resp)
	}
}

func TestHandler_Login_InvalidPair(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHandler(svc)
	e := echo.New()

	c, _ := postFamilyLogin(e, `{"patient_code":"X","family_code":"Y"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for invalid pair, got %v", err)
	}
}

func TestHandler_Login_MissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHandler(svc)
	e := echo.New()

	c, _ := postFamilyLogin(e, `{"patient_code":"PAC-5"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing family_code, got %v", err)
	}
}
