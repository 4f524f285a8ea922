package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func invokeWithHeader(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (error, *echo.Echo) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return mw(handler)(c), e
}

func TestRequireStaff_MissingHeader(t *testing.T) {
	issuer := newTestIssuer()
	err, _ := invokeWithHeader(t, RequireStaff(issuer), "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without authorization header, got %v", err)
	}
}

func TestRequireStaff_MalformedHeader(t *testing.T) {
	issuer := newTestIssuer()
	for _, header := range []string{"Basic abc", "Bearer", "bearer-token"} {
		err, _ := invokeWithHeader(t, RequireStaff(issuer), header)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestRequireStaff_ValidToken(t *testing.T) {
	issuer := newTestIssuer()
	token, err := issuer.IssueStaff("dr.lopez", 42, RoleMedico)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *StaffClaims
	handler := func(c echo.Context) error {
		seen = StaffFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}
	if err := RequireStaff(issuer)(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == nil || seen.UserID != 42 {
		t.Errorf("expected staff claims on request context, got %+v", seen)
	}
}

func TestRequireStaff_FamilyTokenRejected(t *testing.T) {
	issuer := newTestIssuer()
	token, err := issuer.IssueFamily(5, 17)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	mwErr, _ := invokeWithHeader(t, RequireStaff(issuer), "Bearer "+token)
	httpErr, ok := mwErr.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("family token on staff route: expected 401, got %v", mwErr)
	}
}

func TestRequireFamily_ValidToken(t *testing.T) {
	issuer := newTestIssuer()
	token, err := issuer.IssueFamily(5, 17)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *FamilyClaims
	handler := func(c echo.Context) error {
		seen = FamilyFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}
	if err := RequireFamily(issuer)(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == nil || seen.PatientID != 5 {
		t.Errorf("expected family claims on request context, got %+v", seen)
	}
}

func TestRequireFamily_StaffTokenRejected(t *testing.T) {
	issuer := newTestIssuer()
	token, err := issuer.IssueStaff("admin", 1, RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	mwErr, _ := invokeWithHeader(t, RequireFamily(issuer), "Bearer "+token)
	httpErr, ok := mwErr.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("staff token on family route: expected 401, got %v", mwErr)
	}
}
