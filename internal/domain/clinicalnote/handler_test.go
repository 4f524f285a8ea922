package clinicalnote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mvega09/SIACOM/internal/platform/auth"
)

type mockRepo struct {
	notes []*Note
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID int64, limit int) ([]*Note, error) {
	var out []*Note
	for _, n := range m.notes {
		if n.PatientID == patientID {
			out = append(out, n)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockRepo) Create(_ context.Context, n *Note) error {
	n.ID = int64(len(m.notes) + 1)
	n.RecordedAt = time.Now()
	m.notes = append(m.notes, n)
	return nil
}

func (m *mockRepo) CountCriticalPatients(_ context.Context, since time.Time) (int, error) {
	seen := make(map[int64]bool)
	for _, n := range m.notes {
		if n.GeneralState == StateCritical && n.RecordedAt.After(since) {
			seen[n.PatientID] = true
		}
	}
	return len(seen), nil
}

func staffContext(req *http.Request, userID int64) *http.Request {
	claims := &auth.StaffClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "dr.garcia"},
		UserID:           userID,
		UserType:         auth.RoleMedico,
	}
	return req.WithContext(auth.ContextWithStaff(req.Context(), claims))
}

func TestHandler_Record(t *testing.T) {
	repo := &mockRepo{}
	h := NewHandler(NewService(repo))
	e := echo.New()

	body := `{"estado_general": "Estable", "descripcion": "Evolución favorable", "medico_id": 7}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = staffContext(req, 7)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("paciente_id")
	c.SetParamValues("3")

	if err := h.Record(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if len(repo.notes) != 1 || repo.notes[0].PhysicianID != 7 {
		t.Errorf("note must carry the recording physician, got %+v", repo.notes)
	}
}

func TestHandler_Record_MissingFields(t *testing.T) {
	repo := &mockRepo{}
	h := NewHandler(NewService(repo))
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"descripcion": "sin estado"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = staffContext(req, 7)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("paciente_id")
	c.SetParamValues("3")

	err := h.Record(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestCountCriticalPatients_Window(t *testing.T) {
	now := time.Now()
	repo := &mockRepo{notes: []*Note{
		{ID: 1, PatientID: 3, GeneralState: StateCritical, RecordedAt: now.Add(-time.Hour)},
		{ID: 2, PatientID: 3, GeneralState: StateCritical, RecordedAt: now.Add(-2 * time.Hour)},
		{ID: 3, PatientID: 4, GeneralState: "Estable", RecordedAt: now.Add(-time.Hour)},
		{ID: 4, PatientID: 5, GeneralState: StateCritical, RecordedAt: now.Add(-48 * time.Hour)},
	}}
	svc := NewService(repo)

	got, err := svc.CountCriticalPatients(context.Background(), 24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("critical patients = %d, want 1 (distinct, windowed)", got)
	}
}
