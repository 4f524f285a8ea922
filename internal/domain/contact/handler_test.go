package contact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type mockRepo struct {
	contacts []*Contact
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Contact, int, error) {
	return m.contacts, len(m.contacts), nil
}

func (m *mockRepo) ListNotifiableByPatient(_ context.Context, patientID int64) ([]*Contact, error) {
	var out []*Contact
	for _, c := range m.contacts {
		if c.PatientID == patientID && c.NotificationsEnabled {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestListNotifiableFiltersDisabled(t *testing.T) {
	repo := &mockRepo{contacts: []*Contact{
		{ID: 1, PatientID: 3, NotificationsEnabled: true},
		{ID: 2, PatientID: 3, NotificationsEnabled: false},
		{ID: 3, PatientID: 4, NotificationsEnabled: true},
	}}
	svc := NewService(repo)

	got, err := svc.ListNotifiableByPatient(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected only enabled contact of patient 3, got %+v", got)
	}
}

func TestHandler_List(t *testing.T) {
	repo := &mockRepo{contacts: []*Contact{{ID: 1, PatientID: 3}}}
	h := NewHandler(NewService(repo))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/contactos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
