package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type mockCounters struct {
	patients int
	today    int
	active   int
	critical int
	err      error
}

func (m *mockCounters) CountActive(_ context.Context) (int, error) {
	return m.patients, m.err
}

func (m *mockCounters) CountToday(_ context.Context) (int, error) {
	return m.today, m.err
}

func (m *mockCounters) CountCriticalPatients(_ context.Context, window time.Duration) (int, error) {
	if window != 24*time.Hour {
		return 0, errors.New("unexpected window")
	}
	return m.critical, m.err
}

type surgeryCounters struct{ today, active int }

func (s *surgeryCounters) CountToday(_ context.Context) (int, error)  { return s.today, nil }
func (s *surgeryCounters) CountActive(_ context.Context) (int, error) { return s.active, nil }

func TestStats(t *testing.T) {
	svc := NewService(
		&mockCounters{patients: 42},
		&surgeryCounters{today: 5, active: 2},
		&mockCounters{critical: 3},
	)

	got, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Stats{TotalPatients: 42, SurgeriesToday: 5, ActiveSurgeries: 2, CriticalPatients: 3}
	if *got != want {
		t.Errorf("stats = %+v, want %+v", *got, want)
	}
}

func TestStats_CounterError(t *testing.T) {
	svc := NewService(
		&mockCounters{err: errors.New("store down")},
		&surgeryCounters{},
		&mockCounters{},
	)
	if _, err := svc.Stats(context.Background()); err == nil {
		t.Fatal("expected error from failing counter")
	}
}

func TestHandler_Stats(t *testing.T) {
	svc := NewService(
		&mockCounters{patients: 10},
		&surgeryCounters{today: 1, active: 1},
		&mockCounters{critical: 0},
	)
	h := NewHandler(svc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Stats(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["total_pacientes"] != 10 {
		t.Errorf("total_pacientes = %d, want 10", body["total_pacientes"])
	}
}
