package dashboard

import (
	"context"
	"time"
)

const criticalWindow = 24 * time.Hour

// Stats is the staff landing-page summary.
type Stats struct {
	TotalPatients    int `json:"total_pacientes"`
	SurgeriesToday   int `json:"cirugias_hoy"`
	ActiveSurgeries  int `json:"cirugias_activas"`
	CriticalPatients int `json:"pacientes_criticos"`
}

// PatientCounter counts active patients.
type PatientCounter interface {
	CountActive(ctx context.Context) (int, error)
}

// SurgeryCounter counts today's and in-flight surgeries.
type SurgeryCounter interface {
	CountToday(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
}

// CriticalCounter counts distinct patients flagged critical in a window.
type CriticalCounter interface {
	CountCriticalPatients(ctx context.Context, window time.Duration) (int, error)
}

type Service struct {
	patients  PatientCounter
	surgeries SurgeryCounter
	critical  CriticalCounter
}

func NewService(patients PatientCounter, surgeries SurgeryCounter, critical CriticalCounter) *Service {
	return &Service{patients: patients, surgeries: surgeries, critical: critical}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	var err error

	if st.TotalPatients, err = s.patients.CountActive(ctx); err != nil {
		return nil, err
	}
	if st.SurgeriesToday, err = s.surgeries.CountToday(ctx); err != nil {
		return nil, err
	}
	if st.ActiveSurgeries, err = s.surgeries.CountActive(ctx); err != nil {
		return nil, err
	}
	if st.CriticalPatients, err = s.critical.CountCriticalPatients(ctx, criticalWindow); err != nil {
		return nil, err
	}
	return &st, nil
}
