package clinicalnote

import (
	"context"
	"fmt"
	"time"
)

const historyLimit = 10

// ErrMissingFields is returned when a note lacks its required content.
var ErrMissingFields = fmt.Errorf("estado_general and descripcion are required")

type Service struct {
	notes Repository
}

func NewService(notes Repository) *Service {
	return &Service{notes: notes}
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Note, error) {
	return s.notes.ListByPatient(ctx, patientID, historyLimit)
}

func (s *Service) Record(ctx context.Context, n *Note) error {
	if n.GeneralState == "" || n.Description == "" {
		return ErrMissingFields
	}
	return s.notes.Create(ctx, n)
}

func (s *Service) CountCriticalPatients(ctx context.Context, window time.Duration) (int, error) {
	return s.notes.CountCriticalPatients(ctx, time.Now().Add(-window))
}
