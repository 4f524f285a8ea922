package vitals

import "context"

const historyLimit = 20

type Service struct {
	vitals Repository
}

func NewService(vitals Repository) *Service {
	return &Service{vitals: vitals}
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*VitalSigns, error) {
	return s.vitals.ListByPatient(ctx, patientID, historyLimit)
}

func (s *Service) LatestByPatient(ctx context.Context, patientID int64) (*VitalSigns, error) {
	return s.vitals.LatestByPatient(ctx, patientID)
}

func (s *Service) Record(ctx context.Context, v *VitalSigns) error {
	return s.vitals.Create(ctx, v)
}
