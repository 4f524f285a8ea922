package contact

import "context"

type Service struct {
	contacts Repository
}

func NewService(contacts Repository) *Service {
	return &Service{contacts: contacts}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Contact, int, error) {
	return s.contacts.List(ctx, limit, offset)
}

func (s *Service) ListNotifiableByPatient(ctx context.Context, patientID int64) ([]*Contact, error) {
	return s.contacts.ListNotifiableByPatient(ctx, patientID)
}
