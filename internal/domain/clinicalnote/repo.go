package clinicalnote

import (
	"context"
	"time"
)

type Repository interface {
	// ListByPatient returns the patient's notes, newest first, limited.
	ListByPatient(ctx context.Context, patientID int64, limit int) ([]*Note, error)
	// Create inserts a note; RecordedAt is stamped by the database.
	Create(ctx context.Context, n *Note) error
	// CountCriticalPatients counts distinct patients with a Crítico note
	// recorded after since.
	CountCriticalPatients(ctx context.Context, since time.Time) (int, error)
}
