package contact

import "context"

type Repository interface {
	// List returns contacts ordered by patient then id, plus the total count.
	List(ctx context.Context, limit, offset int) ([]*Contact, int, error)
	// ListNotifiableByPatient returns the patient's contacts with
	// notifications enabled. Honors a transaction carried in ctx.
	ListNotifiableByPatient(ctx context.Context, patientID int64) ([]*Contact, error)
}
