package vitals

import "context"

type Repository interface {
	// ListByPatient returns the patient's readings, newest first, limited.
	ListByPatient(ctx context.Context, patientID int64, limit int) ([]*VitalSigns, error)
	// LatestByPatient returns the most recent reading, or nil when the
	// patient has none.
	LatestByPatient(ctx context.Context, patientID int64) (*VitalSigns, error)
	// Create inserts a reading; RecordedAt is stamped by the database.
	Create(ctx context.Context, v *VitalSigns) error
}
