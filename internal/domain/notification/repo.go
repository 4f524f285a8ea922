package notification

import "context"

type Repository interface {
	// CreateBatch inserts every notification or none. Honors a
	// transaction carried in ctx; the surgery dispatcher calls it inside
	// the state-transition transaction.
	CreateBatch(ctx context.Context, items []*Notification) error
	// ListRecentByPatient returns the patient's most recent
	// notifications, newest first, limited. Only patients with an active
	// family code are visible.
	ListRecentByPatient(ctx context.Context, patientID int64, limit int) ([]*Notification, error)
}
