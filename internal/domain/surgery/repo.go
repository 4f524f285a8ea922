package surgery

import (
	"context"
	"time"
)

type Repository interface {
	// GetForUpdate locks the surgery row for the duration of the
	// enclosing transaction; ErrNotFound when absent. Must be called with
	// a transaction in ctx.
	GetForUpdate(ctx context.Context, id int64) (*Surgery, error)
	// UpdateState sets the state. StartedAt is stamped only when entering
	// En_proceso with no prior start; EndedAt only when entering
	// Finalizada with no prior end. Neither is ever reset.
	UpdateState(ctx context.Context, id int64, state string, now time.Time) error
	// ListByPatient returns the patient's surgeries, newest scheduled first.
	ListByPatient(ctx context.Context, patientID int64) ([]*Surgery, error)
	// LatestByPatient returns the most recently scheduled surgery, or
	// nil when the patient has none.
	LatestByPatient(ctx context.Context, patientID int64) (*Surgery, error)
	// CountToday counts surgeries scheduled on the current day.
	CountToday(ctx context.Context) (int, error)
	// CountActive counts surgeries in Pre-operatorio or En_proceso.
	CountActive(ctx context.Context) (int, error)
}
