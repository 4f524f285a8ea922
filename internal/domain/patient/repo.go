package patient

import "context"

type Repository interface {
	// List returns active patients ordered by id, plus the total count.
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	// GetByID returns the active patient with the given id; ErrNotFound
	// when absent or inactive.
	GetByID(ctx context.Context, id int64) (*Patient, error)
	// GetDetail returns the patient with surgery history aggregates;
	// ErrNotFound when absent or inactive.
	GetDetail(ctx context.Context, id int64) (*Detail, error)
	// CountActive counts active patients.
	CountActive(ctx context.Context) (int, error)
}
