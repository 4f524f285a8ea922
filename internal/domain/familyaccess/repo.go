package familyaccess

import "context"

type Repository interface {
	// ResolveActivePair returns the binding matching both codes exactly,
	// restricted to active codes of active patients whose expiration (if
	// any) lies in the future. Returns nil when nothing matches.
	ResolveActivePair(ctx context.Context, patientCode, familyCode string) (*AccessCode, error)
}
