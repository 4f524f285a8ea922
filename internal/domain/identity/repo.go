package identity

import "context"

type Repository interface {
	// GetActiveByUsername returns the active user with the given username,
	// or nil when no such user exists.
	GetActiveByUsername(ctx context.Context, username string) (*User, error)
}
