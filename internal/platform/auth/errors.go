package auth

import "errors"

// Sentinel errors for the authentication/authorization taxonomy. Handlers
// map them onto HTTP statuses: credential and token failures become 401,
// scope and role failures become 403.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidFamilyCode  = errors.New("invalid family codes")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrForbidden          = errors.New("access denied")
)
