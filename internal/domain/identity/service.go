package identity

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvega09/SIACOM/internal/platform/auth"
)

type Service struct {
	users  Repository
	issuer *auth.Issuer
}

func NewService(users Repository, issuer *auth.Issuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// LoginResult is what a successful staff authentication yields.
type LoginResult struct {
	AccessToken string
	UserType    string
	UserID      int64
}

// Login authenticates a staff credential and mints a staff token. Unknown
// usernames, inactive accounts, and wrong passwords all collapse into the
// same ErrInvalidCredentials so the response does not reveal which part
// failed. No state is mutated on issuance.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, auth.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := s.issuer.IssueStaff(user.Username, user.ID, user.UserType)
	if err != nil {
		return nil, fmt.Errorf("issue staff token: %w", err)
	}

	return &LoginResult{
		AccessToken: token,
		UserType:    user.UserType,
		UserID:      user.ID,
	}, nil
}
