package familyaccess

import (
	"context"
	"fmt"

	"github.com/mvega09/SIACOM/internal/platform/auth"
)

type Service struct {
	codes  Repository
	issuer *auth.Issuer
}

func NewService(codes Repository, issuer *auth.Issuer) *Service {
	return &Service{codes: codes, issuer: issuer}
}

// LoginResult is what a successful family authentication yields.
type LoginResult struct {
	AccessToken string
	PatientID   int64
	FamilyID    int64
}

// Login resolves a two-part access code to its (patient, contact) binding
// and mints a family token scoped to that patient. An unknown, inactive, or
// expired pair fails with ErrInvalidFamilyCode; nothing is mutated.
func (s *Service) Login(ctx context.Context, patientCode, familyCode string) (*LoginResult, error) {
	binding, err := s.codes.ResolveActivePair(ctx, patientCode, familyCode)
	if err != nil {
		return nil, fmt.Errorf("resolve family codes: %w", err)
	}
	if binding == nil {
		return nil, auth.ErrInvalidFamilyCode
	}

	token, err := s.issuer.IssueFamily(binding.PatientID, binding.ContactID)
	if err != nil {
		return nil, fmt.Errorf("issue family token: %w", err)
	}

	return &LoginResult{
		AccessToken: token,
		PatientID:   binding.PatientID,
		FamilyID:    binding.ContactID,
	}, nil
}
