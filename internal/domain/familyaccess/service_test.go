package familyaccess

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mvega09/SIACOM/internal/platform/auth"
)

type mockCodeRepo struct {
	codes []*AccessCode
	err   error
}

func (m *mockCodeRepo) ResolveActivePair(_ context.Context, patientCode, familyCode string) (*AccessCode, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now()
	for _, ac := range m.codes {
		if ac.PatientCode != patientCode || ac.FamilyCode != familyCode || !ac.Active {
			continue
		}
		if ac.ExpiresAt != nil && !ac.ExpiresAt.After(now) {
			continue
		}
		return ac, nil
	}
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *mockCodeRepo, *auth.Issuer) {
	t.Helper()
	repo := &mockCodeRepo{}
	issuer := auth.NewIssuer([]byte("test-secret"), 30*time.Minute, 24*time.Hour)
	return NewService(repo, issuer), repo, issuer
}

func TestLogin_Success(t *testing.T) {
	svc, repo, issuer := newTestService(t)
	repo.codes = append(repo.codes, &AccessCode{
		ID: 1, PatientID: 5, ContactID: 17,
		PatientCode: "PAC-5", FamilyCode: "FAM-17", Active: true,
	})

	res, err := svc.Login(context.Background(), "PAC-5", "FAM-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PatientID != 5 || res.FamilyID != 17 {
		t.Errorf("unexpected binding: %+v", res)
	}

	claims, err := issuer.VerifyFamily(res.AccessToken)
	if err != nil {
		t.Fatalf("issued token must verify as family: %v", err)
	}
	if claims.PatientID != 5 || claims.FamilyID != 17 {
		t.Errorf("claims do not round-trip: %+v", claims)
	}
	if claims.Type != "family" {
		t.Errorf("family token must carry the family type tag, got %q", claims.Type)
	}
}

func TestLogin_WrongPair(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.codes = append(repo.codes, &AccessCode{
		ID: 1, PatientID: 5, ContactID: 17,
		PatientCode: "PAC-5", FamilyCode: "FAM-17", Active: true,
	})

	// Both codes must match the same binding; crossing codes fails.
	_, err := svc.Login(context.Background(), "PAC-5", "FAM-99")
	if !errors.Is(err, auth.ErrInvalidFamilyCode) {
		t.Errorf("expected ErrInvalidFamilyCode, got %v", err)
	}
}

func TestLogin_ExpiredCode(t *testing.T) {
	svc, repo, _ := newTestService(t)
	expired := time.Now().Add(-time.Hour)
	repo.codes = append(repo.codes, &AccessCode{
		ID: 1, PatientID: 5, ContactID: 17,
		PatientCode: "PAC-5", FamilyCode: "FAM-17", Active: true, ExpiresAt: &expired,
	})

	_, err := svc.Login(context.Background(), "PAC-5", "FAM-17")
	if !errors.Is(err, auth.ErrInvalidFamilyCode) {
		t.Errorf("expired pair must fail, got %v", err)
	}
}

func TestLogin_InactiveCode(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.codes = append(repo.codes, &AccessCode{
		ID: 1, PatientID: 5, ContactID: 17,
		PatientCode: "PAC-5", FamilyCode: "FAM-17", Active: false,
	})

	_, err := svc.Login(context.Background(), "PAC-5", "FAM-17")
	if !errors.Is(err, auth.ErrInvalidFamilyCode) {
		t.Errorf("inactive pair must fail, got %v", err)
	}
}

func TestLogin_StoreError(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.err = errors.New("connection refused")

	_, err := svc.Login(context.Background(), "PAC-5", "FAM-17")
	if err == nil || errors.Is(err, auth.ErrInvalidFamilyCode) {
		t.Errorf("store failure must not masquerade as a bad code pair, got %v", err)
	}
}
