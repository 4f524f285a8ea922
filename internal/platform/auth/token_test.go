package auth

import (
	"testing"
	"time"
)

var testSecret = []byte("unit-test-signing-secret")

func newTestIssuer() *Issuer {
	return NewIssuer(testSecret, 30*time.Minute, 24*time.Hour)
}

func TestIssueStaff_RoundTrip(t *testing.T) {
	issuer := newTestIssuer()

	token, err := issuer.IssueStaff("dr.lopez", 42, RoleMedico)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.VerifyStaff(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "dr.lopez" {
		t.Errorf("subject: expected dr.lopez, got %q", claims.Subject)
	}
	if claims.UserID != 42 {
		t.Errorf("user_id: expected 42, got %d", claims.UserID)
	}
	if claims.UserType != RoleMedico {
		t.Errorf("user_type: expected medico, got %q", claims.UserType)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected exp and iat claims")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 30*time.Minute {
		t.Errorf("staff TTL: expected 30m, got %s", got)
	}
}

func TestIssueFamily_RoundTrip(t *testing.T) {
	issuer := newTestIssuer()

	token, err := issuer.IssueFamily(5, 17)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.VerifyFamily(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.PatientID != 5 || claims.FamilyID != 17 {
		t.Errorf("expected patient 5 / family 17, got %d / %d", claims.PatientID, claims.FamilyID)
	}
	if claims.Type != "family" {
		t.Errorf("family token must carry type=family, got %q", claims.Type)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 24*time.Hour {
		t.Errorf("family TTL: expected 24h, got %s", got)
	}
}

func TestVerifyStaff_RejectsFamilyToken(t *testing.T) {
	issuer := newTestIssuer()

	token, err := issuer.IssueFamily(5, 17)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.VerifyStaff(token); err == nil {
		t.Error("a family token must never pass staff verification")
	}
}

func TestVerifyFamily_RejectsStaffToken(t *testing.T) {
	issuer := newTestIssuer()

	token, err := issuer.IssueStaff("admin", 1, RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.VerifyFamily(token); err == nil {
		t.Error("a staff token must never pass family verification")
	}
}

func TestVerifyStaff_Expired(t *testing.T) {
	issuer := newTestIssuer()
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := issuer.IssueStaff("dr.lopez", 42, RoleMedico)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	issuer.now = time.Now
	if _, err := issuer.VerifyStaff(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestVerifyFamily_Expired(t *testing.T) {
	issuer := newTestIssuer()
	issuer.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }

	token, err := issuer.IssueFamily(5, 17)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := issuer.VerifyFamily(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	issuer := newTestIssuer()
	other := NewIssuer([]byte("a-different-secret"), 30*time.Minute, 24*time.Hour)

	token, err := other.IssueStaff("dr.lopez", 42, RoleMedico)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.VerifyStaff(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	issuer := newTestIssuer()
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := issuer.VerifyStaff(tok); err != ErrTokenInvalid {
			t.Errorf("VerifyStaff(%q): expected ErrTokenInvalid, got %v", tok, err)
		}
		if _, err := issuer.VerifyFamily(tok); err != ErrTokenInvalid {
			t.Errorf("VerifyFamily(%q): expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}
