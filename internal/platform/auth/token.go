package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const familyTokenType = "family"

// StaffClaims is the claim set of a physician/administrator session token.
// Subject carries the username.
type StaffClaims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"`
	// Type is set only on family tokens; staff verification rejects any
	// token carrying it.
	Type string `json:"type,omitempty"`
}

// FamilyClaims is the claim set of a family session token. It is scoped to
// exactly one patient; the contact that authenticated is FamilyID.
type FamilyClaims struct {
	jwt.RegisteredClaims
	PatientID int64  `json:"patient_id"`
	FamilyID  int64  `json:"family_id"`
	Type      string `json:"type"`
}

// Issuer mints and verifies HMAC-signed session tokens. The signing secret
// and both expiration windows are injected configuration; staff tokens are
// short-lived while family tokens last longer because the access-code pair
// itself is the security boundary and family members re-authenticate rarely.
type Issuer struct {
	secret    []byte
	staffTTL  time.Duration
	familyTTL time.Duration
	now       func() time.Time
}

func NewIssuer(secret []byte, staffTTL, familyTTL time.Duration) *Issuer {
	return &Issuer{
		secret:    secret,
		staffTTL:  staffTTL,
		familyTTL: familyTTL,
		now:       time.Now,
	}
}

// IssueStaff mints a staff token with subject=username and the given role.
func (i *Issuer) IssueStaff(username string, userID int64, userType string) (string, error) {
	issued := i.now()
	claims := StaffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(i.staffTTL)),
		},
		UserID:   userID,
		UserType: userType,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// IssueFamily mints a family token bound to one (patient, contact) pair.
func (i *Issuer) IssueFamily(patientID, familyID int64) (string, error) {
	issued := i.now()
	claims := FamilyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(i.familyTTL)),
		},
		PatientID: patientID,
		FamilyID:  familyID,
		Type:      familyTokenType,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *Issuer) keyFunc(t *jwt.Token) (interface{}, error) {
	return i.secret, nil
}

var parserOpts = []jwt.ParserOption{
	jwt.WithValidMethods([]string{"HS256"}),
	jwt.WithExpirationRequired(),
}

// VerifyStaff validates signature and expiration and returns the staff
// claims. Family tokens are rejected here regardless of validity: they
// carry the family type tag and no subject.
func (i *Issuer) VerifyStaff(tokenStr string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, i.keyFunc, parserOpts...)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Type == familyTokenType || claims.Subject == "" || claims.UserType == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// VerifyFamily validates signature and expiration and returns the family
// claims. Staff tokens are rejected: they lack the family type tag.
func (i *Issuer) VerifyFamily(tokenStr string) (*FamilyClaims, error) {
	claims := &FamilyClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, i.keyFunc, parserOpts...)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Type != familyTokenType {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
