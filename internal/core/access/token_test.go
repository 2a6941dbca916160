package access

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testUser() *domain.User {
	return &domain.User{ID: "user-1", Role: domain.RoleCandidate, Active: true}
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 24*time.Hour)

	access, refresh, exp, err := tm.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected non-empty token pair")
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	claims, err := tm.VerifyAccess(access)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if claims.Role != domain.RoleCandidate {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected token type %q", claims.TokenType)
	}
}

func TestTokenManager_VerifyAccess_RejectsRefreshToken(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 24*time.Hour)

	_, refresh, _, err := tm.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	if _, err := tm.VerifyAccess(refresh); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for refresh token, got %v", err)
	}
}

func TestTokenManager_VerifyRefresh_RejectsAccessToken(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 24*time.Hour)

	access, _, _, err := tm.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	if _, err := tm.VerifyRefresh(access); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for access token, got %v", err)
	}
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tm := NewTokenManager("secret", time.Hour, 24*time.Hour)
	tm.now = fixedClock(issuedAt)

	access, _, exp, err := tm.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	// One second before expiry: still valid.
	tm.now = fixedClock(exp.Add(-time.Second))
	if _, err := tm.VerifyAccess(access); err != nil {
		t.Fatalf("token should be valid before expiry: %v", err)
	}

	// Exactly at expiry: treated as expired.
	tm.now = fixedClock(exp)
	if _, err := tm.VerifyAccess(access); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential at exact expiry, got %v", err)
	}

	// Well past expiry.
	tm.now = fixedClock(exp.Add(time.Hour))
	if _, err := tm.VerifyAccess(access); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential after expiry, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 24*time.Hour)
	other := NewTokenManager("other-secret", time.Hour, 24*time.Hour)

	access, _, _, err := tm.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	if _, err := other.VerifyAccess(access); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for wrong secret, got %v", err)
	}
}

func TestTokenManager_WrongAlgorithm(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 24*time.Hour)

	// Unsigned token with alg "none" must never verify.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.VerifyAccess(unsigned); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for alg=none, got %v", err)
	}
}

func TestTokenManager_MissingTypeTagStillAuthorizes(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 24*time.Hour)

	// Legacy tokens carry no typ claim; only a present non-access tag rejects.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: domain.RoleCandidate,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.VerifyAccess(signed); err != nil {
		t.Fatalf("expected untagged token to verify, got %v", err)
	}
}
