package access

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// Token type tags carried in the "typ" claim. A token whose tag is present
// and not "access" never authorizes a protected operation.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const (
	defaultAccessTTL  = 30 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// Claims is the JWT payload of every issued token.
type Claims struct {
	Role      domain.Role `json:"role"`
	TokenType string      `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed tokens. The clock is
// injectable so expiry boundaries can be tested deterministically; a token
// expiring exactly now is treated as expired.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenManager builds a manager with the shared signing secret.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair signs an access/refresh token pair for the user. The returned
// expiry is the access token's.
func (tm *TokenManager) IssuePair(user *domain.User) (access, refresh string, expiresAt time.Time, err error) {
	access, expiresAt, err = tm.issue(user, TokenTypeAccess, tm.accessTTL)
	if err != nil {
		return "", "", time.Time{}, err
	}
	refresh, _, err = tm.issue(user, TokenTypeRefresh, tm.refreshTTL)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return access, refresh, expiresAt, nil
}

func (tm *TokenManager) issue(user *domain.User, typ string, ttl time.Duration) (string, time.Time, error) {
	now := tm.now()
	exp := now.Add(ttl)
	claims := &Claims{
		Role:      user.Role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// VerifyAccess validates signature and expiry and rejects any token whose
// type tag is present and not "access" (e.g. a refresh token presented on a
// protected route).
func (tm *TokenManager) VerifyAccess(token string) (*Claims, error) {
	claims, err := tm.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "" && claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("%w: unexpected token type %q", domain.ErrInvalidCredential, claims.TokenType)
	}
	return claims, nil
}

// VerifyRefresh validates a refresh token. Only the refresh operation accepts
// these; the type tag must be exactly "refresh".
func (tm *TokenManager) VerifyRefresh(token string) (*Claims, error) {
	claims, err := tm.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("%w: not a refresh token", domain.ErrInvalidCredential)
	}
	return claims, nil
}

func (tm *TokenManager) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredential, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidCredential
	}
	return claims, nil
}
