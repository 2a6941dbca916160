package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

func newAuthService(users ports.UserRepository) *AuthService {
	return NewAuthService(users, access.NewTokenManager("test-secret", 0, 0), bcrypt.MinCost)
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "Alice@Example.com",
		Password: "pass123",
		FullName: "Alice",
		Role:     domain.RoleCandidate,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
	if !user.Active {
		t.Fatalf("expected new account to be active")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_RejectsAdministrativeRoles(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSuperadmin, domain.Role("BOGUS")} {
		_, err := svc.Register(context.Background(), ports.RegisterInput{
			Email:    "x@example.com",
			Password: "pass",
			Role:     role,
		})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	in := ports.RegisterInput{Email: "bob@example.com", Password: "pass", Role: domain.RoleEmployer}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "carol@example.com", Password: "s3cret", Role: domain.RoleCandidate,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	pair, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if pair.ExpiresAt.IsZero() {
		t.Fatalf("expected expiry to be set")
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "dave@example.com", Password: "right", Role: domain.RoleCandidate,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, errUnknown := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, _, errWrong := svc.Login(context.Background(), "dave@example.com", "wrong")

	if !errors.Is(errUnknown, domain.ErrInvalidCredential) {
		t.Fatalf("unknown email: expected ErrInvalidCredential, got %v", errUnknown)
	}
	if !errors.Is(errWrong, domain.ErrInvalidCredential) {
		t.Fatalf("wrong password: expected ErrInvalidCredential, got %v", errWrong)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	created, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "eve@example.com", Password: "pass", Role: domain.RoleCandidate,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := users.SetActive(context.Background(), created.ID, false); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	// Correct password on a disabled account: the credential was valid, so
	// the caller learns the account is disabled rather than "bad login".
	if _, _, err := svc.Login(context.Background(), "eve@example.com", "pass"); !errors.Is(err, domain.ErrInactiveUser) {
		t.Fatalf("expected ErrInactiveUser, got %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	created, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "frank@example.com", Password: "pass", Role: domain.RoleConsultant,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	pair, _, err := svc.Login(context.Background(), "frank@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Fatalf("expected new token pair")
	}

	// An access token must not be accepted on the refresh path.
	if _, err := svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for access token, got %v", err)
	}

	// Deactivation since issuance invalidates the refresh flow.
	if err := users.SetActive(context.Background(), created.ID, false); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInactiveUser) {
		t.Fatalf("expected ErrInactiveUser after deactivation, got %v", err)
	}
}
