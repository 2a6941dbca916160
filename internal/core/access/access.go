// Package access implements the role-based authorization and profile
// access-control layer consumed by every request handler. It is a pure
// function of the presented credential and directory lookups: it owns no
// state, performs no locking, and is independent of the HTTP layer.
//
// Per-request flow: Authenticate resolves the credential to a stored user
// (without checking the active flag), RequireActive gates inactive accounts,
// then role and ownership checks decide the operation.
package access

import (
	"context"
	"errors"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// Authorizer answers allow/deny for a credential and a requested resource.
type Authorizer struct {
	tokens *TokenManager
	dir    ports.PrincipalDirectory
}

// NewAuthorizer builds an Authorizer over the given verifier and directory.
func NewAuthorizer(tokens *TokenManager, dir ports.PrincipalDirectory) *Authorizer {
	return &Authorizer{tokens: tokens, dir: dir}
}

// Tokens exposes the underlying token manager for issuing flows.
func (a *Authorizer) Tokens() *TokenManager {
	return a.tokens
}

// Authenticate verifies the credential and resolves its subject against the
// directory. Unknown subjects surface as ErrInvalidCredential, identical to a
// bad signature, so authentication responses cannot be used to probe which
// accounts exist. The active flag is deliberately not checked here; callers
// gate on RequireActive as the next step.
func (a *Authorizer) Authenticate(ctx context.Context, credential string) (*domain.User, error) {
	claims, err := a.tokens.VerifyAccess(credential)
	if err != nil {
		return nil, err
	}

	user, err := a.dir.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredential
		}
		return nil, err
	}
	return user, nil
}

// RequireActive rejects principals whose account has been deactivated. Every
// protected handler path must pass through this before any role check.
func RequireActive(user *domain.User) error {
	if user == nil || !user.Active {
		return domain.ErrInactiveUser
	}
	return nil
}

// RequireRole fails with ErrForbidden unless the principal's role satisfies
// one of the allowed roles under the role hierarchy (SUPERADMIN satisfies
// ADMIN; operational roles only themselves).
func RequireRole(user *domain.User, allowed ...domain.Role) error {
	if user != nil && user.Role.SatisfiesAny(allowed...) {
		return nil
	}
	return domain.ErrForbidden
}

// OwnsOrAdmin reports whether the principal owns the resource or carries
// administrative privilege. It never errors; callers translate false into
// ErrForbidden.
func OwnsOrAdmin(ownerID string, user *domain.User) bool {
	if user == nil {
		return false
	}
	return ownerID == user.ID || user.Role.IsAdmin()
}

// CanAccessCompany reports whether the principal may act on the company.
// Admins always may; employers only when an employer profile links them to
// the company; all other roles never.
func (a *Authorizer) CanAccessCompany(ctx context.Context, companyID string, user *domain.User) (bool, error) {
	switch {
	case user == nil:
		return false, nil
	case user.Role.IsAdmin():
		return true, nil
	case user.Role == domain.RoleEmployer:
		return a.dir.HasEmployerLink(ctx, user.ID, companyID)
	default:
		return false, nil
	}
}

// CanAccessCandidate reports whether the principal may view the candidate
// profile. Admins always may; a candidate only their own profile; consultants
// and employers may view any candidate.
//
// TODO: decide with product whether consultant/employer visibility should be
// scoped to assigned candidates instead of platform-wide.
func (a *Authorizer) CanAccessCandidate(ctx context.Context, candidateID string, user *domain.User) (bool, error) {
	if user == nil {
		return false, nil
	}
	switch {
	case user.Role.IsAdmin():
		return true, nil
	case user.Role == domain.RoleConsultant, user.Role == domain.RoleEmployer:
		return true, nil
	case user.Role == domain.RoleCandidate:
		profile, err := a.dir.FindCandidateProfileByID(ctx, candidateID)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				return false, nil
			}
			return false, err
		}
		return profile.UserID == user.ID, nil
	}
	return false, nil
}
