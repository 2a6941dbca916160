package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// PrincipalDirectory is the read-side the access-control layer depends on:
// resolving token subjects to stored users and answering ownership lookups.
// Reads are assumed strongly consistent with prior writes in the same request.
type PrincipalDirectory interface {
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	// FindCandidateProfileByID returns the profile or domain.ErrProfileNotFound.
	FindCandidateProfileByID(ctx context.Context, id string) (*domain.CandidateProfile, error)
	// HasEmployerLink reports whether an employer profile links userID to companyID.
	HasEmployerLink(ctx context.Context, userID, companyID string) (bool, error)
}
