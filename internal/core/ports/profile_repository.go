package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// CandidateSearchFilter carries the candidate search parameters (filtered SQL).
type CandidateSearchFilter struct {
	Skill         string
	Location      string
	MinExperience int
	Page          int
	Limit         int
}

// CandidateProfileRepository defines persistence for candidate profiles.
type CandidateProfileRepository interface {
	// Upsert creates or replaces the profile keyed by UserID.
	Upsert(ctx context.Context, profile *domain.CandidateProfile) error
	FindByID(ctx context.Context, id string) (*domain.CandidateProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error)
	SetCVDocumentID(ctx context.Context, userID, documentID string) error
	Search(ctx context.Context, filter CandidateSearchFilter) ([]*domain.CandidateProfile, int64, error)
}

// EmployerProfileRepository defines persistence for employer-company links.
type EmployerProfileRepository interface {
	Create(ctx context.Context, profile *domain.EmployerProfile) error
	FindByUserID(ctx context.Context, userID string) ([]*domain.EmployerProfile, error)
	Exists(ctx context.Context, userID, companyID string) (bool, error)
}

// ConsultantProfileRepository defines persistence for consultant profiles.
type ConsultantProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.ConsultantProfile) error
	FindByUserID(ctx context.Context, userID string) (*domain.ConsultantProfile, error)
	List(ctx context.Context) ([]*domain.ConsultantProfile, error)
}
