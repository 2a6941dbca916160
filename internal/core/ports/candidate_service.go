package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// CandidateProfileInput carries the fields a candidate may edit on their
// own profile.
type CandidateProfileInput struct {
	Headline        string
	Summary         string
	Skills          []string
	YearsExperience int
	Location        string
}

// CandidateSearchResult is a page of matching profiles.
type CandidateSearchResult struct {
	Items      []*domain.CandidateProfile
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CandidateService defines candidate profile and CV use cases. Every operation
// takes the authenticated actor; access rules live in the service, not the
// handler.
type CandidateService interface {
	UpsertOwnProfile(ctx context.Context, actor *domain.User, input CandidateProfileInput) (*domain.CandidateProfile, error)
	GetProfile(ctx context.Context, actor *domain.User, candidateID string) (*domain.CandidateProfile, error)
	Search(ctx context.Context, actor *domain.User, filter CandidateSearchFilter) (*CandidateSearchResult, error)
	StoreCV(ctx context.Context, actor *domain.User, fileName, text string) (*domain.CVDocument, error)
	GetCV(ctx context.Context, actor *domain.User, candidateID string) (*domain.CVDocument, error)
}
