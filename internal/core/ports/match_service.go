package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// FitAssessment is the parsed LLM verdict on a candidate/job pairing.
type FitAssessment struct {
	Fit    bool
	Score  float64
	Reason string
	Raw    string
}

// CVMatcher evaluates a CV against a job posting via the LLM provider.
type CVMatcher interface {
	Evaluate(ctx context.Context, cv *domain.CVDocument, job *domain.Job) (*FitAssessment, error)
	Model() string
}

// MatchCache is the hot cache in front of the LLM (Redis-backed).
type MatchCache interface {
	Get(ctx context.Context, jobID, candidateID string) (*domain.MatchAssessment, bool, error)
	Set(ctx context.Context, a *domain.MatchAssessment) error
}

// MatchService defines the AI-assisted matching use cases.
type MatchService interface {
	Evaluate(ctx context.Context, actor *domain.User, jobID, candidateID string) (*domain.MatchAssessment, error)
	ListForCandidate(ctx context.Context, actor *domain.User, candidateID string) ([]*domain.MatchAssessment, error)
}
