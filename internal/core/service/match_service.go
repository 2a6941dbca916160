package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-crm/internal/api/metrics"
	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// MatchService implements AI-assisted candidate/job matching. Assessments are
// cached per (job, candidate) pair so repeat evaluations skip the LLM.
type MatchService struct {
	matcher  ports.CVMatcher
	cache    ports.MatchCache
	matches  ports.MatchRepository
	profiles ports.CandidateProfileRepository
	cvs      ports.CVRepository
	jobs     ports.JobRepository
	authz    *access.Authorizer
	log      zerolog.Logger
}

func NewMatchService(
	matcher ports.CVMatcher,
	cache ports.MatchCache,
	matches ports.MatchRepository,
	profiles ports.CandidateProfileRepository,
	cvs ports.CVRepository,
	jobs ports.JobRepository,
	authz *access.Authorizer,
	log zerolog.Logger,
) *MatchService {
	return &MatchService{
		matcher:  matcher,
		cache:    cache,
		matches:  matches,
		profiles: profiles,
		cvs:      cvs,
		jobs:     jobs,
		authz:    authz,
		log:      log,
	}
}

// Evaluate scores a candidate's CV against a job. The actor must be allowed
// to view the candidate profile. Cache hits do not call the LLM.
func (s *MatchService) Evaluate(ctx context.Context, actor *domain.User, jobID, candidateID string) (*domain.MatchAssessment, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleEmployer, domain.RoleConsultant, domain.RoleAdmin); err != nil {
		return nil, err
	}

	allowed, err := s.authz.CanAccessCandidate(ctx, candidateID, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if cached, ok, err := s.cache.Get(ctx, jobID, candidateID); err != nil {
		s.log.Warn().Err(err).Msg("match cache read failed")
	} else if ok {
		metrics.MatchCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.MatchCacheTotal.WithLabelValues("miss").Inc()

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	cv, err := s.cvs.FindByOwner(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	fit, err := s.matcher.Evaluate(ctx, cv, job)
	if err != nil {
		return nil, err
	}
	metrics.MatchEvaluationDuration.Observe(time.Since(start).Seconds())

	assessment := &domain.MatchAssessment{
		JobID:       jobID,
		CandidateID: candidateID,
		Fit:         fit.Fit,
		Score:       fit.Score,
		Reason:      fit.Reason,
		Model:       s.matcher.Model(),
		Raw:         fit.Raw,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.matches.Insert(ctx, assessment); err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, assessment); err != nil {
		s.log.Warn().Err(err).Msg("match cache write failed")
	}
	return assessment, nil
}

// ListForCandidate returns stored assessments for a candidate, guarded by the
// profile access rules.
func (s *MatchService) ListForCandidate(ctx context.Context, actor *domain.User, candidateID string) ([]*domain.MatchAssessment, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}

	allowed, err := s.authz.CanAccessCandidate(ctx, candidateID, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	return s.matches.ListForCandidate(ctx, candidateID, defaultPageLimit)
}
