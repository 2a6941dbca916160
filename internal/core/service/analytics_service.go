package service

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// AnalyticsService exposes the admin aggregate views.
type AnalyticsService struct {
	analytics ports.AnalyticsRepository
	jobs      ports.JobRepository
}

func NewAnalyticsService(analytics ports.AnalyticsRepository, jobs ports.JobRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, jobs: jobs}
}

func (s *AnalyticsService) Overview(ctx context.Context, actor *domain.User) (*ports.OverviewStats, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.analytics.Overview(ctx)
}

func (s *AnalyticsService) JobFunnel(ctx context.Context, actor *domain.User, jobID string) (*ports.FunnelStats, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.analytics.JobFunnel(ctx, jobID)
}
