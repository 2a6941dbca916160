package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// AnalyticsService exposes the admin aggregate views.
type AnalyticsService interface {
	Overview(ctx context.Context, actor *domain.User) (*OverviewStats, error)
	JobFunnel(ctx context.Context, actor *domain.User, jobID string) (*FunnelStats, error)
}
