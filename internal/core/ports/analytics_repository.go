package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// OverviewStats aggregates platform-wide counts.
type OverviewStats struct {
	TotalUsers         int64                        `json:"total_users"`
	ActiveUsers        int64                        `json:"active_users"`
	UsersByRole        map[domain.Role]int64        `json:"users_by_role"`
	TotalCompanies     int64                        `json:"total_companies"`
	OpenJobs           int64                        `json:"open_jobs"`
	TotalApplications  int64                        `json:"total_applications"`
	ApplicationsByDay  map[string]int64             `json:"applications_by_day"`
}

// FunnelStats counts applications per pipeline stage for a single job.
type FunnelStats struct {
	JobID    string                                `json:"job_id"`
	ByStatus map[domain.ApplicationStatus]int64    `json:"by_status"`
	Total    int64                                 `json:"total"`
}

// AnalyticsRepository runs the aggregate SQL queries behind the admin
// analytics endpoints.
type AnalyticsRepository interface {
	Overview(ctx context.Context) (*OverviewStats, error)
	JobFunnel(ctx context.Context, jobID string) (*FunnelStats, error)
}
