package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// AnalyticsRepository runs the aggregate queries behind the admin dashboards.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) Overview(ctx context.Context) (*ports.OverviewStats, error) {
	stats := &ports.OverviewStats{
		UsersByRole:       make(map[domain.Role]int64),
		ApplicationsByDay: make(map[string]int64),
	}

	const counts = `
        SELECT
            (SELECT count(*) FROM users),
            (SELECT count(*) FROM users WHERE active),
            (SELECT count(*) FROM companies),
            (SELECT count(*) FROM jobs WHERE status = 'open'),
            (SELECT count(*) FROM applications)`

	err := r.pool.QueryRow(ctx, counts).Scan(
		&stats.TotalUsers,
		&stats.ActiveUsers,
		&stats.TotalCompanies,
		&stats.OpenJobs,
		&stats.TotalApplications,
	)
	if err != nil {
		return nil, fmt.Errorf("overview counts: %w", err)
	}

	const byRole = `SELECT role, count(*) FROM users GROUP BY role`
	rows, err := r.pool.Query(ctx, byRole)
	if err != nil {
		return nil, fmt.Errorf("users by role: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			role domain.Role
			n    int64
		)
		if err := rows.Scan(&role, &n); err != nil {
			return nil, fmt.Errorf("scan role count: %w", err)
		}
		stats.UsersByRole[role] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const byDay = `
        SELECT to_char(created_at::date, 'YYYY-MM-DD'), count(*)
        FROM applications
        WHERE created_at >= now() - interval '30 days'
        GROUP BY 1 ORDER BY 1`

	dayRows, err := r.pool.Query(ctx, byDay)
	if err != nil {
		return nil, fmt.Errorf("applications by day: %w", err)
	}
	defer dayRows.Close()

	for dayRows.Next() {
		var (
			day string
			n   int64
		)
		if err := dayRows.Scan(&day, &n); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		stats.ApplicationsByDay[day] = n
	}
	return stats, dayRows.Err()
}

func (r *AnalyticsRepository) JobFunnel(ctx context.Context, jobID string) (*ports.FunnelStats, error) {
	stats := &ports.FunnelStats{
		JobID:    jobID,
		ByStatus: make(map[domain.ApplicationStatus]int64),
	}

	const query = `SELECT status, count(*) FROM applications WHERE job_id = $1 GROUP BY status`

	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("job funnel: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status domain.ApplicationStatus
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan funnel row: %w", err)
		}
		stats.ByStatus[status] = n
		stats.Total += n
	}
	return stats, rows.Err()
}
