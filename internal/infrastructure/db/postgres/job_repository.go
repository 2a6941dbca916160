package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// JobRepository is the pgx-backed job posting store.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, company_id, created_by, title, description, location, employment_type,
       salary_min, salary_max, skills, status, posted_at, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		j      domain.Job
		posted *time.Time // NULL until the job is first opened
	)
	err := row.Scan(
		&j.ID,
		&j.CompanyID,
		&j.CreatedBy,
		&j.Title,
		&j.Description,
		&j.Location,
		&j.EmploymentType,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.Skills,
		&j.Status,
		&posted,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if posted != nil {
		j.PostedAt = *posted
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	return &j, nil
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO jobs (id, company_id, created_by, title, description, location,
                          employment_type, salary_min, salary_max, skills, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		job.ID,
		job.CompanyID,
		job.CreatedBy,
		job.Title,
		job.Description,
		job.Location,
		job.EmploymentType,
		job.SalaryMin,
		job.SalaryMax,
		job.Skills,
		job.Status,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.pool.QueryRow(ctx, query, id))
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs
        SET title = $1, description = $2, location = $3, employment_type = $4,
            salary_min = $5, salary_max = $6, skills = $7, status = $8,
            posted_at = $9, updated_at = now()
        WHERE id = $10`

	var posted *time.Time
	if !job.PostedAt.IsZero() {
		posted = &job.PostedAt
	}

	cmd, err := r.pool.Exec(ctx, query,
		job.Title,
		job.Description,
		job.Location,
		job.EmploymentType,
		job.SalaryMin,
		job.SalaryMax,
		job.Skills,
		job.Status,
		posted,
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	where := []string{"true"}
	args := []any{}

	if filter.CompanyID != "" {
		args = append(args, filter.CompanyID)
		where = append(where, fmt.Sprintf("company_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, filter.Statuses)
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filter.Skill != "" {
		args = append(args, filter.Skill)
		where = append(where, fmt.Sprintf("$%d = ANY(skills)", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		where = append(where, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM jobs WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, cond, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}
