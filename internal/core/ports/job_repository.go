package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// ListJobsFilter carries the job search parameters. Statuses is enforced by
// the service layer: anonymous callers only ever see open postings.
type ListJobsFilter struct {
	CompanyID string
	Statuses  []domain.JobStatus
	Skill     string
	Location  string
	Search    string // partial match on title
	Page      int
	Limit     int
}

// JobRepository defines persistence for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
}
