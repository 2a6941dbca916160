package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// JobInput carries posting fields for create and update.
type JobInput struct {
	CompanyID      string
	Title          string
	Description    string
	Location       string
	EmploymentType string
	SalaryMin      int
	SalaryMax      int
	Skills         []string
	Publish        bool
}

// JobListResult is a page of postings.
type JobListResult struct {
	Items      []*domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService defines posting use cases. Get and List accept a nil actor for
// anonymous access; anonymous callers only see open postings.
type JobService interface {
	Create(ctx context.Context, actor *domain.User, input JobInput) (*domain.Job, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Job, error)
	List(ctx context.Context, actor *domain.User, filter ListJobsFilter) (*JobListResult, error)
	Update(ctx context.Context, actor *domain.User, id string, input JobInput) (*domain.Job, error)
	Close(ctx context.Context, actor *domain.User, id string) (*domain.Job, error)
}
