package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// ApplicationListResult is a page of applications.
type ApplicationListResult struct {
	Items      []*domain.Application
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ApplicationService defines application pipeline use cases. Listing narrows
// scope by role instead of rejecting: candidates see their own applications,
// employers see their companies' jobs.
type ApplicationService interface {
	Apply(ctx context.Context, actor *domain.User, jobID, coverNote string) (*domain.Application, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Application, error)
	List(ctx context.Context, actor *domain.User, filter ListApplicationsFilter) (*ApplicationListResult, error)
	UpdateStatus(ctx context.Context, actor *domain.User, id string, status domain.ApplicationStatus, note string) (*domain.Application, error)
	Withdraw(ctx context.Context, actor *domain.User, id string) (*domain.Application, error)
}
