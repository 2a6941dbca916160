package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// ListApplicationsFilter carries the application listing parameters.
// CandidateID / CompanyID scoping is set by the service layer from the
// caller's role, never from client input.
type ListApplicationsFilter struct {
	JobID       string
	CandidateID string
	CompanyID   string
	Status      domain.ApplicationStatus
	Page        int
	Limit       int
}

// ApplicationRepository defines persistence for applications.
type ApplicationRepository interface {
	// Create inserts a new application; a (job, candidate) collision yields
	// domain.ErrDuplicateApplication.
	Create(ctx context.Context, app *domain.Application) error
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	// UpdateStatus sets the new status and appends a history entry.
	UpdateStatus(ctx context.Context, id string, change domain.StatusChange) error
	List(ctx context.Context, filter ListApplicationsFilter) ([]*domain.Application, int64, error)
}
