package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// ConsultantProfileInput carries the fields a consultant may edit.
type ConsultantProfileInput struct {
	Specialty string
	Region    string
}

// ConsultantService defines consultant profile use cases.
type ConsultantService interface {
	UpsertOwnProfile(ctx context.Context, actor *domain.User, input ConsultantProfileInput) (*domain.ConsultantProfile, error)
	List(ctx context.Context, actor *domain.User) ([]*domain.ConsultantProfile, error)
}
