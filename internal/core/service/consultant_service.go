package service

import (
	"context"
	"strings"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// ConsultantService implements consultant profile use cases.
type ConsultantService struct {
	profiles ports.ConsultantProfileRepository
}

func NewConsultantService(profiles ports.ConsultantProfileRepository) *ConsultantService {
	return &ConsultantService{profiles: profiles}
}

func (s *ConsultantService) UpsertOwnProfile(ctx context.Context, actor *domain.User, input ports.ConsultantProfileInput) (*domain.ConsultantProfile, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleConsultant); err != nil {
		return nil, err
	}

	profile := &domain.ConsultantProfile{
		UserID:    actor.ID,
		Specialty: strings.TrimSpace(input.Specialty),
		Region:    strings.TrimSpace(input.Region),
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// List returns the consultant roster. Admin only; the roster includes
// contact-relevant detail not meant for general browsing.
func (s *ConsultantService) List(ctx context.Context, actor *domain.User) ([]*domain.ConsultantProfile, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.profiles.List(ctx)
}
