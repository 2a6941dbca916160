package service

import (
	"context"
	"strings"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// CandidateService implements candidate profile and CV use cases.
type CandidateService struct {
	profiles ports.CandidateProfileRepository
	cvs      ports.CVRepository
	authz    *access.Authorizer
}

func NewCandidateService(profiles ports.CandidateProfileRepository, cvs ports.CVRepository, authz *access.Authorizer) *CandidateService {
	return &CandidateService{profiles: profiles, cvs: cvs, authz: authz}
}

// UpsertOwnProfile creates or updates the actor's own candidate profile.
func (s *CandidateService) UpsertOwnProfile(ctx context.Context, actor *domain.User, input ports.CandidateProfileInput) (*domain.CandidateProfile, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleCandidate); err != nil {
		return nil, err
	}

	profile := &domain.CandidateProfile{
		UserID:          actor.ID,
		Headline:        strings.TrimSpace(input.Headline),
		Summary:         input.Summary,
		Skills:          normalizeSkills(input.Skills),
		YearsExperience: input.YearsExperience,
		Location:        strings.TrimSpace(input.Location),
	}

	if existing, err := s.profiles.FindByUserID(ctx, actor.ID); err == nil {
		profile.ID = existing.ID
		profile.CVDocumentID = existing.CVDocumentID
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns a candidate profile, subject to the profile access rules.
func (s *CandidateService) GetProfile(ctx context.Context, actor *domain.User, candidateID string) (*domain.CandidateProfile, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}

	allowed, err := s.authz.CanAccessCandidate(ctx, candidateID, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	return s.profiles.FindByID(ctx, candidateID)
}

// Search returns a page of profiles matching the filter. Candidates cannot
// browse other candidates.
func (s *CandidateService) Search(ctx context.Context, actor *domain.User, filter ports.CandidateSearchFilter) (*ports.CandidateSearchResult, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleEmployer, domain.RoleConsultant, domain.RoleAdmin); err != nil {
		return nil, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.profiles.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.CandidateSearchResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// StoreCV saves the actor's CV text and links it to their profile. The
// profile must exist first.
func (s *CandidateService) StoreCV(ctx context.Context, actor *domain.User, fileName, text string) (*domain.CVDocument, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleCandidate); err != nil {
		return nil, err
	}

	if _, err := s.profiles.FindByUserID(ctx, actor.ID); err != nil {
		return nil, err
	}

	doc := &domain.CVDocument{
		OwnerID:  actor.ID,
		FileName: strings.TrimSpace(fileName),
		Text:     text,
	}

	id, err := s.cvs.Upsert(ctx, doc)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.SetCVDocumentID(ctx, actor.ID, id); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetCV returns a candidate's CV, guarded by the same rules as the profile.
func (s *CandidateService) GetCV(ctx context.Context, actor *domain.User, candidateID string) (*domain.CVDocument, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}

	allowed, err := s.authz.CanAccessCandidate(ctx, candidateID, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	profile, err := s.profiles.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return s.cvs.FindByOwner(ctx, profile.UserID)
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}
