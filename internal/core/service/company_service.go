package service

import (
	"context"
	"strings"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// CompanyService implements company management.
type CompanyService struct {
	companies ports.CompanyRepository
	employers ports.EmployerProfileRepository
	users     ports.UserRepository
	authz     *access.Authorizer
}

func NewCompanyService(companies ports.CompanyRepository, employers ports.EmployerProfileRepository, users ports.UserRepository, authz *access.Authorizer) *CompanyService {
	return &CompanyService{companies: companies, employers: employers, users: users, authz: authz}
}

// Create registers a company. Admin only; employers are linked afterwards.
func (s *CompanyService) Create(ctx context.Context, actor *domain.User, input ports.CompanyInput) (*domain.Company, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	company := companyFromInput(input)
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Get returns a company. Company records are not sensitive; any caller,
// including anonymous ones, may read them.
func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	return s.companies.FindByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context, page, limit int) (*ports.CompanyListResult, error) {
	page, limit = normalizePage(page, limit)

	items, total, err := s.companies.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.CompanyListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Update edits a company. Admins always may; employers only for a company
// they are linked to.
func (s *CompanyService) Update(ctx context.Context, actor *domain.User, id string, input ports.CompanyInput) (*domain.Company, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}

	allowed, err := s.authz.CanAccessCompany(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = strings.TrimSpace(input.Name)
	company.Industry = strings.TrimSpace(input.Industry)
	company.Location = strings.TrimSpace(input.Location)
	company.Website = strings.TrimSpace(input.Website)
	company.Description = input.Description

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// LinkEmployer attaches an EMPLOYER user to a company. Admin only. The target
// must exist, hold the EMPLOYER role, and not already be linked.
func (s *CompanyService) LinkEmployer(ctx context.Context, actor *domain.User, companyID, userID, position string) (*domain.EmployerProfile, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	target, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if target.Role != domain.RoleEmployer {
		return nil, domain.ErrForbidden
	}

	linked, err := s.employers.Exists(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	if linked {
		return nil, domain.ErrUserExists
	}

	profile := &domain.EmployerProfile{
		UserID:    userID,
		CompanyID: companyID,
		Position:  strings.TrimSpace(position),
	}
	if err := s.employers.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func companyFromInput(input ports.CompanyInput) *domain.Company {
	return &domain.Company{
		Name:        strings.TrimSpace(input.Name),
		Industry:    strings.TrimSpace(input.Industry),
		Location:    strings.TrimSpace(input.Location),
		Website:     strings.TrimSpace(input.Website),
		Description: input.Description,
	}
}
