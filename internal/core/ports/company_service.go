package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// CompanyInput carries company fields for create and update.
type CompanyInput struct {
	Name        string
	Industry    string
	Location    string
	Website     string
	Description string
}

// CompanyListResult is a page of companies.
type CompanyListResult struct {
	Items      []*domain.Company
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CompanyService defines company management use cases.
type CompanyService interface {
	Create(ctx context.Context, actor *domain.User, input CompanyInput) (*domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, page, limit int) (*CompanyListResult, error)
	Update(ctx context.Context, actor *domain.User, id string, input CompanyInput) (*domain.Company, error)
	// LinkEmployer attaches an EMPLOYER user to a company (admin operation).
	LinkEmployer(ctx context.Context, actor *domain.User, companyID, userID, position string) (*domain.EmployerProfile, error)
}
