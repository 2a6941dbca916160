package service

import (
	"context"
	"strings"
	"time"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// JobService implements job posting use cases. Get and List accept a nil
// actor: anonymous callers only ever see open postings.
type JobService struct {
	jobs  ports.JobRepository
	authz *access.Authorizer
}

func NewJobService(jobs ports.JobRepository, authz *access.Authorizer) *JobService {
	return &JobService{jobs: jobs, authz: authz}
}

// Create opens a new posting for the given company. The actor must be an
// admin or an employer linked to that company. Publish moves the posting
// straight from draft to open.
func (s *JobService) Create(ctx context.Context, actor *domain.User, input ports.JobInput) (*domain.Job, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}

	allowed, err := s.authz.CanAccessCompany(ctx, input.CompanyID, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	job := &domain.Job{
		CompanyID:      input.CompanyID,
		CreatedBy:      actor.ID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Location:       strings.TrimSpace(input.Location),
		EmploymentType: input.EmploymentType,
		SalaryMin:      input.SalaryMin,
		SalaryMax:      input.SalaryMax,
		Skills:         normalizeSkills(input.Skills),
		Status:         domain.JobDraft,
	}
	if input.Publish {
		job.Status = domain.JobOpen
		job.PostedAt = time.Now().UTC()
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get returns a posting. Non-open postings are only visible to admins and to
// employers of the owning company; everyone else gets not-found rather than
// forbidden, so drafts do not leak their existence.
func (s *JobService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Status == domain.JobOpen {
		return job, nil
	}

	if actor == nil {
		return nil, domain.ErrJobNotFound
	}
	allowed, err := s.authz.CanAccessCompany(ctx, job.CompanyID, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

// List returns a page of postings. The status scope is decided here from the
// actor's role, never from client input: anonymous callers and candidates see
// open postings only.
func (s *JobService) List(ctx context.Context, actor *domain.User, filter ports.ListJobsFilter) (*ports.JobListResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	if actor == nil || !actor.Role.SatisfiesAny(domain.RoleAdmin, domain.RoleEmployer, domain.RoleConsultant) {
		filter.Statuses = []domain.JobStatus{domain.JobOpen}
	} else if len(filter.Statuses) == 0 {
		filter.Statuses = []domain.JobStatus{domain.JobOpen}
	}

	items, total, err := s.jobs.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.JobListResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// Update edits a posting, including status moves via Publish. Transitions go
// through the posting state machine.
func (s *JobService) Update(ctx context.Context, actor *domain.User, id string, input ports.JobInput) (*domain.Job, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authz.CanAccessCompany(ctx, job.CompanyID, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	job.Title = strings.TrimSpace(input.Title)
	job.Description = input.Description
	job.Location = strings.TrimSpace(input.Location)
	job.EmploymentType = input.EmploymentType
	job.SalaryMin = input.SalaryMin
	job.SalaryMax = input.SalaryMax
	job.Skills = normalizeSkills(input.Skills)

	if input.Publish && job.Status != domain.JobOpen {
		if !job.Status.CanTransitionTo(domain.JobOpen) {
			return nil, domain.ErrInvalidTransition
		}
		job.Status = domain.JobOpen
		if job.PostedAt.IsZero() {
			job.PostedAt = time.Now().UTC()
		}
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Close stops a posting from accepting applications.
func (s *JobService) Close(ctx context.Context, actor *domain.User, id string) (*domain.Job, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authz.CanAccessCompany(ctx, job.CompanyID, actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if !job.Status.CanTransitionTo(domain.JobClosed) {
		return nil, domain.ErrInvalidTransition
	}
	job.Status = domain.JobClosed

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}
