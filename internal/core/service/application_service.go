package service

import (
	"context"
	"time"

	"github.com/talentbridge/recruitment-crm/internal/api/metrics"
	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// ApplicationService implements the application pipeline.
type ApplicationService struct {
	apps     ports.ApplicationRepository
	jobs     ports.JobRepository
	profiles ports.CandidateProfileRepository
	notifier ports.Notifier
	authz    *access.Authorizer
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	profiles ports.CandidateProfileRepository,
	notifier ports.Notifier,
	authz *access.Authorizer,
) *ApplicationService {
	return &ApplicationService{
		apps:     apps,
		jobs:     jobs,
		profiles: profiles,
		notifier: notifier,
		authz:    authz,
	}
}

// Apply submits the actor's candidacy for an open job. The actor must have a
// candidate profile; at most one application exists per (job, candidate).
func (s *ApplicationService) Apply(ctx context.Context, actor *domain.User, jobID, coverNote string) (*domain.Application, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleCandidate); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobOpen {
		return nil, domain.ErrJobNotOpen
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: profile.ID,
		Status:      domain.AppSubmitted,
		CoverNote:   coverNote,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	s.notifier.Enqueue(ports.NotificationEvent{
		RecipientID: job.CreatedBy,
		Kind:        domain.NotifyApplicationReceived,
		Payload: map[string]string{
			"application_id": app.ID,
			"job_id":         job.ID,
			"job_title":      job.Title,
		},
	})
	return app, nil
}

// Get returns an application when the actor may see it: the owning candidate,
// an employer of the job's company, or an admin.
func (s *ApplicationService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Application, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.requireAppAccess(ctx, actor, app); err != nil {
		return nil, err
	}
	return app, nil
}

// List returns a page of applications. Scope narrows by role instead of
// rejecting: candidates see their own, employers their companies' jobs.
// Consultants and admins see the unscoped view.
func (s *ApplicationService) List(ctx context.Context, actor *domain.User, filter ports.ListApplicationsFilter) (*ports.ApplicationListResult, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	switch actor.Role {
	case domain.RoleCandidate:
		profile, err := s.profiles.FindByUserID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		filter.CandidateID = profile.ID
		filter.CompanyID = ""
	case domain.RoleEmployer:
		if filter.CompanyID == "" {
			return nil, domain.ErrForbidden
		}
		allowed, err := s.authz.CanAccessCompany(ctx, filter.CompanyID, actor)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, domain.ErrForbidden
		}
	}

	items, total, err := s.apps.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ApplicationListResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// UpdateStatus moves an application along the pipeline. Employers of the
// job's company, consultants and admins may do this; candidates use Withdraw.
// The move must be valid under the pipeline state machine.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor *domain.User, id string, status domain.ApplicationStatus, note string) (*domain.Application, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleEmployer, domain.RoleConsultant, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if status == domain.AppWithdrawn {
		return nil, domain.ErrForbidden
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == domain.RoleEmployer {
		job, err := s.jobs.FindByID(ctx, app.JobID)
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
	}

	return s.transition(ctx, actor, app, status, note)
}

// Withdraw lets the owning candidate pull out of any non-terminal state.
func (s *ApplicationService) Withdraw(ctx context.Context, actor *domain.User, id string) (*domain.Application, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleCandidate); err != nil {
		return nil, err
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if app.CandidateID != profile.ID {
		return nil, domain.ErrForbidden
	}

	return s.transition(ctx, actor, app, domain.AppWithdrawn, "")
}

func (s *ApplicationService) transition(ctx context.Context, actor *domain.User, app *domain.Application, status domain.ApplicationStatus, note string) (*domain.Application, error) {
	if !app.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	change := domain.StatusChange{
		Status:    status,
		ChangedBy: actor.ID,
		Note:      note,
		Timestamp: time.Now().UTC(),
	}
	if err := s.apps.UpdateStatus(ctx, app.ID, change); err != nil {
		return nil, err
	}

	app.Status = status
	app.History = append(app.History, change)
	app.UpdatedAt = change.Timestamp

	metrics.ApplicationTransitionsTotal.WithLabelValues(string(status)).Inc()
	s.notifyStatusChange(ctx, app, status)
	return app, nil
}

// notifyStatusChange tells the candidate their application moved. Withdrawals
// are candidate-initiated, so no notification goes out for those.
func (s *ApplicationService) notifyStatusChange(ctx context.Context, app *domain.Application, status domain.ApplicationStatus) {
	if status == domain.AppWithdrawn {
		return
	}
	profile, err := s.profiles.FindByID(ctx, app.CandidateID)
	if err != nil {
		return
	}
	s.notifier.Enqueue(ports.NotificationEvent{
		RecipientID: profile.UserID,
		Kind:        domain.NotifyApplicationStatus,
		Payload: map[string]string{
			"application_id": app.ID,
			"job_id":         app.JobID,
			"status":         string(status),
		},
	})
}

func (s *ApplicationService) requireAppAccess(ctx context.Context, actor *domain.User, app *domain.Application) error {
	switch actor.Role {
	case domain.RoleCandidate:
		profile, err := s.profiles.FindByUserID(ctx, actor.ID)
		if err != nil {
			return err
		}
		if app.CandidateID != profile.ID {
			return domain.ErrForbidden
		}
		return nil
	case domain.RoleEmployer:
		job, err := s.jobs.FindByID(ctx, app.JobID)
		if err != nil {
			return err
		}
		allowed, err := s.authz.CanAccessCompany(ctx, job.CompanyID, actor)
		if err != nil {
			return err
		}
		if !allowed {
			return domain.ErrForbidden
		}
		return nil
	case domain.RoleConsultant, domain.RoleAdmin, domain.RoleSuperadmin:
		return nil
	}
	return domain.ErrForbidden
}
