package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrUserExists
		}
	}
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = active
	return nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id string, role domain.Role) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	var out []*domain.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Active != nil && u.Active != *filter.Active {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type stubCandidateRepo struct {
	profiles map[string]*domain.CandidateProfile // keyed by profile id
	seq      int
}

func newStubCandidateRepo() *stubCandidateRepo {
	return &stubCandidateRepo{profiles: make(map[string]*domain.CandidateProfile)}
}

func (r *stubCandidateRepo) Upsert(_ context.Context, profile *domain.CandidateProfile) error {
	for _, p := range r.profiles {
		if p.UserID == profile.UserID {
			profile.ID = p.ID
			profile.CreatedAt = p.CreatedAt
			profile.UpdatedAt = time.Now().UTC()
			clone := *profile
			r.profiles[p.ID] = &clone
			return nil
		}
	}
	r.seq++
	if profile.ID == "" {
		profile.ID = fmt.Sprintf("cand-%d", r.seq)
	}
	profile.CreatedAt = time.Now().UTC()
	profile.UpdatedAt = profile.CreatedAt
	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

func (r *stubCandidateRepo) FindByID(_ context.Context, id string) (*domain.CandidateProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubCandidateRepo) FindByUserID(_ context.Context, userID string) (*domain.CandidateProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubCandidateRepo) SetCVDocumentID(_ context.Context, userID, documentID string) error {
	for _, p := range r.profiles {
		if p.UserID == userID {
			p.CVDocumentID = documentID
			return nil
		}
	}
	return domain.ErrProfileNotFound
}

func (r *stubCandidateRepo) Search(_ context.Context, filter ports.CandidateSearchFilter) ([]*domain.CandidateProfile, int64, error) {
	var out []*domain.CandidateProfile
	for _, p := range r.profiles {
		if filter.Skill != "" {
			found := false
			for _, s := range p.Skills {
				if s == filter.Skill {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if filter.MinExperience > 0 && p.YearsExperience < filter.MinExperience {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type stubEmployerRepo struct {
	links []*domain.EmployerProfile
}

func (r *stubEmployerRepo) Create(_ context.Context, profile *domain.EmployerProfile) error {
	if profile.ID == "" {
		profile.ID = fmt.Sprintf("emp-%d", len(r.links)+1)
	}
	profile.CreatedAt = time.Now().UTC()
	clone := *profile
	r.links = append(r.links, &clone)
	return nil
}

func (r *stubEmployerRepo) FindByUserID(_ context.Context, userID string) ([]*domain.EmployerProfile, error) {
	var out []*domain.EmployerProfile
	for _, l := range r.links {
		if l.UserID == userID {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubEmployerRepo) Exists(_ context.Context, userID, companyID string) (bool, error) {
	for _, l := range r.links {
		if l.UserID == userID && l.CompanyID == companyID {
			return true, nil
		}
	}
	return false, nil
}

type stubCompanyRepo struct {
	companies map[string]*domain.Company
	seq       int
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{companies: make(map[string]*domain.Company)}
}

func (r *stubCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	r.seq++
	if company.ID == "" {
		company.ID = fmt.Sprintf("co-%d", r.seq)
	}
	company.CreatedAt = time.Now().UTC()
	company.UpdatedAt = company.CreatedAt
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id string) (*domain.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	if _, ok := r.companies[company.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *stubCompanyRepo) List(_ context.Context, _, _ int) ([]*domain.Company, int64, error) {
	var out []*domain.Company
	for _, c := range r.companies {
		clone := *c
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type stubJobRepo struct {
	jobs map[string]*domain.Job
	seq  int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	r.seq++
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", r.seq)
	}
	job.CreatedAt = time.Now().UTC()
	job.UpdatedAt = job.CreatedAt
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) Update(_ context.Context, job *domain.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return domain.ErrJobNotFound
	}
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *stubJobRepo) List(_ context.Context, filter ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	var out []*domain.Job
	for _, j := range r.jobs {
		if filter.CompanyID != "" && j.CompanyID != filter.CompanyID {
			continue
		}
		if len(filter.Statuses) > 0 {
			match := false
			for _, s := range filter.Statuses {
				if j.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		clone := *j
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type stubAppRepo struct {
	apps map[string]*domain.Application
	seq  int
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{apps: make(map[string]*domain.Application)}
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) error {
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.CandidateID == app.CandidateID {
			return domain.ErrDuplicateApplication
		}
	}
	r.seq++
	if app.ID == "" {
		app.ID = fmt.Sprintf("app-%d", r.seq)
	}
	app.CreatedAt = time.Now().UTC()
	app.UpdatedAt = app.CreatedAt
	clone := *app
	r.apps[app.ID] = &clone
	return nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *a
	clone.History = append([]domain.StatusChange(nil), a.History...)
	return &clone, nil
}

func (r *stubAppRepo) UpdateStatus(_ context.Context, id string, change domain.StatusChange) error {
	a, ok := r.apps[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	a.Status = change.Status
	a.History = append(a.History, change)
	a.UpdatedAt = change.Timestamp
	return nil
}

func (r *stubAppRepo) List(_ context.Context, filter ports.ListApplicationsFilter) ([]*domain.Application, int64, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if filter.JobID != "" && a.JobID != filter.JobID {
			continue
		}
		if filter.CandidateID != "" && a.CandidateID != filter.CandidateID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type stubCVRepo struct {
	docs map[string]*domain.CVDocument // keyed by owner id
}

func newStubCVRepo() *stubCVRepo {
	return &stubCVRepo{docs: make(map[string]*domain.CVDocument)}
}

func (r *stubCVRepo) Upsert(_ context.Context, doc *domain.CVDocument) (string, error) {
	if existing, ok := r.docs[doc.OwnerID]; ok {
		doc.ID = existing.ID
	} else {
		doc.ID = fmt.Sprintf("cv-%d", len(r.docs)+1)
	}
	doc.UpdatedAt = time.Now().UTC()
	clone := *doc
	r.docs[doc.OwnerID] = &clone
	return doc.ID, nil
}

func (r *stubCVRepo) FindByOwner(_ context.Context, ownerID string) (*domain.CVDocument, error) {
	d, ok := r.docs[ownerID]
	if !ok {
		return nil, domain.ErrCVNotFound
	}
	clone := *d
	return &clone, nil
}

type stubNotifier struct {
	events []ports.NotificationEvent
}

func (n *stubNotifier) Enqueue(event ports.NotificationEvent) {
	n.events = append(n.events, event)
}

type stubMatchRepo struct {
	assessments []*domain.MatchAssessment
}

func (r *stubMatchRepo) Insert(_ context.Context, a *domain.MatchAssessment) (string, error) {
	a.ID = fmt.Sprintf("match-%d", len(r.assessments)+1)
	clone := *a
	r.assessments = append(r.assessments, &clone)
	return a.ID, nil
}

func (r *stubMatchRepo) ListForCandidate(_ context.Context, candidateID string, _ int) ([]*domain.MatchAssessment, error) {
	var out []*domain.MatchAssessment
	for _, a := range r.assessments {
		if a.CandidateID == candidateID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubMatchCache struct {
	entries map[string]*domain.MatchAssessment
}

func newStubMatchCache() *stubMatchCache {
	return &stubMatchCache{entries: make(map[string]*domain.MatchAssessment)}
}

func (c *stubMatchCache) Get(_ context.Context, jobID, candidateID string) (*domain.MatchAssessment, bool, error) {
	a, ok := c.entries[jobID+":"+candidateID]
	return a, ok, nil
}

func (c *stubMatchCache) Set(_ context.Context, a *domain.MatchAssessment) error {
	clone := *a
	c.entries[a.JobID+":"+a.CandidateID] = &clone
	return nil
}

type stubMatcher struct {
	fit   ports.FitAssessment
	err   error
	calls int
}

func (m *stubMatcher) Evaluate(_ context.Context, _ *domain.CVDocument, _ *domain.Job) (*ports.FitAssessment, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	fit := m.fit
	return &fit, nil
}

func (m *stubMatcher) Model() string { return "stub-model" }

// stubDirectory adapts the stub repositories to ports.PrincipalDirectory so
// an Authorizer can run against in-memory state.
type stubDirectory struct {
	users      *stubUserRepo
	candidates *stubCandidateRepo
	employers  *stubEmployerRepo
}

func (d *stubDirectory) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	return d.users.FindByID(ctx, id)
}

func (d *stubDirectory) FindCandidateProfileByID(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	return d.candidates.FindByID(ctx, id)
}

func (d *stubDirectory) HasEmployerLink(ctx context.Context, userID, companyID string) (bool, error) {
	return d.employers.Exists(ctx, userID, companyID)
}

// fixture bundles the stubs most service tests need.
type fixture struct {
	users      *stubUserRepo
	candidates *stubCandidateRepo
	employers  *stubEmployerRepo
	companies  *stubCompanyRepo
	jobs       *stubJobRepo
	apps       *stubAppRepo
	cvs        *stubCVRepo
	notifier   *stubNotifier
	authz      *access.Authorizer
}

func newFixture() *fixture {
	f := &fixture{
		users:      newStubUserRepo(),
		candidates: newStubCandidateRepo(),
		employers:  &stubEmployerRepo{},
		companies:  newStubCompanyRepo(),
		jobs:       newStubJobRepo(),
		apps:       newStubAppRepo(),
		cvs:        newStubCVRepo(),
		notifier:   &stubNotifier{},
	}
	dir := &stubDirectory{users: f.users, candidates: f.candidates, employers: f.employers}
	f.authz = access.NewAuthorizer(access.NewTokenManager("test-secret", 0, 0), dir)
	return f
}

func (f *fixture) addUser(id string, role domain.Role, active bool) *domain.User {
	u := &domain.User{
		ID:     id,
		Email:  id + "@example.com",
		Role:   role,
		Active: active,
	}
	_ = f.users.Create(context.Background(), u)
	return u
}

func (f *fixture) addCandidateProfile(profileID, userID string) *domain.CandidateProfile {
	p := &domain.CandidateProfile{ID: profileID, UserID: userID}
	f.candidates.profiles[profileID] = p
	return p
}

func (f *fixture) addCompany(id string) *domain.Company {
	c := &domain.Company{ID: id, Name: id}
	f.companies.companies[id] = c
	return c
}

func (f *fixture) linkEmployer(userID, companyID string) {
	f.employers.links = append(f.employers.links, &domain.EmployerProfile{
		ID:        fmt.Sprintf("emp-%d", len(f.employers.links)+1),
		UserID:    userID,
		CompanyID: companyID,
	})
}

func (f *fixture) addJob(id, companyID, createdBy string, status domain.JobStatus) *domain.Job {
	j := &domain.Job{ID: id, CompanyID: companyID, CreatedBy: createdBy, Title: id, Status: status}
	f.jobs.jobs[id] = j
	return j
}
