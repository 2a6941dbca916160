package service

import (
	"context"
	"errors"
	"testing"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

func newCompanySvc(f *fixture) *CompanyService {
	return NewCompanyService(f.companies, f.employers, f.users, f.authz)
}

func TestCompanyService_Create_AdminOnly(t *testing.T) {
	f := newFixture()
	svc := newCompanySvc(f)

	admin := f.addUser("u-admin", domain.RoleAdmin, true)
	company, err := svc.Create(context.Background(), admin, ports.CompanyInput{Name: " Acme "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if company.Name != "Acme" {
		t.Fatalf("expected trimmed name, got %q", company.Name)
	}

	employer := f.addUser("u-emp", domain.RoleEmployer, true)
	if _, err := svc.Create(context.Background(), employer, ports.CompanyInput{Name: "Evil Corp"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCompanyService_Update_LinkedEmployerOnly(t *testing.T) {
	f := newFixture()
	svc := newCompanySvc(f)

	f.addCompany("co-1")
	linked := f.addUser("u-linked", domain.RoleEmployer, true)
	f.linkEmployer(linked.ID, "co-1")
	unlinked := f.addUser("u-unlinked", domain.RoleEmployer, true)

	if _, err := svc.Update(context.Background(), linked, "co-1", ports.CompanyInput{Name: "New Name"}); err != nil {
		t.Fatalf("linked update failed: %v", err)
	}
	if _, err := svc.Update(context.Background(), unlinked, "co-1", ports.CompanyInput{Name: "Hijack"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCompanyService_LinkEmployer(t *testing.T) {
	f := newFixture()
	svc := newCompanySvc(f)

	admin := f.addUser("u-admin", domain.RoleAdmin, true)
	f.addCompany("co-1")
	employer := f.addUser("u-emp", domain.RoleEmployer, true)

	profile, err := svc.LinkEmployer(context.Background(), admin, "co-1", employer.ID, "Recruiter")
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}
	if profile.CompanyID != "co-1" || profile.UserID != employer.ID {
		t.Fatalf("unexpected link: %+v", profile)
	}

	// Duplicate links are rejected.
	if _, err := svc.LinkEmployer(context.Background(), admin, "co-1", employer.ID, ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// Only EMPLOYER users can be linked.
	candidate := f.addUser("u-cand", domain.RoleCandidate, true)
	if _, err := svc.LinkEmployer(context.Background(), admin, "co-1", candidate.ID, ""); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for candidate target, got %v", err)
	}

	// Unknown company surfaces as not-found.
	if _, err := svc.LinkEmployer(context.Background(), admin, "co-missing", employer.ID, ""); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
