package service

import (
	"context"
	"errors"
	"testing"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

func newCandService(f *fixture) *CandidateService {
	return NewCandidateService(f.candidates, f.cvs, f.authz)
}

func TestCandidateService_UpsertOwnProfile(t *testing.T) {
	f := newFixture()
	svc := newCandService(f)

	candidate := f.addUser("u-cand", domain.RoleCandidate, true)

	profile, err := svc.UpsertOwnProfile(context.Background(), candidate, ports.CandidateProfileInput{
		Headline: "  Backend engineer ",
		Skills:   []string{"Go", "go", " Postgres ", ""},
		Location: "Berlin",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if profile.UserID != candidate.ID {
		t.Fatalf("profile not bound to actor: %+v", profile)
	}
	if profile.Headline != "Backend engineer" {
		t.Fatalf("expected trimmed headline, got %q", profile.Headline)
	}
	if len(profile.Skills) != 2 || profile.Skills[0] != "go" || profile.Skills[1] != "postgres" {
		t.Fatalf("expected deduplicated lowercase skills, got %v", profile.Skills)
	}

	// A second upsert keeps the same profile id.
	again, err := svc.UpsertOwnProfile(context.Background(), candidate, ports.CandidateProfileInput{Headline: "Updated"})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if again.ID != profile.ID {
		t.Fatalf("expected stable profile id, got %s and %s", profile.ID, again.ID)
	}
}

func TestCandidateService_UpsertOwnProfile_RoleAndActiveGates(t *testing.T) {
	f := newFixture()
	svc := newCandService(f)

	employer := f.addUser("u-emp", domain.RoleEmployer, true)
	if _, err := svc.UpsertOwnProfile(context.Background(), employer, ports.CandidateProfileInput{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for employer, got %v", err)
	}

	inactive := f.addUser("u-off", domain.RoleCandidate, false)
	if _, err := svc.UpsertOwnProfile(context.Background(), inactive, ports.CandidateProfileInput{}); !errors.Is(err, domain.ErrInactiveUser) {
		t.Fatalf("expected ErrInactiveUser, got %v", err)
	}
}

func TestCandidateService_GetProfile_AccessRules(t *testing.T) {
	f := newFixture()
	svc := newCandService(f)

	owner := f.addUser("u-owner", domain.RoleCandidate, true)
	f.addCandidateProfile("cand-1", owner.ID)

	// Owner reads their own profile.
	if _, err := svc.GetProfile(context.Background(), owner, "cand-1"); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	// Another candidate is denied.
	other := f.addUser("u-other", domain.RoleCandidate, true)
	f.addCandidateProfile("cand-2", other.ID)
	if _, err := svc.GetProfile(context.Background(), other, "cand-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Consultants, employers and admins may read any profile.
	for _, role := range []domain.Role{domain.RoleConsultant, domain.RoleEmployer, domain.RoleAdmin} {
		u := f.addUser("u-"+string(role), role, true)
		if _, err := svc.GetProfile(context.Background(), u, "cand-1"); err != nil {
			t.Fatalf("role %s read failed: %v", role, err)
		}
	}
}

func TestCandidateService_Search_CandidatesCannotBrowse(t *testing.T) {
	f := newFixture()
	svc := newCandService(f)

	candidate := f.addUser("u-cand", domain.RoleCandidate, true)
	if _, err := svc.Search(context.Background(), candidate, ports.CandidateSearchFilter{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	consultant := f.addUser("u-cons", domain.RoleConsultant, true)
	if _, err := svc.Search(context.Background(), consultant, ports.CandidateSearchFilter{}); err != nil {
		t.Fatalf("consultant search failed: %v", err)
	}
}

func TestCandidateService_StoreCVAndGetCV(t *testing.T) {
	f := newFixture()
	svc := newCandService(f)

	owner := f.addUser("u-owner", domain.RoleCandidate, true)

	// CV without a profile is rejected.
	if _, err := svc.StoreCV(context.Background(), owner, "cv.txt", "text"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	f.addCandidateProfile("cand-1", owner.ID)
	doc, err := svc.StoreCV(context.Background(), owner, "cv.txt", "Go engineer")
	if err != nil {
		t.Fatalf("store cv failed: %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("expected document id")
	}

	profile, err := f.candidates.FindByUserID(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("profile lookup failed: %v", err)
	}
	if profile.CVDocumentID != doc.ID {
		t.Fatalf("expected profile to link cv %s, got %s", doc.ID, profile.CVDocumentID)
	}

	// The CV is guarded by the same rules as the profile.
	stranger := f.addUser("u-other", domain.RoleCandidate, true)
	f.addCandidateProfile("cand-2", stranger.ID)
	if _, err := svc.GetCV(context.Background(), stranger, "cand-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := svc.GetCV(context.Background(), owner, "cand-1")
	if err != nil {
		t.Fatalf("owner get cv failed: %v", err)
	}
	if got.Text != "Go engineer" {
		t.Fatalf("unexpected cv text: %q", got.Text)
	}
}
