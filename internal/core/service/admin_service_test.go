package service

import (
	"context"
	"errors"
	"testing"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

func TestAdminService_ListUsers_AdminOnly(t *testing.T) {
	f := newFixture()
	svc := NewAdminService(f.users)

	f.addUser("u-1", domain.RoleCandidate, true)
	admin := f.addUser("u-admin", domain.RoleAdmin, true)
	super := f.addUser("u-super", domain.RoleSuperadmin, true)

	if _, err := svc.ListUsers(context.Background(), admin, ports.ListUsersFilter{}); err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	// SUPERADMIN satisfies ADMIN under the hierarchy.
	if _, err := svc.ListUsers(context.Background(), super, ports.ListUsersFilter{}); err != nil {
		t.Fatalf("superadmin list failed: %v", err)
	}

	candidate, _ := f.users.FindByID(context.Background(), "u-1")
	if _, err := svc.ListUsers(context.Background(), candidate, ports.ListUsersFilter{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAdminService_DeactivateUser(t *testing.T) {
	f := newFixture()
	svc := NewAdminService(f.users)

	admin := f.addUser("u-admin", domain.RoleAdmin, true)
	target := f.addUser("u-cand", domain.RoleCandidate, true)

	if err := svc.DeactivateUser(context.Background(), admin, target.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	stored, _ := f.users.FindByID(context.Background(), target.ID)
	if stored.Active {
		t.Fatalf("expected target inactive")
	}

	if err := svc.ReactivateUser(context.Background(), admin, target.ID); err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}
	stored, _ = f.users.FindByID(context.Background(), target.ID)
	if !stored.Active {
		t.Fatalf("expected target active again")
	}
}

func TestAdminService_DeactivateUser_SelfDenied(t *testing.T) {
	f := newFixture()
	svc := NewAdminService(f.users)

	admin := f.addUser("u-admin", domain.RoleAdmin, true)
	if err := svc.DeactivateUser(context.Background(), admin, admin.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for self-deactivation, got %v", err)
	}
}

func TestAdminService_DeactivateAdmin_RequiresSuperadmin(t *testing.T) {
	f := newFixture()
	svc := NewAdminService(f.users)

	admin := f.addUser("u-admin", domain.RoleAdmin, true)
	otherAdmin := f.addUser("u-admin2", domain.RoleAdmin, true)
	super := f.addUser("u-super", domain.RoleSuperadmin, true)

	if err := svc.DeactivateUser(context.Background(), admin, otherAdmin.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin deactivating admin: expected ErrForbidden, got %v", err)
	}
	if err := svc.DeactivateUser(context.Background(), super, otherAdmin.ID); err != nil {
		t.Fatalf("superadmin deactivating admin failed: %v", err)
	}
}

func TestAdminService_ChangeRole(t *testing.T) {
	f := newFixture()
	svc := NewAdminService(f.users)

	admin := f.addUser("u-admin", domain.RoleAdmin, true)
	super := f.addUser("u-super", domain.RoleSuperadmin, true)
	target := f.addUser("u-cand", domain.RoleCandidate, true)

	// Operational role changes are plain admin work.
	if err := svc.ChangeRole(context.Background(), admin, target.ID, domain.RoleConsultant); err != nil {
		t.Fatalf("change role failed: %v", err)
	}
	stored, _ := f.users.FindByID(context.Background(), target.ID)
	if stored.Role != domain.RoleConsultant {
		t.Fatalf("expected consultant, got %s", stored.Role)
	}

	// Granting ADMIN requires SUPERADMIN.
	if err := svc.ChangeRole(context.Background(), admin, target.ID, domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden granting admin, got %v", err)
	}
	if err := svc.ChangeRole(context.Background(), super, target.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("superadmin grant failed: %v", err)
	}

	// Demoting an admin also requires SUPERADMIN.
	if err := svc.ChangeRole(context.Background(), admin, target.ID, domain.RoleCandidate); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden demoting admin, got %v", err)
	}

	// Unknown roles are rejected.
	if err := svc.ChangeRole(context.Background(), super, target.ID, domain.Role("WIZARD")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for unknown role, got %v", err)
	}
}
