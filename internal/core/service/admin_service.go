package service

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// AdminService implements user administration.
type AdminService struct {
	users ports.UserRepository
}

func NewAdminService(users ports.UserRepository) *AdminService {
	return &AdminService{users: users}
}

func (s *AdminService) ListUsers(ctx context.Context, actor *domain.User, filter ports.ListUsersFilter) (*ports.UserListResult, error) {
	if err := access.RequireActive(actor); err != nil {
		return nil, err
	}
	if err := access.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.UserListResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// DeactivateUser disables an account. Accounts are never hard deleted. An
// admin cannot deactivate themselves, and only a superadmin may deactivate an
// administrative account.
func (s *AdminService) DeactivateUser(ctx context.Context, actor *domain.User, userID string) error {
	if err := access.RequireActive(actor); err != nil {
		return err
	}
	if err := access.RequireRole(actor, domain.RoleAdmin); err != nil {
		return err
	}
	if actor.ID == userID {
		return domain.ErrForbidden
	}

	target, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if target.Role.IsAdmin() {
		if err := access.RequireRole(actor, domain.RoleSuperadmin); err != nil {
			return err
		}
	}

	return s.users.SetActive(ctx, userID, false)
}

func (s *AdminService) ReactivateUser(ctx context.Context, actor *domain.User, userID string) error {
	if err := access.RequireActive(actor); err != nil {
		return err
	}
	if err := access.RequireRole(actor, domain.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.users.SetActive(ctx, userID, true)
}

// ChangeRole reassigns a user's role. Granting or revoking administrative
// roles requires a SUPERADMIN actor.
func (s *AdminService) ChangeRole(ctx context.Context, actor *domain.User, userID string, role domain.Role) error {
	if err := access.RequireActive(actor); err != nil {
		return err
	}
	if err := access.RequireRole(actor, domain.RoleAdmin); err != nil {
		return err
	}
	if !role.Valid() {
		return domain.ErrForbidden
	}

	target, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if role.IsAdmin() || target.Role.IsAdmin() {
		if err := access.RequireRole(actor, domain.RoleSuperadmin); err != nil {
			return err
		}
	}

	return s.users.SetRole(ctx, userID, role)
}
