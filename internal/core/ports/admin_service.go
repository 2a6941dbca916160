package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// UserListResult is a page of user accounts.
type UserListResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminService defines user administration. Granting ADMIN or SUPERADMIN
// requires a SUPERADMIN actor.
type AdminService interface {
	ListUsers(ctx context.Context, actor *domain.User, filter ListUsersFilter) (*UserListResult, error)
	DeactivateUser(ctx context.Context, actor *domain.User, userID string) error
	ReactivateUser(ctx context.Context, actor *domain.User, userID string) error
	ChangeRole(ctx context.Context, actor *domain.User, userID string, role domain.Role) error
}
