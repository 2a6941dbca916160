package ports

import (
	"context"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// ListUsersFilter carries the admin user-listing parameters.
type ListUsersFilter struct {
	Role   domain.Role // optional
	Active *bool       // optional tri-state
	Search string      // optional partial match on email or full name
	Page   int         // 1-based
	Limit  int         // capped by the service
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetActive flips the account flag; returns domain.ErrUserNotFound when absent.
	SetActive(ctx context.Context, id string, active bool) error
	SetRole(ctx context.Context, id string, role domain.Role) error
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
