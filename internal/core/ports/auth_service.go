package ports

import (
	"context"
	"time"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// RegisterInput carries self-registration data. Only operational roles may be
// self-assigned; administrative roles are granted by a superadmin afterwards.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

// TokenPair is the credential set returned on login and refresh.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthService defines registration, login and token refresh.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
