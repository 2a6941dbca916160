package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// Directory implements ports.PrincipalDirectory on top of the pgx repositories.
// It is the only read-side the access-control layer sees.
type Directory struct {
	users      *UserRepository
	candidates *CandidateProfileRepository
	employers  *EmployerProfileRepository
}

func NewDirectory(pool *pgxpool.Pool) *Directory {
	return &Directory{
		users:      NewUserRepository(pool),
		candidates: NewCandidateProfileRepository(pool),
		employers:  NewEmployerProfileRepository(pool),
	}
}

func (d *Directory) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	return d.users.FindByID(ctx, id)
}

func (d *Directory) FindCandidateProfileByID(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	return d.candidates.FindByID(ctx, id)
}

func (d *Directory) HasEmployerLink(ctx context.Context, userID, companyID string) (bool, error) {
	return d.employers.Exists(ctx, userID, companyID)
}
