package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// EmployerProfileRepository links employer users to the company they act for.
type EmployerProfileRepository struct {
	pool *pgxpool.Pool
}

func NewEmployerProfileRepository(pool *pgxpool.Pool) *EmployerProfileRepository {
	return &EmployerProfileRepository{pool: pool}
}

func (r *EmployerProfileRepository) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO employer_profiles (id, user_id, company_id, position)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.UserID,
		profile.CompanyID,
		profile.Position,
	).Scan(&profile.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert employer profile: %w", err)
	}
	return nil
}

// FindByUserID returns every company link for the user. An employer may act
// for more than one company.
func (r *EmployerProfileRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.EmployerProfile, error) {
	const query = `
        SELECT id, user_id, company_id, position, created_at
        FROM employer_profiles WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("find employer profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.EmployerProfile
	for rows.Next() {
		var p domain.EmployerProfile
		if err := rows.Scan(&p.ID, &p.UserID, &p.CompanyID, &p.Position, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employer profile: %w", err)
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

func (r *EmployerProfileRepository) Exists(ctx context.Context, userID, companyID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM employer_profiles WHERE user_id = $1 AND company_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, companyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("employer link exists: %w", err)
	}
	return exists, nil
}
