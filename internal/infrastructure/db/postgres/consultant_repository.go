package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// ConsultantProfileRepository is the pgx-backed consultant profile store.
type ConsultantProfileRepository struct {
	pool *pgxpool.Pool
}

func NewConsultantProfileRepository(pool *pgxpool.Pool) *ConsultantProfileRepository {
	return &ConsultantProfileRepository{pool: pool}
}

const consultantColumns = `id, user_id, specialty, region, created_at, updated_at`

func scanConsultant(row pgx.Row) (*domain.ConsultantProfile, error) {
	var p domain.ConsultantProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Specialty,
		&p.Region,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan consultant profile: %w", err)
	}
	return &p, nil
}

func (r *ConsultantProfileRepository) Upsert(ctx context.Context, profile *domain.ConsultantProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO consultant_profiles (id, user_id, specialty, region)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id) DO UPDATE SET
            specialty = EXCLUDED.specialty,
            region = EXCLUDED.region,
            updated_at = now()
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Specialty,
		profile.Region,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert consultant profile: %w", err)
	}
	return nil
}

func (r *ConsultantProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.ConsultantProfile, error) {
	const query = `SELECT ` + consultantColumns + ` FROM consultant_profiles WHERE user_id = $1`
	return scanConsultant(r.pool.QueryRow(ctx, query, userID))
}

func (r *ConsultantProfileRepository) List(ctx context.Context) ([]*domain.ConsultantProfile, error) {
	const query = `SELECT ` + consultantColumns + ` FROM consultant_profiles ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list consultants: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.ConsultantProfile
	for rows.Next() {
		p, err := scanConsultant(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
