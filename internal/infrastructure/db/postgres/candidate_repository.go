package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// CandidateProfileRepository is the pgx-backed candidate profile store.
type CandidateProfileRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateProfileRepository(pool *pgxpool.Pool) *CandidateProfileRepository {
	return &CandidateProfileRepository{pool: pool}
}

const candidateColumns = `id, user_id, headline, summary, skills, years_experience, location,
       coalesce(cv_document_id, ''), created_at, updated_at`

func scanCandidate(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Headline,
		&p.Summary,
		&p.Skills,
		&p.YearsExperience,
		&p.Location,
		&p.CVDocumentID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan candidate profile: %w", err)
	}
	return &p, nil
}

func (r *CandidateProfileRepository) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO candidate_profiles (id, user_id, headline, summary, skills, years_experience, location)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id) DO UPDATE SET
            headline = EXCLUDED.headline,
            summary = EXCLUDED.summary,
            skills = EXCLUDED.skills,
            years_experience = EXCLUDED.years_experience,
            location = EXCLUDED.location,
            updated_at = now()
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Headline,
		profile.Summary,
		profile.Skills,
		profile.YearsExperience,
		profile.Location,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert candidate profile: %w", err)
	}
	return nil
}

func (r *CandidateProfileRepository) FindByID(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	const query = `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE id = $1`
	return scanCandidate(r.pool.QueryRow(ctx, query, id))
}

func (r *CandidateProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	const query = `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE user_id = $1`
	return scanCandidate(r.pool.QueryRow(ctx, query, userID))
}

func (r *CandidateProfileRepository) SetCVDocumentID(ctx context.Context, userID, documentID string) error {
	const query = `UPDATE candidate_profiles SET cv_document_id = $1, updated_at = now() WHERE user_id = $2`

	cmd, err := r.pool.Exec(ctx, query, documentID, userID)
	if err != nil {
		return fmt.Errorf("set cv document: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *CandidateProfileRepository) Search(ctx context.Context, filter ports.CandidateSearchFilter) ([]*domain.CandidateProfile, int64, error) {
	where := "true"
	args := []any{}

	if filter.Skill != "" {
		args = append(args, filter.Skill)
		where += fmt.Sprintf(" AND $%d = ANY(skills)", len(args))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		where += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}
	if filter.MinExperience > 0 {
		args = append(args, filter.MinExperience)
		where += fmt.Sprintf(" AND years_experience >= $%d", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM candidate_profiles WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count candidates: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`SELECT %s FROM candidate_profiles WHERE %s ORDER BY updated_at DESC LIMIT $%d OFFSET $%d`,
		candidateColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search candidates: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.CandidateProfile
	for rows.Next() {
		p, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, p)
	}
	return profiles, total, rows.Err()
}
