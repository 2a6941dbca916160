package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// ApplicationRepository is the pgx-backed application store. The pipeline
// history lives in application_events, one row per status change.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `a.id, a.job_id, a.candidate_id, a.status, a.cover_note, a.created_at, a.updated_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.CandidateID,
		&a.Status,
		&a.CoverNote,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertApp = `
        INSERT INTO applications (id, job_id, candidate_id, status, cover_note)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	err = tx.QueryRow(ctx, insertApp,
		app.ID,
		app.JobID,
		app.CandidateID,
		app.Status,
		app.CoverNote,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("insert application: %w", err)
	}

	const insertEvent = `
        INSERT INTO application_events (application_id, status, changed_by, note, created_at)
        VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.Exec(ctx, insertEvent, app.ID, app.Status, app.CandidateID, "", app.CreatedAt); err != nil {
		return fmt.Errorf("insert application event: %w", err)
	}

	app.History = []domain.StatusChange{{
		Status:    app.Status,
		ChangedBy: app.CandidateID,
		Timestamp: app.CreatedAt,
	}}
	return tx.Commit(ctx)
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications a WHERE a.id = $1`

	app, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	history, err := r.loadHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	app.History = history
	return app, nil
}

func (r *ApplicationRepository) loadHistory(ctx context.Context, applicationID string) ([]domain.StatusChange, error) {
	const query = `
        SELECT status, changed_by, note, created_at
        FROM application_events WHERE application_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load application history: %w", err)
	}
	defer rows.Close()

	var history []domain.StatusChange
	for rows.Next() {
		var c domain.StatusChange
		if err := rows.Scan(&c.Status, &c.ChangedBy, &c.Note, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan application event: %w", err)
		}
		history = append(history, c)
	}
	return history, rows.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, change domain.StatusChange) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const update = `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`

	cmd, err := tx.Exec(ctx, update, change.Status, change.Timestamp, id)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}

	const insertEvent = `
        INSERT INTO application_events (application_id, status, changed_by, note, created_at)
        VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.Exec(ctx, insertEvent, id, change.Status, change.ChangedBy, change.Note, change.Timestamp); err != nil {
		return fmt.Errorf("insert application event: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *ApplicationRepository) List(ctx context.Context, filter ports.ListApplicationsFilter) ([]*domain.Application, int64, error) {
	where := []string{"true"}
	args := []any{}
	join := ""

	if filter.JobID != "" {
		args = append(args, filter.JobID)
		where = append(where, fmt.Sprintf("a.job_id = $%d", len(args)))
	}
	if filter.CandidateID != "" {
		args = append(args, filter.CandidateID)
		where = append(where, fmt.Sprintf("a.candidate_id = $%d", len(args)))
	}
	if filter.CompanyID != "" {
		join = " JOIN jobs j ON j.id = a.job_id"
		args = append(args, filter.CompanyID)
		where = append(where, fmt.Sprintf("j.company_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("a.status = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	count := `SELECT count(*) FROM applications a` + join + ` WHERE ` + cond
	if err := r.pool.QueryRow(ctx, count, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`SELECT %s FROM applications a%s WHERE %s ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d`,
		applicationColumns, join, cond, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []*domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, a)
	}
	return apps, total, rows.Err()
}
