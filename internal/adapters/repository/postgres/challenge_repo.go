package postgres

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChallengeRepo struct {
	pool *pgxpool.Pool
}

var _ repository.ChallengeRepository = (*ChallengeRepo)(nil)

func NewChallengeRepo(pool *pgxpool.Pool) *ChallengeRepo {
	return &ChallengeRepo{pool: pool}
}

func (r *ChallengeRepo) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS challenges (
			id TEXT PRIMARY KEY,
			author_id BIGINT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'draft',
			form_data JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_challenges_status_updated ON challenges(status, updated_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_challenges_author ON challenges(author_id);`,
	}

	for _, q := range queries {
		if _, err := r.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

const challengeColumns = `id, author_id, status, form_data, created_at, updated_at`

func (r *ChallengeRepo) Create(ctx context.Context, c schema.Challenge) (schema.Challenge, error) {
	formData, err := json.Marshal(c.FormData)
	if err != nil {
		return schema.Challenge{}, fmt.Errorf("encode form data: %w", err)
	}

	const query = `
	INSERT INTO challenges (id, author_id, status, form_data, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + challengeColumns + `;
	`
	return scanChallenge(r.pool.QueryRow(ctx, query, c.ID, c.AuthorID, c.Status, formData, c.CreatedAt, c.UpdatedAt))
}

func (r *ChallengeRepo) GetByID(ctx context.Context, id string) (schema.Challenge, error) {
	const query = `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1;`
	out, err := scanChallenge(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schema.Challenge{}, errorz.ErrNotFound
		}
		return schema.Challenge{}, err
	}
	return out, nil
}

func (r *ChallengeRepo) List(ctx context.Context, filter repository.ListChallengesFilter) (repository.ListChallengesResult, error) {
	status := filter.Status
	if status == schema.StatusFilterAll {
		status = ""
	}
	offset, limit := filter.Bounds()
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	const where = `WHERE ($1::TEXT = '' OR status = $1::TEXT) AND ($2::BIGINT = 0 OR author_id = $2)`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM challenges `+where+`;`, status, filter.AuthorID).Scan(&total); err != nil {
		return repository.ListChallengesResult{}, err
	}

	query := `
	SELECT ` + challengeColumns + `
	FROM challenges
	` + where + `
	ORDER BY updated_at DESC, id
	LIMIT $3 OFFSET $4;
	`
	rows, err := r.pool.Query(ctx, query, status, filter.AuthorID, limitArg, offset)
	if err != nil {
		return repository.ListChallengesResult{}, err
	}
	defer rows.Close()

	items := make([]schema.Challenge, 0)
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return repository.ListChallengesResult{}, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return repository.ListChallengesResult{}, err
	}

	return repository.ListChallengesResult{Items: items, Total: total}, nil
}

func (r *ChallengeRepo) Update(ctx context.Context, c schema.Challenge) (schema.Challenge, error) {
	formData, err := json.Marshal(c.FormData)
	if err != nil {
		return schema.Challenge{}, fmt.Errorf("encode form data: %w", err)
	}

	const query = `
	UPDATE challenges
	SET status = $1,
		form_data = $2,
		updated_at = $3
	WHERE id = $4
	RETURNING ` + challengeColumns + `;
	`
	out, err := scanChallenge(r.pool.QueryRow(ctx, query, c.Status, formData, c.UpdatedAt, c.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schema.Challenge{}, errorz.ErrNotFound
		}
		return schema.Challenge{}, err
	}
	return out, nil
}

func (r *ChallengeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM challenges WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errorz.ErrNotFound
	}
	return nil
}

func scanChallenge(row pgx.Row) (schema.Challenge, error) {
	var (
		out      schema.Challenge
		formData []byte
	)
	if err := row.Scan(
		&out.ID,
		&out.AuthorID,
		&out.Status,
		&formData,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return schema.Challenge{}, err
	}
	if err := json.Unmarshal(formData, &out.FormData); err != nil {
		return schema.Challenge{}, fmt.Errorf("decode form data of %s: %w", out.ID, err)
	}
	return out, nil
}
