package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/repository"
)

// SubmissionPostgres is a PostgreSQL implementation of repository.SubmissionRepository.
// The contributor form is stored as a jsonb payload so schema changes to the
// form do not require migrations.
type SubmissionPostgres struct {
	db *sql.DB
}

// NewSubmissionPostgres creates a new SubmissionPostgres repository.
func NewSubmissionPostgres(db *sql.DB) *SubmissionPostgres {
	return &SubmissionPostgres{db: db}
}

var _ repository.SubmissionRepository = (*SubmissionPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*model.StoredSubmission, error) {
	var (
		out     model.StoredSubmission
		payload []byte
	)
	if err := row.Scan(
		&out.ID,
		&payload,
		&out.NotificationSent,
		&out.ConfirmationSent,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &out.Record); err != nil {
		return nil, fmt.Errorf("decode submission %s: %w", out.ID, err)
	}
	return &out, nil
}

// Create inserts a new submission row and returns the stored record.
func (r *SubmissionPostgres) Create(ctx context.Context, sub *model.StoredSubmission) (*model.StoredSubmission, error) {
	payload, err := json.Marshal(sub.Record)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}
	const q = `
		INSERT INTO seec_submissions (id, payload, notification_sent, confirmation_sent, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, payload, notification_sent, confirmation_sent, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		sub.ID,
		payload,
		sub.NotificationSent,
		sub.ConfirmationSent,
		sub.CreatedAt,
	)
	return scanSubmission(row)
}

// FindByID fetches a single submission by its ID.
func (r *SubmissionPostgres) FindByID(ctx context.Context, id string) (*model.StoredSubmission, error) {
	const q = `
		SELECT id, payload, notification_sent, confirmation_sent, created_at
		FROM seec_submissions
		WHERE id = $1
	`
	out, err := scanSubmission(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return out, err
}

// List returns submissions using LIMIT/OFFSET pagination and a total count.
func (r *SubmissionPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.StoredSubmission], error) {
	pq = pq.Normalize()

	const qCount = `SELECT COUNT(*) FROM seec_submissions`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, payload, notification_sent, confirmation_sent, created_at
		FROM seec_submissions
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StoredSubmission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.StoredSubmission]{
		Items: items,
		Total: total,
	}, nil
}
