package repository

import (
	"context"

	"github.com/bwdtc/bridgewater-dems/internal/model"
)

// SubmissionRepository archives SEEC contributor forms. Strictly persistence.
type SubmissionRepository interface {
	// Create inserts a submission and returns the stored row.
	Create(ctx context.Context, sub *model.StoredSubmission) (*model.StoredSubmission, error)

	// FindByID returns ErrNotFound when no row matches.
	FindByID(ctx context.Context, id string) (*model.StoredSubmission, error)

	// List returns newest first together with the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.StoredSubmission], error)
}
