package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/repository"
)

var submissionColumns = []string{"id", "payload", "notification_sent", "confirmation_sent", "created_at"}

func sampleSubmission(t *testing.T) (*model.StoredSubmission, []byte) {
	t.Helper()
	sub := &model.StoredSubmission{
		ID: "0b6b1c8e-3c0e-4a8e-9d55-6f1f9f3f2a10",
		Record: model.SubmissionRecord{
			FirstName: "Jane",
			LastName:  "Roe",
			Email:     "jane@example.org",
			Donation:  50,
		},
		NotificationSent: true,
		ConfirmationSent: false,
		CreatedAt:        time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(sub.Record)
	require.NoError(t, err)
	return sub, payload
}

func TestSubmissionPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	sub, payload := sampleSubmission(t)

	rows := sqlmock.NewRows(submissionColumns).
		AddRow(sub.ID, payload, sub.NotificationSent, sub.ConfirmationSent, sub.CreatedAt)

	mock.ExpectQuery("INSERT INTO seec_submissions").
		WithArgs(sub.ID, payload, true, false, sub.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, sub, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	ctx := context.Background()
	sub, payload := sampleSubmission(t)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM seec_submissions WHERE id = ?").
			WithArgs(sub.ID).
			WillReturnRows(sqlmock.NewRows(submissionColumns).
				AddRow(sub.ID, payload, true, false, sub.CreatedAt))

		got, err := repo.FindByID(ctx, sub.ID)

		require.NoError(t, err)
		assert.Equal(t, "Jane", got.Record.FirstName)
		assert.Equal(t, 50, got.Record.Donation)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM seec_submissions WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM seec_submissions WHERE id = ?").
			WithArgs("bad").
			WillReturnRows(sqlmock.NewRows(submissionColumns).
				AddRow("bad", []byte("{"), false, false, sub.CreatedAt))

		_, err := repo.FindByID(ctx, "bad")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSubmissionPostgres(db)
	sub, payload := sampleSubmission(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM seec_submissions").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM seec_submissions ORDER BY").
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(submissionColumns).
			AddRow(sub.ID, payload, true, false, sub.CreatedAt))

	res, err := repo.List(context.Background(), repository.PageQuery{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, sub.ID, res.Items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
