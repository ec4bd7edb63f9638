package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewPostgres(db)
	ctx := context.Background()
	q := regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(q).WithArgs(KeySiteContent).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{}`)))

		got, err := s.Get(ctx, KeySiteContent)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(got))
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(q).WithArgs(KeySiteContent).WillReturnError(sql.ErrNoRows)

		_, err := s.Get(ctx, KeySiteContent)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(q).WithArgs(KeySiteContent).WillReturnError(errors.New("conn reset"))

		_, err := s.Get(ctx, KeySiteContent)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "conn reset")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SetDelete(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	s := NewPostgres(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_store (key, value, updated_at)`)).
		WithArgs(KeyDonationContent, []byte(`{"a":1}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_store WHERE key = $1`)).
		WithArgs(KeyDonationContent).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_store`)).
		WillReturnError(errors.New("read only"))
	mock.ExpectPing()

	require.NoError(t, s.Set(ctx, KeyDonationContent, []byte(`{"a":1}`)))
	require.NoError(t, s.Delete(ctx, KeyDonationContent))
	err = s.Set(ctx, KeyRecipients, []byte(`[]`))
	assert.ErrorContains(t, err, "upsert kv donationEmailRecipients")
	assert.NoError(t, s.Ping(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
