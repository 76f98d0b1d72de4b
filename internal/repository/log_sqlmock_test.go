package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, "pgx"), mock
}

func TestLogRepositoryRecentQueryShape(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewLogRepository(database)

	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_uuid", "nickname", "date", "entry", "created_at"}).
		AddRow("l1", "u1", "alice", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "had a great walk", created)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY date DESC, created_at DESC`)).
		WithArgs("u1", 5).
		WillReturnRows(rows)

	entries, err := repo.Recent(context.Background(), "u1", 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-01-01", entries[0].Day())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryCreatePropagatesErrors(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewProfileRepository(database)

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (nickname) DO NOTHING`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), newProfileFixture("alice"))
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalsRepositoryUpsertStatement(t *testing.T) {
	database, mock := newMockDB(t)
	repo := NewGoalsRepository(database)

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (user_uuid) DO UPDATE`)).
		WithArgs("u1", "alice", "a", "b", "c", "d", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), goalsFixture("u1", "alice", "a", "b", "c", "d"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
