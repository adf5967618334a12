package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/repository/postgres"
)

func newMockRepository(t *testing.T) (repository.AuditRepository, *postgres.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := postgres.NewDBForTest(sqlx.NewDb(mockDB, "pgx"), zap.NewNop())
	return postgres.NewAuditRepository(db), db, mock
}

func sampleEntry(entityID string) domain.AuditEntry {
	event := domain.NewAdminEvent(domain.ResourceBooking, domain.ActionCreate, entityID, "sess-1", []string{"tourist_id"})
	return domain.AuditEntryFromEvent(event, "1700000000000-0")
}

func TestAuditRepository_InsertBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts in one transaction", func(t *testing.T) {
		repo, _, mock := newMockRepository(t)
		first, second := sampleEntry("B-1"), sampleEntry("B-2")

		mock.ExpectBegin()
		prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO admin_audit_log"))
		prep.ExpectExec().
			WithArgs(first.EventID.String(), "booking", "create", "B-1", "sess-1", sqlmock.AnyArg(), "1700000000000-0", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		// дубликат по event_id
		prep.ExpectExec().
			WithArgs(second.EventID.String(), "booking", "create", "B-2", "sess-1", sqlmock.AnyArg(), "1700000000000-0", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		n, err := repo.InsertBatch(ctx, []domain.AuditEntry{first, second})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		repo, _, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO admin_audit_log")).
			ExpectExec().
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, err := repo.InsertBatch(ctx, []domain.AuditEntry{sampleEntry("B-1")})
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch", func(t *testing.T) {
		repo, _, mock := newMockRepository(t)

		n, err := repo.InsertBatch(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuditRepository_List(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	occurred := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	columns := []string{"id", "event_id", "resource", "action", "entity_id", "session_id", "fields", "stream_id", "occurred_at", "recorded_at"}

	t.Run("with filter", func(t *testing.T) {
		repo, _, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE resource = $1 AND entity_id = $2 ORDER BY occurred_at DESC, id DESC LIMIT $3")).
			WithArgs("booking", "B-1", 20).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(7, eventID.String(), "booking", "update", "B-1", "sess-1", "{booking_date,status}", "1-0", occurred, occurred))

		entries, err := repo.List(ctx, domain.AuditFilter{Resource: "booking", EntityID: "B-1", Limit: 20})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(7), entries[0].ID)
		assert.Equal(t, eventID, entries[0].EventID)
		assert.Equal(t, []string{"booking_date", "status"}, entries[0].Fields)
		assert.Equal(t, occurred, entries[0].OccurredAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without filter", func(t *testing.T) {
		repo, _, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM admin_audit_log ORDER BY occurred_at DESC, id DESC LIMIT $1")).
			WithArgs(50).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, eventID.String(), "transport", "delete", "BIKE-1", "", "{}", "2-0", occurred, occurred))

		entries, err := repo.List(ctx, domain.AuditFilter{Limit: 50})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, []string{}, entries[0].Fields)
	})
}

func TestDB_EnsureSchema(t *testing.T) {
	_, db, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS admin_audit_log")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
