package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
)

// auditSchema совпадает с migrations/000001_admin_audit_log.up.sql
const auditSchema = `
CREATE TABLE IF NOT EXISTS admin_audit_log (
    id          BIGSERIAL PRIMARY KEY,
    event_id    UUID        NOT NULL UNIQUE,
    resource    TEXT        NOT NULL,
    action      TEXT        NOT NULL,
    entity_id   TEXT        NOT NULL,
    session_id  TEXT        NOT NULL DEFAULT '',
    fields      TEXT[]      NOT NULL DEFAULT '{}',
    stream_id   TEXT        NOT NULL DEFAULT '',
    occurred_at TIMESTAMPTZ NOT NULL,
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_admin_audit_log_resource_entity ON admin_audit_log (resource, entity_id);
CREATE INDEX IF NOT EXISTS idx_admin_audit_log_occurred_at ON admin_audit_log (occurred_at DESC)`

const insertAuditQuery = `
INSERT INTO admin_audit_log (event_id, resource, action, entity_id, session_id, fields, stream_id, occurred_at)
VALUES (:event_id, :resource, :action, :entity_id, :session_id, :fields, :stream_id, :occurred_at)
ON CONFLICT (event_id) DO NOTHING`

const selectAuditQuery = `
SELECT id, event_id, resource, action, entity_id, session_id, fields, stream_id, occurred_at, recorded_at
FROM admin_audit_log`

// auditRow - строка admin_audit_log, text[] читается и пишется через pq.StringArray
type auditRow struct {
	ID         int64          `db:"id"`
	EventID    uuid.UUID      `db:"event_id"`
	Resource   string         `db:"resource"`
	Action     string         `db:"action"`
	EntityID   string         `db:"entity_id"`
	SessionID  string         `db:"session_id"`
	Fields     pq.StringArray `db:"fields"`
	StreamID   string         `db:"stream_id"`
	OccurredAt time.Time      `db:"occurred_at"`
	RecordedAt time.Time      `db:"recorded_at"`
}

func toAuditRow(e domain.AuditEntry) auditRow {
	fields := e.Fields
	if fields == nil {
		fields = []string{}
	}
	return auditRow{
		EventID:    e.EventID,
		Resource:   e.Resource,
		Action:     e.Action,
		EntityID:   e.EntityID,
		SessionID:  e.SessionID,
		Fields:     pq.StringArray(fields),
		StreamID:   e.StreamID,
		OccurredAt: e.OccurredAt,
	}
}

func (r auditRow) toDomain() domain.AuditEntry {
	fields := []string(r.Fields)
	if fields == nil {
		fields = []string{}
	}
	return domain.AuditEntry{
		ID:         r.ID,
		EventID:    r.EventID,
		Resource:   r.Resource,
		Action:     r.Action,
		EntityID:   r.EntityID,
		SessionID:  r.SessionID,
		Fields:     fields,
		StreamID:   r.StreamID,
		OccurredAt: r.OccurredAt,
		RecordedAt: r.RecordedAt,
	}
}

type auditRepository struct {
	db *DB
}

// NewAuditRepository создаёт репозиторий журнала действий
func NewAuditRepository(db *DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// EnsureSchema создаёт таблицу журнала, если её нет
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, auditSchema); err != nil {
		return fmt.Errorf("failed to ensure audit schema: %w", err)
	}
	return nil
}

// InsertBatch сохраняет записи одной транзакцией, повторные event_id пропускаются
func (r *auditRepository) InsertBatch(ctx context.Context, entries []domain.AuditEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin audit transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareNamedContext(ctx, insertAuditQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare audit insert: %w", err)
	}
	defer stmt.Close()

	var inserted int64
	for _, e := range entries {
		res, err := stmt.ExecContext(ctx, toAuditRow(e))
		if err != nil {
			return 0, fmt.Errorf("failed to insert audit entry %s: %w", e.EventID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read affected rows: %w", err)
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit audit entries: %w", err)
	}

	r.db.logger.Debug("Audit entries stored",
		zap.Int("batch", len(entries)),
		zap.Int64("inserted", inserted))
	return inserted, nil
}

// List возвращает записи от новых к старым
func (r *auditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Resource != "" {
		args = append(args, filter.Resource)
		conds = append(conds, fmt.Sprintf("resource = $%d", len(args)))
	}
	if filter.EntityID != "" {
		args = append(args, filter.EntityID)
		conds = append(conds, fmt.Sprintf("entity_id = $%d", len(args)))
	}

	query := selectAuditQuery
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf("\nORDER BY occurred_at DESC, id DESC\nLIMIT $%d", len(args))

	var rows []auditRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]domain.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}
