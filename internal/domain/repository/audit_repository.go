package repository

import (
	"context"

	"github.com/ecotravel-admin/internal/domain"
)

// AuditRepository - журнал действий администраторов в Postgres
type AuditRepository interface {
	// InsertBatch сохраняет записи, дубликаты по event_id пропускаются
	InsertBatch(ctx context.Context, entries []domain.AuditEntry) (int64, error)

	// List возвращает последние записи по фильтру
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
}
