package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/worker"
)

const (
	defaultBatchSize     = 50
	defaultFlushInterval = 2 * time.Second
	retryDelay           = time.Second
	finalFlushTimeout    = 5 * time.Second
)

// AuditWorker переносит события из stream:admin:events в журнал Postgres
type AuditWorker struct {
	*worker.BaseWorker
	streamRepo    repository.StreamRepository
	auditRepo     repository.AuditRepository
	batchSize     int
	flushInterval time.Duration

	entries []domain.AuditEntry
	ids     []string
	// битые сообщения подтверждаются вместе со следующим flush
	poison []string
}

// NewAuditWorker создает новый AuditWorker
func NewAuditWorker(
	streamRepo repository.StreamRepository,
	auditRepo repository.AuditRepository,
	consumerGroup string,
	batchSize int,
	flushInterval time.Duration,
	logger *zap.Logger,
) *AuditWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if flushInterval <= 0 {
		flushInterval = defaultFlushInterval
	}
	return &AuditWorker{
		BaseWorker:    worker.NewBaseWorker("admin-audit", domain.StreamAdminEvents, consumerGroup, logger),
		streamRepo:    streamRepo,
		auditRepo:     auditRepo,
		batchSize:     batchSize,
		flushInterval: flushInterval,
	}
}

// Start читает стрим до Stop или отмены ctx
func (w *AuditWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AuditWorker",
		zap.String("stream", w.Stream()),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.StopChan():
			cancel()
		case <-ctx.Done():
		}
	}()

	messages, err := w.streamRepo.ConsumeStream(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), int64(w.batchSize))
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	for {
		// полный батч пишем до чтения следующих сообщений
		if len(w.entries) >= w.batchSize {
			if err := w.Flush(ctx); err != nil {
				logger.Error("Failed to flush audit batch", zap.Error(err))
				w.sleep(ctx, retryDelay)
				continue
			}
		}

		select {
		case <-ctx.Done():
			w.finalFlush()
			logger.Info("Worker stopped")
			return nil

		case msg, ok := <-messages:
			if !ok {
				w.finalFlush()
				logger.Info("Stream closed")
				return nil
			}
			w.Add(msg)

		case <-ticker.C:
			if err := w.Flush(ctx); err != nil {
				logger.Error("Failed to flush audit batch", zap.Error(err))
			}
		}
	}
}

// Add разбирает сообщение и кладёт его в текущий батч
func (w *AuditWorker) Add(msg domain.StreamMessage) {
	event, err := parseEvent(msg)
	if err != nil {
		w.Logger().Warn("Failed to parse admin event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.poison = append(w.poison, msg.ID)
		return
	}
	w.entries = append(w.entries, domain.AuditEntryFromEvent(event, msg.ID))
	w.ids = append(w.ids, msg.ID)
}

// Pending возвращает число событий, ждущих записи
func (w *AuditWorker) Pending() int {
	return len(w.entries)
}

// Flush пишет батч в Postgres и подтверждает сообщения.
// При ошибке записи батч остаётся для повторной попытки.
func (w *AuditWorker) Flush(ctx context.Context) error {
	if len(w.entries) == 0 && len(w.poison) == 0 {
		return nil
	}

	if len(w.entries) > 0 {
		inserted, err := w.auditRepo.InsertBatch(ctx, w.entries)
		if err != nil {
			w.ack(ctx, w.poison)
			w.poison = nil
			return fmt.Errorf("failed to store audit batch: %w", err)
		}
		w.Logger().Info("Audit batch stored",
			zap.Int("batch", len(w.entries)),
			zap.Int64("inserted", inserted))
	}

	ids := make([]string, 0, len(w.ids)+len(w.poison))
	ids = append(ids, w.ids...)
	ids = append(ids, w.poison...)
	w.ack(ctx, ids)

	w.entries = nil
	w.ids = nil
	w.poison = nil
	return nil
}

// ack не возвращает ошибку: неподтверждённые сообщения остаются в PEL,
// а повторная вставка тех же event_id игнорируется
func (w *AuditWorker) ack(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	if err := w.streamRepo.AckMessages(ctx, w.Stream(), w.ConsumerGroup(), ids...); err != nil {
		w.Logger().Error("Failed to ack messages", zap.Int("count", len(ids)), zap.Error(err))
	}
}

func (w *AuditWorker) finalFlush() {
	ctx, cancel := context.WithTimeout(context.Background(), finalFlushTimeout)
	defer cancel()
	if err := w.Flush(ctx); err != nil {
		w.Logger().Error("Failed to flush audit batch on shutdown",
			zap.Int("pending", len(w.entries)),
			zap.Error(err))
	}
}

func (w *AuditWorker) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

func parseEvent(msg domain.StreamMessage) (domain.AdminEvent, error) {
	var event domain.AdminEvent
	if msg.Data == "" {
		return event, fmt.Errorf("message has no data")
	}
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return event, fmt.Errorf("invalid event json: %w", err)
	}
	if !event.Validate() {
		return event, fmt.Errorf("event %s is incomplete", event.ID)
	}
	return event, nil
}
