package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
)

// eventPublisher пишет AdminEvent в stream:admin:events.
// Неудачная публикация не должна ломать мутацию, поэтому ошибка только логируется.
type eventPublisher struct {
	stream repository.StreamRepository
	logger *zap.Logger
}

func newEventPublisher(stream repository.StreamRepository, logger *zap.Logger) *eventPublisher {
	return &eventPublisher{stream: stream, logger: logger}
}

func (p *eventPublisher) publish(ctx context.Context, resource domain.AdminResource, action domain.AdminAction, entityID string, fields []string) {
	if p == nil || p.stream == nil {
		return
	}
	event := domain.NewAdminEvent(resource, action, entityID, SessionFrom(ctx), fields)
	id, err := p.stream.PublishToStream(context.WithoutCancel(ctx), domain.StreamAdminEvents, event)
	if err != nil {
		p.logger.Warn("Failed to publish admin event",
			zap.String("resource", string(resource)),
			zap.String("action", string(action)),
			zap.String("entity_id", entityID),
			zap.Error(err))
		return
	}
	p.logger.Debug("Admin event published",
		zap.String("event_id", event.ID.String()),
		zap.String("stream_id", id))
}
