package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamAdminEvents = "stream:admin:events"
)

// AdminResource - ресурс, над которым выполнено действие
type AdminResource string

const (
	ResourceBooking   AdminResource = "booking"
	ResourceLocation  AdminResource = "location"
	ResourceTransport AdminResource = "transport"
)

// AdminAction - тип изменения
type AdminAction string

const (
	ActionCreate AdminAction = "create"
	ActionUpdate AdminAction = "update"
	ActionDelete AdminAction = "delete"
)

// IsValid checks the action against the closed set.
func (a AdminAction) IsValid() bool {
	return a == ActionCreate || a == ActionUpdate || a == ActionDelete
}

// AdminEvent - событие об изменении данных через админку
type AdminEvent struct {
	ID         uuid.UUID     `json:"id"`
	Resource   AdminResource `json:"resource"`
	Action     AdminAction   `json:"action"`
	EntityID   string        `json:"entity_id"`
	SessionID  string        `json:"session_id,omitempty"`
	Fields     []string      `json:"fields,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewAdminEvent создаёт событие с новым ID и текущим временем
func NewAdminEvent(resource AdminResource, action AdminAction, entityID, sessionID string, fields []string) AdminEvent {
	return AdminEvent{
		ID:         uuid.New(),
		Resource:   resource,
		Action:     action,
		EntityID:   entityID,
		SessionID:  sessionID,
		Fields:     fields,
		OccurredAt: time.Now().UTC(),
	}
}

// Validate reports whether the event can be stored in the audit log.
func (e *AdminEvent) Validate() bool {
	return e.ID != uuid.Nil && e.Resource != "" && e.Action.IsValid() && e.EntityID != ""
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// AuditEntry - запись журнала действий администраторов
type AuditEntry struct {
	ID         int64     `json:"id" db:"id"`
	EventID    uuid.UUID `json:"event_id" db:"event_id"`
	Resource   string    `json:"resource" db:"resource"`
	Action     string    `json:"action" db:"action"`
	EntityID   string    `json:"entity_id" db:"entity_id"`
	SessionID  string    `json:"session_id" db:"session_id"`
	Fields     []string  `json:"fields" db:"fields"`
	StreamID   string    `json:"stream_id" db:"stream_id"`
	OccurredAt time.Time `json:"occurred_at" db:"occurred_at"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// AuditEntryFromEvent превращает событие стрима в запись журнала
func AuditEntryFromEvent(e AdminEvent, streamID string) AuditEntry {
	fields := e.Fields
	if fields == nil {
		fields = []string{}
	}
	return AuditEntry{
		EventID:    e.ID,
		Resource:   string(e.Resource),
		Action:     string(e.Action),
		EntityID:   e.EntityID,
		SessionID:  e.SessionID,
		Fields:     fields,
		StreamID:   streamID,
		OccurredAt: e.OccurredAt,
	}
}

// AuditFilter - фильтр выборки журнала
type AuditFilter struct {
	Resource string
	EntityID string
	Limit    int
}
