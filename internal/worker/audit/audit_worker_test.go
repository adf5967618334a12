package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
)

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string, count int64) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs ...string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) (string, error) {
	args := m.Called(ctx, stream, data)
	return args.String(0), args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) InsertBatch(ctx context.Context, entries []domain.AuditEntry) (int64, error) {
	args := m.Called(ctx, entries)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func eventMessage(t *testing.T, id string, action domain.AdminAction) domain.StreamMessage {
	t.Helper()
	event := domain.NewAdminEvent(domain.ResourceBooking, action, "b-1", "session-1", []string{"booking_date"})
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func newTestWorker(stream *MockStreamRepository, audit *MockAuditRepository, batchSize int) *AuditWorker {
	return NewAuditWorker(stream, audit, "test-group", batchSize, 50*time.Millisecond, zap.NewNop())
}

func TestAuditWorker_Flush_StoresAndAcks(t *testing.T) {
	streamRepo := new(MockStreamRepository)
	auditRepo := new(MockAuditRepository)
	w := newTestWorker(streamRepo, auditRepo, 10)

	w.Add(eventMessage(t, "1-0", domain.ActionCreate))
	w.Add(eventMessage(t, "2-0", domain.ActionDelete))
	require.Equal(t, 2, w.Pending())

	auditRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(entries []domain.AuditEntry) bool {
		return len(entries) == 2 &&
			entries[0].StreamID == "1-0" && entries[0].Action == "create" &&
			entries[1].StreamID == "2-0" && entries[1].Action == "delete"
	})).Return(int64(2), nil)
	streamRepo.On("AckMessages", mock.Anything, domain.StreamAdminEvents, "test-group", []string{"1-0", "2-0"}).Return(nil)

	require.NoError(t, w.Flush(context.Background()))
	assert.Equal(t, 0, w.Pending())

	auditRepo.AssertExpectations(t)
	streamRepo.AssertExpectations(t)
}

func TestAuditWorker_Flush_Empty(t *testing.T) {
	streamRepo := new(MockStreamRepository)
	auditRepo := new(MockAuditRepository)
	w := newTestWorker(streamRepo, auditRepo, 10)

	require.NoError(t, w.Flush(context.Background()))

	auditRepo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuditWorker_PoisonMessagesAcked(t *testing.T) {
	streamRepo := new(MockStreamRepository)
	auditRepo := new(MockAuditRepository)
	w := newTestWorker(streamRepo, auditRepo, 10)

	w.Add(domain.StreamMessage{ID: "1-0", Data: "not json"})
	w.Add(domain.StreamMessage{ID: "2-0"})
	w.Add(domain.StreamMessage{ID: "3-0", Data: `{"resource":"booking","action":"create"}`})
	assert.Equal(t, 0, w.Pending())

	streamRepo.On("AckMessages", mock.Anything, domain.StreamAdminEvents, "test-group", []string{"1-0", "2-0", "3-0"}).Return(nil)

	require.NoError(t, w.Flush(context.Background()))

	auditRepo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	streamRepo.AssertExpectations(t)
}

func TestAuditWorker_Flush_InsertErrorKeepsBatch(t *testing.T) {
	streamRepo := new(MockStreamRepository)
	auditRepo := new(MockAuditRepository)
	w := newTestWorker(streamRepo, auditRepo, 10)

	w.Add(eventMessage(t, "1-0", domain.ActionUpdate))
	w.Add(domain.StreamMessage{ID: "2-0", Data: "{"})

	auditRepo.On("InsertBatch", mock.Anything, mock.Anything).Return(int64(0), errors.New("connection refused")).Once()
	streamRepo.On("AckMessages", mock.Anything, domain.StreamAdminEvents, "test-group", []string{"2-0"}).Return(nil).Once()

	err := w.Flush(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 1, w.Pending())

	auditRepo.On("InsertBatch", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	streamRepo.On("AckMessages", mock.Anything, domain.StreamAdminEvents, "test-group", []string{"1-0"}).Return(nil).Once()

	require.NoError(t, w.Flush(context.Background()))
	assert.Equal(t, 0, w.Pending())

	auditRepo.AssertExpectations(t)
	streamRepo.AssertExpectations(t)
}

func TestAuditWorker_Start_FlushesOnStop(t *testing.T) {
	streamRepo := new(MockStreamRepository)
	auditRepo := new(MockAuditRepository)
	w := newTestWorker(streamRepo, auditRepo, 10)
	w.flushInterval = time.Hour

	messages := make(chan domain.StreamMessage, 2)
	messages <- eventMessage(t, "1-0", domain.ActionCreate)

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamAdminEvents, "test-group").Return(nil)
	streamRepo.On("ConsumeStream", mock.Anything, domain.StreamAdminEvents, "test-group", w.ConsumerName(), int64(10)).
		Return((<-chan domain.StreamMessage)(messages), nil)

	stored := make(chan struct{})
	auditRepo.On("InsertBatch", mock.Anything, mock.Anything).Return(int64(1), nil).Run(func(mock.Arguments) {
		close(stored)
	})
	streamRepo.On("AckMessages", mock.Anything, domain.StreamAdminEvents, "test-group", []string{"1-0"}).Return(nil)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	require.Eventually(t, func() bool {
		return len(messages) == 0
	}, time.Second, 10*time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	select {
	case <-stored:
	default:
		t.Fatal("batch was not flushed on stop")
	}
	streamRepo.AssertExpectations(t)
}

func TestAuditWorker_Start_FlushesFullBatch(t *testing.T) {
	streamRepo := new(MockStreamRepository)
	auditRepo := new(MockAuditRepository)
	w := newTestWorker(streamRepo, auditRepo, 2)
	w.flushInterval = time.Hour

	messages := make(chan domain.StreamMessage, 2)
	messages <- eventMessage(t, "1-0", domain.ActionCreate)
	messages <- eventMessage(t, "2-0", domain.ActionUpdate)
	close(messages)

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamAdminEvents, "test-group").Return(nil)
	streamRepo.On("ConsumeStream", mock.Anything, domain.StreamAdminEvents, "test-group", w.ConsumerName(), int64(2)).
		Return((<-chan domain.StreamMessage)(messages), nil)
	auditRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(entries []domain.AuditEntry) bool {
		return len(entries) == 2
	})).Return(int64(2), nil).Once()
	streamRepo.On("AckMessages", mock.Anything, domain.StreamAdminEvents, "test-group", []string{"1-0", "2-0"}).Return(nil).Once()

	require.NoError(t, w.Start(context.Background()))

	auditRepo.AssertExpectations(t)
	streamRepo.AssertExpectations(t)
}

func TestAuditWorker_Start_ConsumerGroupError(t *testing.T) {
	streamRepo := new(MockStreamRepository)
	auditRepo := new(MockAuditRepository)
	w := newTestWorker(streamRepo, auditRepo, 10)

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamAdminEvents, "test-group").
		Return(errors.New("NOAUTH"))

	err := w.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consumer group")
	streamRepo.AssertNotCalled(t, "ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
