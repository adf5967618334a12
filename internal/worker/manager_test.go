package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingWorker struct {
	*BaseWorker
	started atomic.Bool
	ignore  bool
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	if w.ignore {
		time.Sleep(time.Second)
		return nil
	}
	select {
	case <-w.StopChan():
	case <-ctx.Done():
	}
	return nil
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), 0)
	assert.Error(t, m.Start(context.Background()))
	assert.Equal(t, DefaultShutdownTimeout, m.shutdownTimeout)
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), time.Second)
	w := &blockingWorker{BaseWorker: NewBaseWorker("test", "stream:test", "group", zap.NewNop())}
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	require.Eventually(t, w.started.Load, time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, w.IsStopped())

	// повторная остановка безопасна
	assert.NoError(t, w.Stop())
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), 50*time.Millisecond)
	w := &blockingWorker{BaseWorker: NewBaseWorker("slow", "stream:test", "group", zap.NewNop()), ignore: true}
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	require.Eventually(t, w.started.Load, time.Second, 10*time.Millisecond)

	err := m.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestBaseWorker_Accessors(t *testing.T) {
	w := NewBaseWorker("audit", "stream:admin:events", "admin-audit-workers", zap.NewNop())
	assert.Equal(t, "audit", w.Name())
	assert.Equal(t, "stream:admin:events", w.Stream())
	assert.Equal(t, "admin-audit-workers", w.ConsumerGroup())
	assert.NotEmpty(t, w.ConsumerName())
	assert.False(t, w.IsStopped())
}
