// Package page tracks the state of admin pages per session. Each (session,
// page) pair has one controller; a new operation cancels the one in flight and
// a superseded operation never writes the page state.
package page

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
)

var now = time.Now

// Controller - состояние одной страницы одной сессии
type Controller struct {
	mu       sync.Mutex
	state    domain.PageState
	seq      uint64
	cancel   context.CancelFunc
	lastUsed time.Time
}

func newController(session, page string) *Controller {
	created := now()
	return &Controller{
		state: domain.PageState{
			SessionID: session,
			Page:      page,
			Status:    domain.PageStatusIdle,
			UpdatedAt: created,
		},
		lastUsed: created,
	}
}

func (c *Controller) touch() {
	c.mu.Lock()
	c.lastUsed = now()
	c.mu.Unlock()
}

// State returns a snapshot of the page state.
func (c *Controller) State() domain.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) begin(ctx context.Context, operation string) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	opCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	started := now()
	c.state.Operation = operation
	c.state.Status = domain.PageStatusLoading
	c.state.Message = ""
	c.state.StartedAt = &started
	c.state.FinishedAt = nil
	c.state.UpdatedAt = started
	c.lastUsed = started

	return opCtx, c.seq
}

// finish записывает результат, если операция всё ещё последняя
func (c *Controller) finish(seq uint64, message string, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return false
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	finished := now()
	c.state.FinishedAt = &finished
	c.state.UpdatedAt = finished
	c.lastUsed = finished
	if err != nil {
		c.state.Status = domain.PageStatusError
		c.state.Message = apperrors.UserMessage(err)
	} else {
		c.state.Status = domain.PageStatusSuccess
		c.state.Message = message
	}
	return true
}

func (c *Controller) evictable(before time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Status != domain.PageStatusLoading && c.lastUsed.Before(before)
}

// Run executes fn as the page's current operation. Starting it cancels the
// previous operation of the same page. When fn's operation has been superseded
// by the time it returns, the page state is left alone and a failure is
// reported as OPERATION_SUPERSEDED.
func Run[T any](ctx context.Context, c *Controller, operation string, fn func(ctx context.Context) (T, string, error)) (T, error) {
	opCtx, seq := c.begin(ctx, operation)

	res, message, err := fn(opCtx)

	if !c.finish(seq, message, err) && err != nil {
		return res, apperrors.ErrOperationSuperseded.Wrap(err)
	}
	return res, err
}

type key struct {
	session string
	page    string
}

// Registry - контроллеры страниц по (session, page)
type Registry struct {
	mu          sync.Mutex
	controllers map[key]*Controller
	ttl         time.Duration
	logger      *zap.Logger
}

// NewRegistry создает реестр; контроллеры без активности дольше ttl удаляются Sweep
func NewRegistry(ttl time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		controllers: make(map[key]*Controller),
		ttl:         ttl,
		logger:      logger,
	}
}

// Controller returns the controller of the page, creating it on first use.
// The controller is marked as used under the registry lock, so a concurrent
// Sweep cannot evict it before the caller starts an operation.
func (r *Registry) Controller(session, page string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{session: session, page: page}
	c, ok := r.controllers[k]
	if !ok {
		c = newController(session, page)
		r.controllers[k] = c
		return c
	}
	c.touch()
	return c
}

// States возвращает состояния страниц сессии, пустая сессия - всех сессий
func (r *Registry) States(session string) []domain.PageState {
	r.mu.Lock()
	controllers := make([]*Controller, 0, len(r.controllers))
	for k, c := range r.controllers {
		if session == "" || k.session == session {
			controllers = append(controllers, c)
		}
	}
	r.mu.Unlock()

	states := make([]domain.PageState, 0, len(controllers))
	for _, c := range controllers {
		states = append(states, c.State())
	}
	sort.Slice(states, func(i, j int) bool {
		if states[i].SessionID != states[j].SessionID {
			return states[i].SessionID < states[j].SessionID
		}
		return states[i].Page < states[j].Page
	})
	return states
}

// Len returns the number of tracked pages.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.controllers)
}

// Sweep удаляет неактивные контроллеры, возвращает число удалённых
func (r *Registry) Sweep() int {
	before := now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for k, c := range r.controllers {
		if c.evictable(before) {
			delete(r.controllers, k)
			removed++
		}
	}
	return removed
}

// StartJanitor периодически вызывает Sweep до отмены контекста
func (r *Registry) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				r.logger.Debug("Evicted idle page controllers",
					zap.Int("removed", removed),
					zap.Int("remaining", r.Len()))
			}
		}
	}
}
