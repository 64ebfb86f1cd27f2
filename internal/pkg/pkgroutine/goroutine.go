package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// ErrPanic wraps the value recovered from a panicking task.
var ErrPanic = errors.New("pkgroutine: task panicked")

// Manager runs named background tasks with a concurrency limit.
//
// Returned errors and recovered panics are collected and surface from Wait.
type Manager struct {
	mu      sync.Mutex
	errs    []error
	wg      sync.WaitGroup
	sema    chan struct{}
	running atomic.Int64
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go schedules task f under name. It blocks while the manager is at its
// limit and gives up when pCtx is done first.
func (g *Manager) Go(pCtx context.Context, name string, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}:
	case <-pCtx.Done():
		slog.WarnContext(pCtx, "task canceled before start", "task", name, "because", pCtx.Err())
		return
	}

	g.wg.Add(1)
	g.running.Add(1)
	go func() {
		defer g.wg.Done()
		defer g.running.Add(-1)
		defer func() {
			<-g.sema

			if rvr := recover(); rvr != nil {
				slog.ErrorContext(pCtx, "panic occurred in task", "task", name, "stack", string(debug.Stack()))
				g.collect(fmt.Errorf("%w: %s: %v", ErrPanic, name, rvr))
			}
		}()

		select {
		case <-pCtx.Done():
			slog.WarnContext(pCtx, "task canceled", "task", name, "because", pCtx.Err())
		default:
			if err := f(pCtx); err != nil {
				g.collect(fmt.Errorf("%s: %w", name, err))
			}
		}
	}()
}

// Running reports how many tasks have been scheduled and not yet returned.
func (g *Manager) Running() int {
	return int(g.running.Load())
}

// Wait blocks until all scheduled tasks finish and returns any collected errors.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()

	return errors.Join(g.errs...)
}

func (g *Manager) collect(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}
