package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vytor/flashcord/internal/logger"
)

var (
	// ErrNotReady is returned when an operation is submitted before the
	// Discord session has completed discovery.
	ErrNotReady = errors.New("session is not ready")

	// ErrTimeout is returned when an operation does not complete within
	// the bridge timeout. The operation may still finish on the worker;
	// its result is then discarded.
	ErrTimeout = errors.New("operation timed out")
)

// Operation is a unit of work that touches Discord session state. All
// operations execute on the bridge worker, one at a time, in submission
// order.
type Operation func(ctx context.Context) error

// Config holds the configuration for the bridge.
type Config struct {
	// Maximum time a caller waits for an operation to complete.
	Timeout time.Duration

	// Capacity of the pending-operation queue.
	QueueSize int

	// Ready gates submissions; operations are rejected while it
	// returns false.
	Ready func() bool
}

// Bridge marshals calls from concurrent HTTP handlers onto a single
// worker goroutine, so Discord reads and the history-message update are
// naturally serialized without locks.
type Bridge struct {
	tasks   chan *task
	timeout time.Duration
	ready   func() bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	log     *logger.Logger
}

type task struct {
	name string
	op   Operation
	// Buffered so the worker never blocks handing back a result the
	// caller stopped waiting for.
	done chan error
}

// New creates a bridge with the given config, applying defaults for
// missing values.
func New(cfg *Config) *Bridge {
	if cfg == nil {
		cfg = &Config{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Bridge{
		tasks:   make(chan *task, queueSize),
		timeout: timeout,
		ready:   cfg.Ready,
		log:     logger.Default().WithPrefix("bridge"),
	}
}

// Start launches the worker goroutine.
func (b *Bridge) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.wg.Add(1)
	go b.run(ctx)
	b.log.Info("bridge worker started, timeout=%s", b.timeout)
}

// Stop shuts the worker down after draining queued operations.
func (b *Bridge) Stop() {
	b.log.Info("stopping bridge")
	if b.cancel != nil {
		b.cancel()
	}
	close(b.tasks)
	b.wg.Wait()
	b.log.Info("bridge stopped")
}

// Submit schedules op on the worker and blocks until it completes, the
// bridge timeout elapses, or ctx is cancelled. Submissions while the
// readiness gate is down fail immediately with ErrNotReady.
func (b *Bridge) Submit(ctx context.Context, name string, op Operation) error {
	if b.ready != nil && !b.ready() {
		return ErrNotReady
	}

	t := &task{name: name, op: op, done: make(chan error, 1)}
	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case b.tasks <- t:
	case <-timer.C:
		return ErrTimeout
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.done:
		return err
	case <-timer.C:
		b.log.Warn("operation %s exceeded %s, abandoning wait", name, b.timeout)
		return ErrTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bridge) run(ctx context.Context) {
	defer b.wg.Done()
	b.log.Debug("worker started")

	for {
		select {
		case <-ctx.Done():
			b.log.Debug("worker shutting down (context cancelled)")
			return
		case t := <-b.tasks:
			if t == nil {
				b.log.Debug("worker shutting down (queue closed)")
				return
			}

			start := time.Now()
			err := b.runTask(ctx, t)
			if err != nil {
				b.log.Error("operation %s failed after %v: %v", t.name, time.Since(start), err)
			} else {
				b.log.Debug("operation %s completed in %v", t.name, time.Since(start))
			}
			t.done <- err
		}
	}
}

func (b *Bridge) runTask(ctx context.Context, t *task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation %s panicked: %v", t.name, r)
		}
	}()
	return t.op(ctx)
}
