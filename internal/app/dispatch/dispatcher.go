// Package dispatch runs every coordinator event on a single goroutine.
package dispatch

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/takemehome/internal/logging"
)

// DefaultQueueSize bounds the number of pending events.
const DefaultQueueSize = 256

// Task is a unit of work run on the dispatcher goroutine.
type Task func(ctx context.Context)

type job struct {
	name string
	fn   Task
}

// Dispatcher serializes tasks posted from any goroutine onto the goroutine
// running Run. Tasks never overlap, so state they touch needs no locking.
type Dispatcher struct {
	queue     chan job
	coalescer *Coalescer
	stopped   atomic.Bool
	dropped   atomic.Int64

	mu     sync.Mutex
	timers map[*time.Timer]struct{}
}

// New creates a dispatcher with room for size pending tasks.
func New(size int) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	d := &Dispatcher{
		queue:  make(chan job, size),
		timers: make(map[*time.Timer]struct{}),
	}
	d.coalescer = NewCoalescer(d.Post)
	return d
}

// Post enqueues fn without blocking. It reports false when the queue is full
// or the dispatcher has stopped; the task is then dropped.
func (d *Dispatcher) Post(name string, fn Task) bool {
	if fn == nil || d.stopped.Load() {
		return false
	}
	select {
	case d.queue <- job{name: name, fn: fn}:
		return true
	default:
		d.dropped.Add(1)
		return false
	}
}

// AfterFunc posts fn once delay has elapsed. Timers with the same name that
// fire before the first one runs collapse into a single run.
func (d *Dispatcher) AfterFunc(delay time.Duration, name string, fn func(ctx context.Context)) {
	if fn == nil || d.stopped.Load() {
		return
	}

	var timer *time.Timer
	d.mu.Lock()
	timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.timers, timer)
		d.mu.Unlock()
		d.coalescer.Post(name, fn)
	})
	d.timers[timer] = struct{}{}
	d.mu.Unlock()
}

// Dropped returns how many tasks were rejected by a full queue.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Run executes tasks until ctx is cancelled. Pending tasks are discarded.
func (d *Dispatcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Debug().Int("queue_size", cap(d.queue)).Msg("dispatcher started")
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Int("pending", len(d.queue)).Msg("dispatcher stopped")
			return nil
		case j := <-d.queue:
			d.exec(ctx, j)
		}
	}
}

func (d *Dispatcher) exec(ctx context.Context, j job) {
	ctx = logging.WithEvent(ctx, j.name, uuid.NewString())
	log := logging.FromContext(ctx)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("event handler panicked")
		}
	}()

	j.fn(ctx)
	log.Trace().Dur("took", time.Since(start)).Msg("event handled")
}

func (d *Dispatcher) stop() {
	d.stopped.Store(true)
	d.coalescer.Destroy()

	d.mu.Lock()
	for t := range d.timers {
		t.Stop()
	}
	d.timers = map[*time.Timer]struct{}{}
	d.mu.Unlock()
}
