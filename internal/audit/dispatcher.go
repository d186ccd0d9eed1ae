package audit

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata map[string]any
}

// Dispatcher hands events to a single background worker so a slow sink never
// delays the request that produced them.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		d.logger.Log(context.Background(), ev)
	}
}

// Dispatch never blocks: when the queue is full or the dispatcher is closed
// the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.base.Warn("audit dispatcher closed, dropping event", "action", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.base.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drains pending events. Later calls to Dispatch are dropped.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Discard is a dispatcher for tests and tools that don't care about audit.
func Discard() *Dispatcher {
	return NewDispatcher(New(slog.New(slog.NewTextHandler(io.Discard, nil))))
}
