package audit

import (
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	ActorID   string
	RequestID string
	Action    string
	Entity    string
	EntityID  string
	Metadata  any
}

type Sink interface {
	Log(ev Event) error
}

// Dispatcher writes audit events on a background worker so a slow database
// never holds up a request.
type Dispatcher struct {
	sink  Sink
	queue chan Event
	done  chan struct{}
	log   zerolog.Logger

	// mu guards closed so no send races the close of queue.
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
		log:   log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch enqueues ev. When the queue is full, or the dispatcher is
// closed, the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn().Str("action", ev.Action).Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for queued ones to be written.
// It is safe to call more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
