package audit

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zerolog.Nop())

	d.Dispatch(Event{ActorID: "1", Action: "invoice.archive", EntityID: "42"})
	d.Dispatch(Event{ActorID: "1", Action: "invoice.archive", EntityID: "43"})
	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, "42", sink.events[0].EntityID)
	assert.Equal(t, "43", sink.events[1].EntityID)
}

func TestDispatcher_SinkErrorDoesNotStopWorker(t *testing.T) {
	sink := &recordingSink{err: errors.New("db gone")}
	d := NewDispatcher(sink, zerolog.Nop())

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	assert.Len(t, sink.events, 2)
}

type blockingSink struct {
	release chan struct{}
}

func (s *blockingSink) Log(ev Event) error {
	<-s.release
	return nil
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{})}
	d := NewDispatcher(sink, zerolog.Nop())

	for i := 0; i < 200; i++ {
		d.Dispatch(Event{Action: "flood"})
	}
	assert.LessOrEqual(t, len(d.queue), cap(d.queue))

	close(sink.release)
	d.Close()
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zerolog.Nop())

	d.Dispatch(Event{Action: "before"})
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "after"})
		d.Close()
	})
	require.Len(t, sink.events, 1)
	assert.Equal(t, "before", sink.events[0].Action)
}

func TestDispatcher_ConcurrentDispatchAndClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(Event{Action: "late"})
			}
		}()
	}

	assert.NotPanics(t, d.Close)
	wg.Wait()
}

func TestLogSink_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	require.NoError(t, sink.Log(Event{ActorID: "1", Action: "invoice_viewed", EntityID: "42"}))

	assert.Contains(t, buf.String(), `"action":"invoice_viewed"`)
	assert.Contains(t, buf.String(), `"entity_id":"42"`)
}
