package progress

// Package progress aggregates per-task and overall download progress. Workers
// publish events keyed by task URL; a single consumer goroutine owns the
// registry and drives the display callback, decoupling workers from rendering.

import (
	"sync"
)

// EventStatus tags a progress event
type EventStatus string

const (
	// StatusDownloading carries byte counters for a transfer in flight
	StatusDownloading EventStatus = "downloading"

	// StatusFinished marks a task that reached a terminal state
	StatusFinished EventStatus = "finished"
)

// Event is one progress update for a task
type Event struct {
	URL        string
	Status     EventStatus
	BytesDone  int64
	BytesTotal int64 // total or estimate; <= 0 means unknown
}

// Snapshot is the live view handed to the display layer after each update
type Snapshot struct {
	URL       string
	Percent   float64
	Completed int
	Total     int
}

const eventBufferSize = 128

// Tracker consumes progress events and maintains per-task percentages plus a
// completed-out-of-total counter. Safe for concurrent publishers.
type Tracker struct {
	sendMu sync.Mutex
	closed bool
	events chan Event
	done   chan struct{}

	stateMu   sync.Mutex
	percents  map[string]float64
	finished  map[string]bool
	completed int
	total     int

	onUpdate func(Snapshot)
}

// NewTracker registers every URL at zero percent and starts the consumer.
// onUpdate may be nil when no display is attached.
func NewTracker(urls []string, onUpdate func(Snapshot)) *Tracker {
	t := &Tracker{
		events:   make(chan Event, eventBufferSize),
		done:     make(chan struct{}),
		percents: make(map[string]float64, len(urls)),
		finished: make(map[string]bool, len(urls)),
		total:    len(urls),
		onUpdate: onUpdate,
	}
	for _, url := range urls {
		t.percents[url] = 0
	}

	go t.consume()
	return t
}

// Publish submits an event. Events published after Close are dropped.
func (t *Tracker) Publish(e Event) {
	t.sendMu.Lock()
	defer t.sendMu.Unlock()
	if t.closed {
		return
	}
	t.events <- e
}

// Percent returns the current percentage for a task URL
func (t *Tracker) Percent(url string) float64 {
	t.stateMu.Lock()
	defer t.stateMu.Unlock()
	return t.percents[url]
}

// Completed returns how many tasks reached a terminal state out of the total
func (t *Tracker) Completed() (completed, total int) {
	t.stateMu.Lock()
	defer t.stateMu.Unlock()
	return t.completed, t.total
}

// Close finalizes the tracker: no further events are accepted, and it blocks
// until the consumer has drained everything already published.
func (t *Tracker) Close() {
	t.sendMu.Lock()
	if t.closed {
		t.sendMu.Unlock()
		return
	}
	t.closed = true
	close(t.events)
	t.sendMu.Unlock()

	<-t.done
}

func (t *Tracker) consume() {
	defer close(t.done)
	for e := range t.events {
		if snap, ok := t.apply(e); ok && t.onUpdate != nil {
			t.onUpdate(snap)
		}
	}
}

// apply folds one event into the registry. Downloading events without a
// usable total are ignored.
func (t *Tracker) apply(e Event) (Snapshot, bool) {
	t.stateMu.Lock()
	defer t.stateMu.Unlock()

	if _, known := t.percents[e.URL]; !known {
		return Snapshot{}, false
	}

	switch e.Status {
	case StatusDownloading:
		if e.BytesTotal <= 0 {
			return Snapshot{}, false
		}
		t.percents[e.URL] = float64(e.BytesDone) / float64(e.BytesTotal) * 100
	case StatusFinished:
		if t.finished[e.URL] {
			return Snapshot{}, false
		}
		t.finished[e.URL] = true
		if t.completed < t.total {
			t.completed++
		}
	default:
		return Snapshot{}, false
	}

	return Snapshot{
		URL:       e.URL,
		Percent:   t.percents[e.URL],
		Completed: t.completed,
		Total:     t.total,
	}, true
}
