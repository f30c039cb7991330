package watcher

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/exsd/internal/core/ports"
)

// DefaultDebounceWindow is the default time window for coalescing events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer coalesces bursts of watch events into one batch per quiet period.
// The latest operation seen for a path wins.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]ports.WatchOp
	timer    *time.Timer
	window   time.Duration
	callback func(events []ports.WatchEvent)
}

// NewDebouncer creates a debouncer delivering batches to callback after window
// has passed without new events.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]ports.WatchOp),
		window:   window,
		callback: callback,
	}
}

// Add records event and restarts the quiet period.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[event.Path] = event.Operation
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	events := d.drain()
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		go d.callback(events)
	}
}

// Flush delivers pending events immediately and waits for the callback to
// return. It does nothing when the timer has already fired.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	events := d.drain()
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// drain must be called with d.mu held.
func (d *Debouncer) drain() []ports.WatchEvent {
	if len(d.pending) == 0 {
		return nil
	}
	events := make([]ports.WatchEvent, 0, len(d.pending))
	for path, op := range d.pending {
		events = append(events, ports.WatchEvent{Path: path, Operation: op})
	}
	clear(d.pending)
	slices.SortFunc(events, func(a, b ports.WatchEvent) int {
		return strings.Compare(a.Path, b.Path)
	})
	return events
}
