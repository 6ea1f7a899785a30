package watcher

import (
	"sync"
	"time"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
)

// DefaultDebounceWindow is how long the file must stay quiet before a reload.
const DefaultDebounceWindow = 500 * time.Millisecond

// Debouncer coalesces bursts of file events into a single callback carrying the last event.
// Editors typically emit several writes, or a create and a rename, per save.
type Debouncer struct {
	mu       sync.Mutex
	pending  *ports.WatchEvent
	timer    *time.Timer
	window   time.Duration
	callback func(ports.WatchEvent)
}

// NewDebouncer creates a debouncer with the given quiet window and callback.
func NewDebouncer(window time.Duration, callback func(ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Add records an event and restarts the quiet window.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = &event
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	event := d.take()
	d.timer = nil
	d.mu.Unlock()

	if event != nil && d.callback != nil {
		d.callback(*event)
	}
}

// take returns and clears the pending event. Callers hold mu.
func (d *Debouncer) take() *ports.WatchEvent {
	event := d.pending
	d.pending = nil
	return event
}

// Flush delivers the pending event now, blocking until the callback returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Already firing.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	event := d.take()
	d.mu.Unlock()

	if event != nil && d.callback != nil {
		d.callback(*event)
	}
}

// Stop discards the pending event without delivering it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
