// Package watcher watches project files and reports changes for local fingerprint invalidation.
package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces bursts of changed paths into a single callback.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	inflight sync.WaitGroup
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a debouncer that calls callback once no path has been
// added for window.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil && d.timer.Stop() {
		d.inflight.Done()
	}
	d.inflight.Add(1)
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs on the timer goroutine. Every scheduled timer is counted in
// inflight until it is stopped or its callback returns.
func (d *Debouncer) fire() {
	defer d.inflight.Done()

	d.mu.Lock()
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// Flush runs the callback for pending paths right away and waits until every
// callback started by the timer has returned.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil && d.timer.Stop() {
		d.inflight.Done()
	}
	d.timer = nil
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}

	d.inflight.Wait()
}

// drain empties the pending set and returns its paths sorted. Callers hold mu.
func (d *Debouncer) drain() []string {
	if len(d.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	slices.Sort(paths)
	return paths
}
