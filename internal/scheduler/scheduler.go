// Package scheduler provides the cancellable timer behind auto-advance.
// The engine never starts timers; the host owns a handle and re-arms it
// whenever phase, speed, or the auto-advance flag changes.
package scheduler

import (
	"sync"
	"time"
)

// Handle controls one repeating timer. Stop is idempotent; a Stop that
// races a pending tick wins, so pausing mid-delay suppresses the fire.
type Handle struct {
	done chan struct{}
	once sync.Once
}

// Start begins invoking fn every interval until the handle is stopped.
func Start(interval time.Duration, fn func()) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				// Re-check cancellation so a Stop racing the tick wins.
				select {
				case <-h.done:
					return
				default:
				}
				fn()
			}
		}
	}()
	return h
}

// Stop cancels the timer. Safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(func() { close(h.done) })
}
