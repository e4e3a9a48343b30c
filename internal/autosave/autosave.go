// Package autosave provides the periodic persistence trigger.
package autosave

import (
	"log/slog"
	"sync"
	"time"

	"github.com/kimhsiao/notedesk/internal/logging"
)

// State of the autosaver lifecycle.
type State int

const (
	StateStopped State = iota
	StateRunning
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return "stopped"
	}
}

// SaveFunc persists the currently open note. Errors are logged and the
// loop keeps ticking; the failed attempt itself is not retried.
type SaveFunc func() error

// Autosaver invokes a save callback once per interval on a background
// goroutine. A stop request interrupts an in-progress wait immediately
// instead of waiting out the remainder of the interval.
type Autosaver struct {
	interval time.Duration
	grace    time.Duration
	save     SaveFunc

	mu     sync.Mutex
	state  State
	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates an Autosaver. grace bounds how long Stop waits for an
// in-flight save to finish.
func New(interval, grace time.Duration, save SaveFunc) *Autosaver {
	return &Autosaver{
		interval: interval,
		grace:    grace,
		save:     save,
	}
}

// Start launches the background loop. No-op while already running.
func (a *Autosaver) Start() {
	a.mu.Lock()
	if a.state != StateStopped {
		a.mu.Unlock()
		return
	}
	a.state = StateRunning
	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	stop, done := a.stopCh, a.doneCh
	a.mu.Unlock()

	go a.loop(stop, done)

	logging.Info("autosave started", slog.Duration("interval", a.interval))
}

// Stop requests shutdown, interrupting any pending wait, and waits up to
// the grace period for the loop to finish. Returns false when the grace
// period elapsed first. No-op unless running.
func (a *Autosaver) Stop() bool {
	a.mu.Lock()
	if a.state != StateRunning {
		a.mu.Unlock()
		return true
	}
	a.state = StateStopping
	close(a.stopCh)
	done := a.doneCh
	a.mu.Unlock()

	stopped := true
	select {
	case <-done:
	case <-time.After(a.grace):
		stopped = false
		logging.Warn("autosave loop did not stop within grace period",
			slog.Duration("grace", a.grace))
	}

	a.mu.Lock()
	a.state = StateStopped
	a.mu.Unlock()

	logging.Info("autosave stopped")
	return stopped
}

// State returns the current lifecycle state.
func (a *Autosaver) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Autosaver) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(a.interval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
			// The timer may fire concurrently with a stop request; a
			// callback must not run once the stop is acknowledged.
			select {
			case <-stop:
				return
			default:
			}

			if err := a.save(); err != nil {
				logging.Error("autosave failed", logging.Err(err))
			} else {
				logging.Debug("autosave completed")
			}
			timer.Reset(a.interval)
		}
	}
}
