// Package timer provides the session stopwatch used while logging a workout.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// Stopwatch is an elapsed-time timer with a periodic tick. At most one tick
// source is active at a time; Start while running is a no-op and Stop
// cancels the tick deterministically.
type Stopwatch struct {
	mu      sync.Mutex
	running bool
	start   time.Time
	elapsed time.Duration
	stop    chan struct{}
	tick    time.Duration
}

// New creates a Stopwatch ticking once per second.
func New() *Stopwatch {
	return &Stopwatch{tick: time.Second}
}

// Start records the start instant and begins ticking. No-op if already
// running.
func (sw *Stopwatch) Start() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.running {
		return
	}
	sw.running = true
	sw.start = time.Now()
	sw.stop = make(chan struct{})
	go sw.run(sw.stop, sw.start)
}

// run recomputes elapsed on every tick until stopped.
func (sw *Stopwatch) run(stop chan struct{}, start time.Time) {
	ticker := time.NewTicker(sw.tick)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			sw.mu.Lock()
			if sw.running && sw.start.Equal(start) {
				sw.elapsed = now.Sub(start)
			}
			sw.mu.Unlock()
		}
	}
}

// Stop cancels the tick and freezes the elapsed value. No-op if not running.
func (sw *Stopwatch) Stop() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if !sw.running {
		return
	}
	sw.running = false
	close(sw.stop)
	sw.stop = nil
	sw.elapsed = time.Since(sw.start)
}

// Reset stops the timer if running and zeroes the elapsed time.
func (sw *Stopwatch) Reset() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.running {
		sw.running = false
		close(sw.stop)
		sw.stop = nil
	}
	sw.elapsed = 0
	sw.start = time.Time{}
}

// Running reports whether the stopwatch is running.
func (sw *Stopwatch) Running() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.running
}

// Elapsed returns the current elapsed time: live while running, frozen after
// Stop.
func (sw *Stopwatch) Elapsed() time.Duration {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.running {
		return time.Since(sw.start)
	}
	return sw.elapsed
}

// FormattedElapsed renders the elapsed time as H:MM:SS past one hour, M:SS
// below it.
func (sw *Stopwatch) FormattedElapsed() string {
	return FormatDuration(sw.Elapsed())
}

// FormatDuration renders a duration as H:MM:SS past one hour, M:SS below it.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
