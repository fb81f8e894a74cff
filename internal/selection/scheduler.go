package selection

import (
	"sync"
	"time"

	"selectkit/internal/clock"
)

// DefaultAutoScrollInterval is the period of the drag auto-scroll task.
const DefaultAutoScrollInterval = 100 * time.Millisecond

// Ticker is a running periodic task.
type Ticker interface {
	Stop()
}

// Scheduler starts periodic tasks. The Manager uses it for drag
// auto-scroll and stops the task when the drag ends.
type Scheduler interface {
	Every(d time.Duration, fn func()) Ticker
}

// ClockScheduler runs periodic tasks on a clock.Clock. With clock.Real the
// task runs on a timer goroutine, so hosts with a single UI goroutine
// should provide their own Scheduler that posts ticks to that loop.
type ClockScheduler struct {
	Clock clock.Clock
}

// Every implements Scheduler.
func (s ClockScheduler) Every(d time.Duration, fn func()) Ticker {
	t := &clockTicker{clock: s.Clock, every: d, fn: fn}
	t.arm()
	return t
}

type clockTicker struct {
	mu      sync.Mutex
	clock   clock.Clock
	every   time.Duration
	fn      func()
	timer   *clock.Timer
	stopped bool
}

func (t *clockTicker) arm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.timer = t.clock.AfterFunc(t.every, t.fire)
}

func (t *clockTicker) fire() {
	t.mu.Lock()
	stopped := t.stopped
	t.mu.Unlock()
	if stopped {
		return
	}
	t.fn()
	t.arm()
}

func (t *clockTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
	}
}
