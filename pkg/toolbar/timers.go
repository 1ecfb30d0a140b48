package toolbar

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// TimerState is where a Debouncer or Throttler is in its cycle.
type TimerState int

const (
	Idle TimerState = iota
	Pending
	Fired
)

func (s TimerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Fired:
		return "fired"
	default:
		return "unknown"
	}
}

// Debouncer runs its callback once calls have stopped for delay. Every Call
// supersedes the pending one.
type Debouncer struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	delay    time.Duration
	timer    clockwork.Timer
	seq      uint64 // detects stale timer callbacks
	state    TimerState
	callback func()
}

func NewDebouncer(clock clockwork.Clock, delay time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		clock:    clock,
		delay:    delay,
		callback: callback,
	}
}

// Call (re)starts the quiet period.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	current := d.seq
	d.state = Pending

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.state != Pending || d.seq != current {
			d.mu.Unlock()
			return
		}
		d.state = Fired
		d.timer = nil
		d.mu.Unlock()

		d.callback()
	})
}

// Cancel drops a pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	if d.state == Pending {
		d.state = Idle
	}
}

func (d *Debouncer) State() TimerState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// Throttler runs its callback on the leading edge and ignores calls for
// interval afterwards. Ignored calls are dropped, not deferred.
type Throttler struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	interval time.Duration
	last     time.Time
	fired    bool
	callback func()
}

func NewThrottler(clock clockwork.Clock, interval time.Duration, callback func()) *Throttler {
	return &Throttler{
		clock:    clock,
		interval: interval,
		callback: callback,
	}
}

// Call runs the callback unless it ran less than interval ago. It reports
// whether the callback ran.
func (t *Throttler) Call() bool {
	t.mu.Lock()

	now := t.clock.Now()
	if t.fired && now.Sub(t.last) < t.interval {
		t.mu.Unlock()
		return false
	}

	t.fired = true
	t.last = now
	t.mu.Unlock()

	t.callback()
	return true
}

// State is Fired while calls are being dropped and Idle otherwise.
func (t *Throttler) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.fired && t.clock.Now().Sub(t.last) < t.interval {
		return Fired
	}
	return Idle
}
