// ════════════════════════════════════════════════════════════════════════════════════════════════
// Tick-driven Timer
// ────────────────────────────────────────────────────────────────────────────────────────────────
// A software timer advanced by a periodic tick rather than a clock. The
// owner calls one of the Tick functions at exactly its nominal rate; when
// the accumulated time reaches the armed interval the task runs inside the
// tick, after which a one-shot timer stops and a periodic one re-arms.
//
// Timers are single-threaded: ticks, starts and stops all come from the
// same context. The task may call Start, Stop and Rewind on its own timer
// but must never call a Tick function.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package timer

import (
	"errors"
	"math"

	"embd/constants"
)

// Kind selects what happens after expiry.
type Kind uint8

const (
	OneShot  Kind = iota // stop after the task runs
	Periodic             // re-arm after the task runs unless it stopped the timer
)

func (k Kind) String() string {
	switch k {
	case OneShot:
		return "one-shot"
	case Periodic:
		return "periodic"
	default:
		return "invalid"
	}
}

// DurationInfinite arms a timer that never expires.
const DurationInfinite uint32 = math.MaxUint32

var (
	ErrInvalidKind    = errors.New("timer: invalid kind")
	ErrNilTask        = errors.New("timer: nil task")
	ErrNotInitialized = errors.New("timer: not initialized")
)

type state uint8

const (
	stateUninit state = iota
	stateStopped
	stateStarted
)

// Timer is a tick-driven one-shot or periodic timer. The zero value is
// uninitialized; Start on it fails with ErrNotInitialized.
type Timer struct {
	state    state
	kind     Kind
	interval uint32 // ms
	elapsed  uint32 // ms, saturating
	task     func()
}

// New returns a stopped timer of kind k that runs task on expiry.
func New(k Kind, task func()) (*Timer, error) {
	t := new(Timer)
	if err := t.Init(k, task); err != nil {
		return nil, err
	}
	return t, nil
}

// Init prepares a zero-value timer in place. Re-initializing a timer that
// is in use is a contract violation.
func (t *Timer) Init(k Kind, task func()) error {
	if task == nil {
		return ErrNilTask
	}
	if k != OneShot && k != Periodic {
		return ErrInvalidKind
	}
	t.kind = k
	t.task = task
	t.state = stateStopped
	return nil
}

// Start arms the timer for durationMs. Starting a started timer re-arms it
// with the new duration and zeroes the elapsed time.
func (t *Timer) Start(durationMs uint32) error {
	if t.state == stateUninit {
		return ErrNotInitialized
	}
	t.interval = durationMs
	t.elapsed = 0
	t.state = stateStarted
	return nil
}

// Stop disarms the timer. It has no effect on an uninitialized or stopped
// timer.
func (t *Timer) Stop() {
	if t.state == stateUninit {
		return
	}
	t.state = stateStopped
}

// Rewind zeroes the elapsed time of a started timer without stopping it.
func (t *Timer) Rewind() {
	if t.state != stateStarted {
		return
	}
	t.elapsed = 0
}

// Started reports whether the timer is armed.
func (t *Timer) Started() bool { return t.state == stateStarted }

// Stopped reports whether the timer is initialized but not armed.
func (t *Timer) Stopped() bool { return t.state == stateStopped }

// Kind returns the timer's kind.
func (t *Timer) Kind() Kind { return t.kind }

// Elapsed returns the time accumulated since the last arm, in ms.
func (t *Timer) Elapsed() uint32 { return t.elapsed }

// Tick advances a started timer by periodMs and runs the task if the
// interval has been reached. The caller must invoke it exactly every
// periodMs.
func (t *Timer) Tick(periodMs uint32) {
	if t.state != stateStarted {
		return
	}
	if t.elapsed > math.MaxUint32-periodMs {
		t.elapsed = math.MaxUint32
	} else {
		t.elapsed += periodMs
	}
	if t.interval == DurationInfinite || t.elapsed < t.interval {
		return
	}

	t.task()

	switch t.kind {
	case OneShot:
		t.state = stateStopped
	case Periodic:
		if t.state == stateStarted {
			t.elapsed = 0
		}
	}
}

func (t *Timer) Tick5ms()   { t.Tick(constants.TimerPeriod5ms) }
func (t *Timer) Tick10ms()  { t.Tick(constants.TimerPeriod10ms) }
func (t *Timer) Tick20ms()  { t.Tick(constants.TimerPeriod20ms) }
func (t *Timer) Tick100ms() { t.Tick(constants.TimerPeriod100ms) }
func (t *Timer) Tick1s()    { t.Tick(constants.TimerPeriod1s) }
