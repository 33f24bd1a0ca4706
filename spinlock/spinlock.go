// ════════════════════════════════════════════════════════════════════════════════════════════════
// Bounded Spinlock
// ────────────────────────────────────────────────────────────────────────────────────────────────
// A mutual-exclusion flag on one 8-bit atomic cell (0 = free, 1 = held)
// with an acquire bounded by iteration count rather than wall-clock time,
// so it needs no clock and works before any timer is up.
//
// Contract (unchecked in release builds):
//   - Init exactly once before use.
//   - Release only after a successful TryAcquire, and only once.
//   - Never call TryAcquire from an interrupt / asynchronous-signal context.
//
// There is no owner tracking, no blocking and no yielding to a scheduler.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package spinlock

import (
	"embd/atomics"
	"embd/constants"
	"embd/debug"
)

const (
	free uint8 = 0
	held uint8 = 1
)

// Spinlock is a bounded test-and-set lock. It must not be copied after
// Init.
type Spinlock struct {
	flag          atomics.Cell[uint8]
	maxIterations uint32
}

// New returns an initialized lock on the default backend.
func New(maxIterations uint32) *Spinlock {
	l := new(Spinlock)
	l.Init(maxIterations)
	return l
}

// NewDefault returns a lock bounded by constants.DefaultSpinIterations.
func NewDefault() *Spinlock {
	return New(constants.DefaultSpinIterations)
}

// Init clears the flag and fixes the spin bound for the life of the lock.
func (l *Spinlock) Init(maxIterations uint32) {
	l.InitWith(atomics.DefaultBackend(), maxIterations)
}

// InitWith is Init on an explicit backend.
func (l *Spinlock) InitWith(be atomics.Backend, maxIterations uint32) {
	l.flag.Init(be, free)
	l.maxIterations = maxIterations
}

// MaxIterations returns the spin bound fixed at Init.
func (l *Spinlock) MaxIterations() uint32 { return l.maxIterations }

// TryAcquire attempts a weak compare-exchange 0→1 until one succeeds or
// MaxIterations attempts have failed, whichever comes first. On failure
// the flag is left as it was. A bound of 0 makes a single attempt.
func (l *Spinlock) TryAcquire() bool {
	n := l.maxIterations
	if n == 0 {
		n = 1
	}
	for i := uint32(0); i < n; i++ {
		expected := free
		if l.flag.CompareExchangeWeak(&expected, held) {
			return true
		}
		cpuRelax()
	}
	return false
}

// Release frees the lock with Release ordering, publishing every write the
// critical section made to the next context that acquires it.
func (l *Spinlock) Release() {
	if debug.Checks {
		debug.Assert(l.flag.LoadExplicit(atomics.Relaxed) == held, "spinlock: release of a lock that is not held")
	}
	l.flag.StoreExplicit(free, atomics.Release)
}

// Do runs fn while holding the lock and releases it even if fn panics.
// It reports false, without running fn, when the lock could not be taken.
func (l *Spinlock) Do(fn func()) bool {
	if !l.TryAcquire() {
		return false
	}
	defer l.Release()
	fn()
	return true
}

// Held reports whether the flag is currently set. It is a relaxed read for
// diagnostics and synchronizes nothing.
func (l *Spinlock) Held() bool {
	return l.flag.LoadExplicit(atomics.Relaxed) == held
}
