// fault.go: reservation-loss injector.
//
// FaultBackend wraps a real backend and makes chosen exclusive stores report
// failure without writing, the way a broken reservation would on hardware.
// It also counts every primitive it forwards so callers can check exactly
// which hardware steps an operation issued.

package atomics

import "sync/atomic"

// FaultBackend forwards to Inner and fails the n-th exclusive store
// (1-based, across all contexts) whenever Fail(n) returns true. A nil Fail
// never injects. Use it through a pointer.
type FaultBackend struct {
	Inner Backend
	Fail  func(n uint64) bool

	loads    atomic.Uint64
	stores   atomic.Uint64
	injected atomic.Uint64
	barriers [numBarriers]atomic.Uint64
}

// NewFaultBackend wraps inner with the given failure schedule.
func NewFaultBackend(inner Backend, fail func(n uint64) bool) *FaultBackend {
	return &FaultBackend{Inner: inner, Fail: fail}
}

func (f *FaultBackend) Barrier(b Barrier) {
	if b < numBarriers {
		f.barriers[b].Add(1)
	}
	f.Inner.Barrier(b)
}

func (f *FaultBackend) ExclusiveLoad(w *Word) (uint32, Reservation) {
	f.loads.Add(1)
	return f.Inner.ExclusiveLoad(w)
}

func (f *FaultBackend) TryExclusiveStore(w *Word, r Reservation, v uint32) bool {
	n := f.stores.Add(1)
	if f.Fail != nil && f.Fail(n) {
		f.injected.Add(1)
		return false
	}
	return f.Inner.TryExclusiveStore(w, r, v)
}

// Loads returns the number of exclusive loads forwarded so far.
func (f *FaultBackend) Loads() uint64 { return f.loads.Load() }

// Stores returns the number of exclusive store attempts, injected
// failures included.
func (f *FaultBackend) Stores() uint64 { return f.stores.Load() }

// Injected returns the number of stores failed on purpose.
func (f *FaultBackend) Injected() uint64 { return f.injected.Load() }

// Barriers returns how many barriers of strength b were issued.
func (f *FaultBackend) Barriers(b Barrier) uint64 {
	if b >= numBarriers {
		return 0
	}
	return f.barriers[b].Load()
}

// FailAlways loses every reservation.
func FailAlways(uint64) bool { return true }

// FailFirst loses the first k reservations and none after.
func FailFirst(k uint64) func(uint64) bool {
	return func(n uint64) bool { return n <= k }
}

// FailEvery loses every k-th reservation. k < 2 never injects, since k == 1
// would starve every writer.
func FailEvery(k uint64) func(uint64) bool {
	if k < 2 {
		return nil
	}
	return func(n uint64) bool { return n%k == 0 }
}
