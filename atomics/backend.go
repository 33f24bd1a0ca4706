// backend.go: the architecture boundary below Cell.
//
// A Backend supplies the two hardware primitives a cell is built from:
// barriers of a given strength, and the exclusive load / exclusive store
// pair. Cells never touch a Word except through their backend.

package atomics

import "sync/atomic"

// Backend is the hardware step of an atomic cell.
//
// ExclusiveLoad reads w and opens a reservation on it. TryExclusiveStore
// writes v only if the reservation r is still valid (no write to w by any
// context since the matching load) and reports whether it did.
type Backend interface {
	Barrier(b Barrier)
	ExclusiveLoad(w *Word) (uint32, Reservation)
	TryExclusiveStore(w *Word, r Reservation, v uint32) bool
}

// fenceWord is the target of the host read-modify-write used as a
// barrier. Its value is irrelevant.
var fenceWord atomic.Uint32

// hostBarrier emits the strongest ordering the host offers from Go: a
// locked RMW (x86 LOCK XADD, arm64 LDADDAL) for full barriers and an
// atomic store (XCHG / STLR) for store barriers.
//
//go:nosplit
func hostBarrier(b Barrier) {
	switch b {
	case BarrierFull:
		fenceWord.Add(0)
	case BarrierStore:
		fenceWord.Store(0)
	}
}

// compilerBarrier keeps the compiler from moving memory accesses across
// the fence point. Go does not reorder loads and stores across a call it
// cannot inline.
//
//go:noinline
func compilerBarrier() {}

// HostBackend is the multi-core reference backend. The exclusive pair is
// emulated with host atomics: the reservation is a snapshot of the whole
// word, generation included, and the exclusive store is a CAS against it.
type HostBackend struct{}

func (HostBackend) Barrier(b Barrier) { hostBarrier(b) }

//go:nosplit
func (HostBackend) ExclusiveLoad(w *Word) (uint32, Reservation) {
	raw := w.Load()
	return value(raw), Reservation(raw)
}

//go:nosplit
func (HostBackend) TryExclusiveStore(w *Word, r Reservation, v uint32) bool {
	next := (uint64(r)&^valueMask + generationStep) | uint64(v)
	return w.CompareAndSwap(uint64(r), next)
}

// SingleCoreBackend is for targets with exactly one bus master. Nothing
// can interleave between the load and the store at sub-instruction
// granularity, so the exclusive pair degrades to a plain read and a plain
// write that always succeeds. Interrupt and compiler reordering are
// handled by the barriers alone.
//
// It must not be shared between goroutines running in parallel.
type SingleCoreBackend struct{}

func (SingleCoreBackend) Barrier(b Barrier) { hostBarrier(b) }

//go:nosplit
func (SingleCoreBackend) ExclusiveLoad(w *Word) (uint32, Reservation) {
	raw := *w.raw()
	return value(raw), Reservation(raw)
}

//go:nosplit
func (SingleCoreBackend) TryExclusiveStore(w *Word, _ Reservation, v uint32) bool {
	*w.raw() = uint64(v)
	return true
}
