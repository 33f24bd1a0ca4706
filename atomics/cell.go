// ════════════════════════════════════════════════════════════════════════════════════════════════
// Atomic Cell
// ────────────────────────────────────────────────────────────────────────────────────────────────
// A fixed-width (8/16/32-bit) memory location whose loads, stores and
// compare-exchanges go through a Backend: a barrier on the order-dependent
// side of the access, and the exclusive load / exclusive store pair for the
// access itself.
//
// Every fence is a hardware barrier of the strength the order maps to,
// followed by a compiler barrier, so no access is moved across the fence
// point even when the hardware barrier is a no-op.
//
// Direct access to the underlying word is forbidden; all observers must use
// the methods below.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package atomics

import "embd/debug"

// Width is the set of integer types a cell can hold. There is no 64-bit
// member.
type Width interface {
	~uint8 | ~uint16 | ~uint32
}

// Cell is an atomic integer of width T.
//
// The zero value holds 0 and uses DefaultBackend. A cell must not be
// copied after first use.
type Cell[T Width] struct {
	w  Word
	be Backend
}

// NewCell returns a cell on the default backend holding v.
func NewCell[T Width](v T) *Cell[T] {
	return NewCellWith(DefaultBackend(), v)
}

// NewCellWith returns a cell on backend be holding v.
func NewCellWith[T Width](be Backend, v T) *Cell[T] {
	c := new(Cell[T])
	c.Init(be, v)
	return c
}

// Init binds the cell to be (nil selects DefaultBackend) and stores v with
// Release ordering. It must run before the cell is shared.
func (c *Cell[T]) Init(be Backend, v T) {
	if be == nil {
		be = DefaultBackend()
	}
	c.be = be
	c.StoreExplicit(v, Release)
}

// Backend returns the backend the cell operates through.
//
//go:nosplit
func (c *Cell[T]) Backend() Backend {
	if c.be == nil {
		return DefaultBackend()
	}
	return c.be
}

func fence(be Backend, o MemoryOrder) {
	if debug.Checks {
		debug.Assert(o.Valid(), "atomics: invalid memory order")
	}
	be.Barrier(o.Barrier())
	compilerBarrier()
}

// Load returns the current value with Acquire ordering.
func (c *Cell[T]) Load() T { return c.LoadExplicit(Acquire) }

// Store writes v with Release ordering.
func (c *Cell[T]) Store(v T) { c.StoreExplicit(v, Release) }

// LoadExplicit fences for order o, then reads the value.
func (c *Cell[T]) LoadExplicit(o MemoryOrder) T {
	be := c.Backend()
	fence(be, o)
	v, _ := be.ExclusiveLoad(&c.w)
	return T(v)
}

// StoreExplicit writes v, then fences for order o.
//
// The write is an exclusive pair retried until it lands, so it breaks
// every reservation other contexts hold on the cell.
func (c *Cell[T]) StoreExplicit(v T, o MemoryOrder) {
	be := c.Backend()
	for {
		_, r := be.ExclusiveLoad(&c.w)
		if be.TryExclusiveStore(&c.w, r, uint32(v)) {
			break
		}
	}
	fence(be, o)
}

// CompareExchangeWeak replaces the value with desired if it equals
// *expected and reports whether it did.
//
// On a value mismatch *expected is set to the observed value. The call may
// also fail spuriously when the exclusive store loses its reservation; in
// that case *expected is left untouched, unlike the conventional weak CAS
// which always refreshes it. Callers retry in a loop.
func (c *Cell[T]) CompareExchangeWeak(expected *T, desired T) bool {
	be := c.Backend()
	fence(be, Acquire)
	cur, r := be.ExclusiveLoad(&c.w)
	if T(cur) != *expected {
		*expected = T(cur)
		return false
	}
	if be.TryExclusiveStore(&c.w, r, uint32(desired)) {
		fence(be, Release)
		return true
	}
	fence(be, Relaxed)
	return false
}

// CompareExchangeStrong is CompareExchangeWeak without spurious failure:
// after a lost reservation it reloads and retries. It returns false only
// when the value really differs, with *expected set to that value.
func (c *Cell[T]) CompareExchangeStrong(expected *T, desired T) bool {
	be := c.Backend()
	fence(be, Acquire)
	for {
		cur, r := be.ExclusiveLoad(&c.w)
		if T(cur) != *expected {
			*expected = T(cur)
			return false
		}
		if be.TryExclusiveStore(&c.w, r, uint32(desired)) {
			fence(be, Release)
			return true
		}
		fence(be, Relaxed)
	}
}
