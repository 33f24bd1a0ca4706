// order.go: memory-order contract and its mapping onto barrier strengths.

package atomics

// MemoryOrder is the ordering contract a caller requests for one atomic
// operation. The numeric values are stable and match the firmware ABI.
type MemoryOrder uint8

const (
	Relaxed MemoryOrder = iota
	Consume
	Acquire
	Release
	AcqRel
	SeqCst
)

var orderNames = [...]string{"relaxed", "consume", "acquire", "release", "acq_rel", "seq_cst"}

func (o MemoryOrder) String() string {
	if o.Valid() {
		return orderNames[o]
	}
	return "invalid"
}

// Valid reports whether o is one of the six defined orders.
func (o MemoryOrder) Valid() bool { return o <= SeqCst }

// Barrier returns the hardware barrier strength used for o.
//
// The hardware offers fewer strengths than there are logical orders:
//
//	Relaxed                          → BarrierNone (compiler barrier only)
//	Release                          → BarrierStore
//	Consume, Acquire, AcqRel, SeqCst → BarrierFull
//
// Consume is treated as Acquire. Out-of-range values map to BarrierFull.
//
//go:nosplit
func (o MemoryOrder) Barrier() Barrier {
	switch o {
	case Relaxed:
		return BarrierNone
	case Release:
		return BarrierStore
	default:
		return BarrierFull
	}
}

// Barrier is a hardware barrier strength.
type Barrier uint8

const (
	// BarrierNone emits no instruction. The compiler barrier that always
	// accompanies a fence still applies.
	BarrierNone Barrier = iota
	// BarrierStore orders prior stores before later stores (DMB ST).
	BarrierStore
	// BarrierFull orders all prior accesses before all later ones (DMB SY).
	BarrierFull

	numBarriers
)

func (b Barrier) String() string {
	switch b {
	case BarrierNone:
		return "none"
	case BarrierStore:
		return "store"
	case BarrierFull:
		return "full"
	}
	return "invalid"
}
