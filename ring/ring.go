// ring.go
//
// Lock-free single-producer/single-consumer ring of uint64 samples. Each
// slot carries a sequence stamp held in an atomic cell: the producer
// publishes with a Release store, the consumer observes with an Acquire
// load, so the payload itself needs no atomics. Producer and consumer
// indices sit on separate cache lines to avoid false sharing.
//
// Stamps are 32-bit and wrap; with a power-of-two size the equality tests
// stay exact across the wrap.

package ring

import (
	"golang.org/x/sys/cpu"

	"embd/atomics"
)

// slot couples a payload with its sequence stamp.
type slot struct {
	seq atomics.Cell[uint32]
	val uint64
}

// Ring is a fixed-capacity circular buffer dedicated to one producer and
// one consumer.
type Ring struct {
	_    cpu.CacheLinePad // consumer head isolated on its own line
	head uint32
	_    cpu.CacheLinePad
	tail uint32
	_    cpu.CacheLinePad
	mask uint32
	buf  []slot
}

// New allocates a ring on the default backend. size must be a power of
// two no larger than 1<<31, otherwise New panics.
func New(size int) *Ring {
	return NewWith(atomics.DefaultBackend(), size)
}

// NewWith is New with the slot stamps bound to backend be.
func NewWith(be atomics.Backend, size int) *Ring {
	if size <= 0 || size&(size-1) != 0 || size > 1<<31 {
		panic("ring: size must be >0 and a power of two")
	}
	r := &Ring{
		mask: uint32(size - 1),
		buf:  make([]slot, size),
	}
	for i := range r.buf {
		r.buf[i].seq.Init(be, uint32(i))
	}
	return r
}

// Cap returns the number of slots.
func (r *Ring) Cap() int { return len(r.buf) }

// Push enqueues v, returning false if the buffer is full.
func (r *Ring) Push(v uint64) bool {
	t := r.tail
	s := &r.buf[t&r.mask]
	if s.seq.LoadExplicit(atomics.Acquire) != t {
		return false // consumer has not yet reclaimed the slot
	}
	s.val = v
	s.seq.StoreExplicit(t+1, atomics.Release)
	r.tail = t + 1
	return true
}

// Pop dequeues one value. ok is false if the buffer is empty.
func (r *Ring) Pop() (v uint64, ok bool) {
	h := r.head
	s := &r.buf[h&r.mask]
	if s.seq.LoadExplicit(atomics.Acquire) != h+1 {
		return 0, false // producer has not yet published to the slot
	}
	v = s.val
	s.seq.StoreExplicit(h+uint32(len(r.buf)), atomics.Release)
	r.head = h + 1
	return v, true
}

// PopWait busy-spins until a value becomes available.
func (r *Ring) PopWait() uint64 {
	for {
		if v, ok := r.Pop(); ok {
			return v
		}
		cpuRelax()
	}
}

// Drain pops until the ring is empty, handing each value to fn, and
// returns how many it delivered.
func (r *Ring) Drain(fn func(uint64)) int {
	n := 0
	for {
		v, ok := r.Pop()
		if !ok {
			return n
		}
		fn(v)
		n++
	}
}
