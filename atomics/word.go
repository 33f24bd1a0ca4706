// word.go: backing storage shared by every cell width.

package atomics

import (
	"sync/atomic"
	"unsafe"
)

// Word is the memory location behind a Cell. The low 32 bits carry the
// zero-extended value. HostBackend keeps a write generation in the high
// 32 bits so a reservation is lost on any intervening write, even one that
// stores the same value.
//
// Embedding atomic.Uint64 keeps the word 64-bit aligned on 32-bit targets.
type Word struct {
	atomic.Uint64
}

// raw exposes the word for plain (non-atomic) access by the single-core
// backend.
//
//go:nosplit
func (w *Word) raw() *uint64 {
	return (*uint64)(unsafe.Pointer(w))
}

// Reservation is the opaque token an exclusive load hands to the matching
// exclusive store. It plays the part of the per-core exclusive monitor.
type Reservation uint64

const (
	valueMask      = 0xFFFF_FFFF
	generationStep = 1 << 32
)

// value extracts the 32-bit payload from a raw word.
//
//go:nosplit
func value(raw uint64) uint32 { return uint32(raw & valueMask) }
