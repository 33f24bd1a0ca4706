// padded.go: cache-line isolated cell for hot flags.

package atomics

import "golang.org/x/sys/cpu"

// PaddedCell is a Cell with a cache line of padding on each side, so a
// contended flag never shares a line with its neighbours.
type PaddedCell[T Width] struct {
	_ cpu.CacheLinePad
	Cell[T]
	_ cpu.CacheLinePad
}
