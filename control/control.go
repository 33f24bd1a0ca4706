// control.go: Global stop flag and contender accounting for soak runs
// ============================================================================
// HARNESS CONTROL
// ============================================================================
//
// One process-wide stop flag that every contender polls between
// iterations, and a count of contenders currently inside a run so the
// harness can wait for them to leave.
//
// Both live in cache-line padded atomic cells so polling from many cores
// never contends with the writers of neighbouring data.

package control

import "embd/atomics"

var (
	stopFlag atomics.PaddedCell[uint32] // 1 = contenders must return
	active   atomics.PaddedCell[uint32] // contenders between Enter and Leave
)

func init() {
	stopFlag.Init(atomics.HostBackend{}, 0)
	active.Init(atomics.HostBackend{}, 0)
}

// ============================================================================
// SHUTDOWN
// ============================================================================

// Shutdown asks every contender to stop. It is idempotent and reports
// whether this call was the one that raised the flag.
func Shutdown() bool {
	expected := uint32(0)
	return stopFlag.CompareExchangeStrong(&expected, 1)
}

// Stopped reports whether Shutdown has been called since the last Reset.
// Contenders poll it between iterations.
func Stopped() bool {
	return stopFlag.Load() != 0
}

// Reset lowers the stop flag for the next run. Call only while no
// contender is active.
func Reset() {
	stopFlag.Store(0)
}

// ============================================================================
// CONTENDER ACCOUNTING
// ============================================================================

// Enter registers a contender. It fails once Shutdown has been called so
// late starters do not join a run that is ending.
func Enter() bool {
	if Stopped() {
		return false
	}
	for {
		n := active.LoadExplicit(atomics.Relaxed)
		if active.CompareExchangeWeak(&n, n+1) {
			return true
		}
	}
}

// Leave unregisters a contender registered by Enter.
func Leave() {
	for {
		n := active.LoadExplicit(atomics.Relaxed)
		if n == 0 {
			return
		}
		if active.CompareExchangeWeak(&n, n-1) {
			return
		}
	}
}

// Active returns the number of registered contenders.
func Active() uint32 {
	return active.Load()
}
