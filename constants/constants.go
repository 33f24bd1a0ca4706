// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go: Global Tunables
//
// Purpose:
//   - Spin bounds, log dump caps and harness defaults shared across packages.
//
// Notes:
//   - Spin bounds are iteration counts, not time: callers translate their
//     own timing budget into iterations for their core clock.
//
// ⚠️ No runtime logic here: all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ─────────────────────────────── Spinning ──────────────────────────────────

const (
	// DefaultSpinIterations bounds a spinlock acquire when the caller has no
	// better figure. At ~10 ns per attempt this is ≈10 µs.
	DefaultSpinIterations = 1000
)

// ──────────────────────────────── Logging ──────────────────────────────────

const (
	// LogHexMaxBytes caps a hex dump; longer inputs are truncated.
	// Must fit in a uint8.
	LogHexMaxBytes = 64

	// LogHexLineBreak is the bytes-per-line of a broken hex dump.
	LogHexLineBreak = 32
)

// ───────────────────────────────── Timer ───────────────────────────────────

const (
	// Tick periods in milliseconds for the fixed-rate timer tick entry points.
	TimerPeriod5ms   = 5
	TimerPeriod10ms  = 10
	TimerPeriod20ms  = 20
	TimerPeriod100ms = 100
	TimerPeriod1s    = 1000
)

// ─────────────────────────── Contention Harness ────────────────────────────

const (
	// DefaultContenders is the number of racing contexts in a soak run.
	DefaultContenders = 4

	// DefaultIterations is the number of operations per contender.
	DefaultIterations = 10_000

	// DefaultMaxSpin is the spinlock bound used by the harness.
	DefaultMaxSpin = 1 << 12

	// SampleRingSlots sizes each contender's latency ring. Power of two.
	SampleRingSlots = 1 << 10

	// DefaultDBPath is where embdbench keeps its run history.
	DefaultDBPath = "embdbench.db"
)
