package contention

import (
	"errors"
	"runtime"

	"embd/constants"
)

// Mode selects what the contenders race on.
type Mode string

const (
	// ModeSpinlock races TryAcquire/Release on one Spinlock and checks
	// that critical sections never overlap.
	ModeSpinlock Mode = "spinlock"

	// ModeCAS races load/strong-CAS increment chains on one 32-bit cell
	// and checks that exactly one contender wins each step.
	ModeCAS Mode = "cas"
)

var (
	ErrInvalidMode        = errors.New("contention: mode must be spinlock or cas")
	ErrNoContenders       = errors.New("contention: need at least one contender")
	ErrNoIterations       = errors.New("contention: need at least one iteration")
	ErrFaultEveryOne      = errors.New("contention: fault-every 1 would fail every store")
	ErrSingleCoreParallel = errors.New("contention: single-core backend allows one contender")
)

// Config describes one soak run.
type Config struct {
	Mode       Mode   `json:"mode"`
	Contenders int    `json:"contenders"`
	Iterations int    `json:"iterations"`  // attempts per contender
	MaxSpin    uint32 `json:"max_spin"`    // spinlock bound; 0 means one attempt
	FaultEvery uint64 `json:"fault_every"` // lose every n-th reservation; 0 disables
	SingleCore bool   `json:"single_core"`
	Pin        bool   `json:"pin"` // pin contender i to CPU i mod NumCPU
}

// DefaultConfig returns a spinlock run sized from constants.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeSpinlock,
		Contenders: constants.DefaultContenders,
		Iterations: constants.DefaultIterations,
		MaxSpin:    constants.DefaultMaxSpin,
	}
}

// Validate rejects configurations the harness cannot run meaningfully.
func (c Config) Validate() error {
	switch {
	case c.Mode != ModeSpinlock && c.Mode != ModeCAS:
		return ErrInvalidMode
	case c.Contenders < 1:
		return ErrNoContenders
	case c.Iterations < 1:
		return ErrNoIterations
	case c.FaultEvery == 1:
		return ErrFaultEveryOne
	case c.SingleCore && c.Contenders > 1:
		return ErrSingleCoreParallel
	}
	return nil
}

func (c Config) cpuFor(id int) int {
	return id % runtime.NumCPU()
}
