// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go: cold-path logging helpers (zero-fmt)
//
// Purpose:
//   - Reports infrequent conditions: harness setup, store errors, contract
//     violations caught by debug builds.
//   - Leveled so firmware-style verbosity can be dialled down at run time.
//
// Notes:
//   - Avoids fmt to keep the footprint small; lines are built by
//     concatenation and written in one call.
//   - Never invoke from a spin loop.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import (
	"sync/atomic"

	"embd/utils"
)

// Level filters what gets written. Higher is chattier.
type Level uint32

const (
	LevelNone Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelVerbose
)

var levelTags = [...]string{"", "ERROR", "WARN", "INFO", "DEBUG", "VERBOSE"}

func (l Level) String() string {
	if int(l) < len(levelTags) && l != LevelNone {
		return levelTags[l]
	}
	return "NONE"
}

var (
	level atomic.Uint32

	// sink receives every finished line, newline included.
	sink = utils.PrintWarning
)

func init() {
	level.Store(uint32(LevelDebug))
}

// SetLevel changes the active level and returns the previous one.
func SetLevel(l Level) Level {
	return Level(level.Swap(uint32(l)))
}

// Enabled reports whether lines at l are written.
//
//go:nosplit
func Enabled(l Level) bool {
	return l != LevelNone && uint32(l) <= level.Load()
}

// DropError logs "<prefix>: <err>" at LevelError, or just the prefix when
// err is nil (used as a cheap tag).
func DropError(prefix string, err error) {
	if !Enabled(LevelError) {
		return
	}
	if err != nil {
		sink(prefix + ": " + err.Error() + "\n")
		return
	}
	sink(prefix + "\n")
}

// DropMessage logs "<prefix>: <message>" at LevelInfo.
func DropMessage(prefix, message string) {
	if !Enabled(LevelInfo) {
		return
	}
	sink(prefix + ": " + message + "\n")
}

// DropLevel logs "[<LEVEL>] <prefix>: <message>" at an explicit level.
func DropLevel(l Level, prefix, message string) {
	if !Enabled(l) {
		return
	}
	sink("[" + l.String() + "] " + prefix + ": " + message + "\n")
}
