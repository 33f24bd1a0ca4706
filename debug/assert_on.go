//go:build embddebug

package debug

// Checks is true in builds tagged embddebug. Guard contract checks with it
// so release builds compile them out.
const Checks = true

// Assert logs msg and panics when cond is false. Contract violations are
// undefined behaviour in release builds; debug builds stop at the first one.
func Assert(cond bool, msg string) {
	if cond {
		return
	}
	DropLevel(LevelError, "contract", msg)
	panic(msg)
}
