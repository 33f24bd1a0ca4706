//go:build !embddebug

package debug

// Checks is true in builds tagged embddebug. Guard contract checks with it
// so release builds compile them out.
const Checks = false

// Assert is a no-op outside embddebug builds.
//
//go:nosplit
func Assert(bool, string) {}
