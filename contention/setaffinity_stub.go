//go:build !linux

package contention

// setAffinity is a no-op where thread affinity is not wired.
func setAffinity(int) error { return nil }
