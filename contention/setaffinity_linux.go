//go:build linux

package contention

import "golang.org/x/sys/unix"

// setAffinity pins the calling OS thread to cpu. The caller must hold
// runtime.LockOSThread.
func setAffinity(cpu int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpu)
	return unix.SchedSetaffinity(0, &mask)
}
