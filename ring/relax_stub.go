//go:build !amd64 || noasm

package ring

// cpuRelax is a no-op where no pause hint is wired.
func cpuRelax() {}
