//go:build !amd64 || noasm

// relax_stub.go
//
// Portable fall-back for non-amd64 builds or when assembly stubs are
// disabled.

package spinlock

// cpuRelax is a no-op on unsupported targets.
//
//go:nosplit
func cpuRelax() {}
