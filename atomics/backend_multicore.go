//go:build !singlecore

package atomics

// SingleCoreOnly reports whether the build selected the single-core
// backend (build tag singlecore).
const SingleCoreOnly = false

// DefaultBackend returns the backend chosen at compile time.
//
//go:nosplit
func DefaultBackend() Backend { return HostBackend{} }
