//go:build singlecore

package atomics

// SingleCoreOnly reports whether the build selected the single-core
// backend (build tag singlecore).
const SingleCoreOnly = true

// DefaultBackend returns the backend chosen at compile time.
//
//go:nosplit
func DefaultBackend() Backend { return SingleCoreBackend{} }
