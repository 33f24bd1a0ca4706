//go:build amd64 && !noasm

// relax_amd64.go
//
// PopWait backs off with PAUSE between empty polls; the body is in
// relax_amd64.s.

package ring

//go:noescape
func cpuRelax()
