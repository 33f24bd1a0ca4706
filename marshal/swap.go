package marshal

import "math/bits"

// Swap16 reverses the byte order of v.
func Swap16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// Swap32 reverses the byte order of v.
func Swap32(v uint32) uint32 { return bits.ReverseBytes32(v) }
