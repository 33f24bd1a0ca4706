package utils

import (
	"os"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities: Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged while
// the string is in use.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

///////////////////////////////////////////////////////////////////////////////
// Integer Formatting: strconv-free
///////////////////////////////////////////////////////////////////////////////

// Utoa formats u in base 10.
func Utoa(u uint64) string {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	return string(buf[i:])
}

// Itoa formats n in base 10.
func Itoa(n int) string {
	if n < 0 {
		return "-" + Utoa(uint64(-int64(n)))
	}
	return Utoa(uint64(n))
}

///////////////////////////////////////////////////////////////////////////////
// Hex Encoding: Log Dumps
///////////////////////////////////////////////////////////////////////////////

const hexLookup = "0123456789abcdef"

// AppendHex appends each byte of data to dst as two lowercase hex digits
// followed by a space. When lineBreak > 0 a '\n' follows every lineBreak
// bytes.
func AppendHex(dst, data []byte, lineBreak int) []byte {
	line := 0
	for _, c := range data {
		dst = append(dst, hexLookup[c>>4], hexLookup[c&0x0F], ' ')
		if lineBreak > 0 {
			if line++; line == lineBreak {
				dst = append(dst, '\n')
				line = 0
			}
		}
	}
	return dst
}

///////////////////////////////////////////////////////////////////////////////
// Raw Output: Single Write Per Line
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg to stderr in one call. Errors are dropped: there
// is nowhere left to report them.
func PrintWarning(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// PrintInfo writes msg to stdout in one call.
func PrintInfo(msg string) {
	_, _ = os.Stdout.WriteString(msg)
}
