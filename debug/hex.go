package debug

import (
	"embd/constants"
	"embd/utils"
)

// DropHex logs prefix followed by the first constants.LogHexMaxBytes bytes
// of data as lowercase hex, one space after each byte. With lineBreak set,
// a newline follows every constants.LogHexLineBreak bytes.
func DropHex(l Level, prefix string, data []byte, lineBreak bool) {
	if !Enabled(l) {
		return
	}
	if len(data) > constants.LogHexMaxBytes {
		data = data[:constants.LogHexMaxBytes]
	}
	every := 0
	if lineBreak {
		every = constants.LogHexLineBreak
	}

	var buf [constants.LogHexMaxBytes*3 + constants.LogHexMaxBytes/constants.LogHexLineBreak + 1]byte
	out := utils.AppendHex(buf[:0], data, every)
	sink("[" + l.String() + "] " + prefix + " " + utils.B2s(out) + "\n")
}
