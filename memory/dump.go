package memory

import (
	"fmt"
	"io"
	"strings"
)

const (
	DUMP_WIDTH       = 16  // Bytes per dump row.
	DUMP_PLACEHOLDER = '_' // Stand-in for non-printable bytes.
)

// printable returns the ASCII form of value, or DUMP_PLACEHOLDER.
func printable(value uint8) byte {
	if value >= 0x20 && value <= 0x7e {
		return value
	}
	return DUMP_PLACEHOLDER
}

// Dump writes length bytes starting at address as a hex and ASCII table.
func (mem *Memory) Dump(w io.Writer, address uint32, length int) (err error) {
	data, err := mem.Slice(address, length)
	if err != nil {
		return
	}

	for row := 0; row < len(data); row += DUMP_WIDTH {
		line := data[row:min(row+DUMP_WIDTH, len(data))]

		var hex strings.Builder
		var text strings.Builder
		for n := range DUMP_WIDTH {
			if n == DUMP_WIDTH/2 {
				hex.WriteByte(' ')
			}
			if n < len(line) {
				fmt.Fprintf(&hex, " %02x", line[n])
				text.WriteByte(printable(line[n]))
			} else {
				hex.WriteString("   ")
			}
		}

		_, err = fmt.Fprintf(w, "%04x:%s |%s|\n", address+uint32(row), hex.String(), text.String())
		if err != nil {
			return
		}
	}

	return
}

// DumpString returns the Dump of a region as a string.
func (mem *Memory) DumpString(address uint32, length int) (text string, err error) {
	var sb strings.Builder
	err = mem.Dump(&sb, address, length)
	text = sb.String()
	return
}
