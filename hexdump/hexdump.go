// Package hexdump renders byte windows as classic offset/hex/ASCII dumps.
// It backs the mock backend's inspection output and the dolphin backend's
// debug logging.
package hexdump

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// Options defines options for customizing the hexdump output
type Options struct {
	// BytesPerLine defines the number of bytes to display per line.
	// Defaults to 16.
	BytesPerLine int

	// StartOffset is the address printed for the first byte.
	StartOffset uint64

	// HideASCII suppresses the ASCII column.
	HideASCII bool

	// Color renders the offset column with ANSI color. Leave off for
	// output that gets compared or logged to files.
	Color bool
}

func (o Options) bytesPerLine() int {
	if o.BytesPerLine <= 0 {
		return 16
	}
	return o.BytesPerLine
}

// Dump renders data as a hexdump.
func Dump(data []byte, opts Options) string {
	present := make([]bool, len(data))
	for i := range present {
		present[i] = true
	}
	return DumpSparse(data, present, opts)
}

// DumpSparse renders data where only some bytes are meaningful; bytes whose
// present flag is false render as "..". Used for sparse mock memory.
func DumpSparse(data []byte, present []bool, opts Options) string {
	per := opts.bytesPerLine()
	var sb strings.Builder

	for line := 0; line < len(data); line += per {
		end := line + per
		if end > len(data) {
			end = len(data)
		}

		offset := fmt.Sprintf("%08X", opts.StartOffset+uint64(line))
		if opts.Color {
			offset = coloransi.Foreground(coloransi.BrightBlack, offset)
		}
		sb.WriteString(offset)
		sb.WriteString("  ")

		for i := line; i < line+per; i++ {
			if i >= end {
				sb.WriteString("   ")
				continue
			}
			if present[i] {
				fmt.Fprintf(&sb, "%02X ", data[i])
			} else {
				sb.WriteString(".. ")
			}
		}

		if !opts.HideASCII {
			sb.WriteString(" |")
			for i := line; i < end; i++ {
				sb.WriteByte(asciiByte(data[i], present[i]))
			}
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func asciiByte(b byte, present bool) byte {
	if !present {
		return ' '
	}
	if b < 0x80 && unicode.IsPrint(rune(b)) {
		return b
	}
	return '.'
}
