// Package pad left-pads strings to a minimum byte length.
package pad

import "strings"

// spaces backs the fast path for short space padding.
const spaces = "                    "

// Left returns s prefixed with enough copies of fill to make it at least
// length bytes long. Lengths are counted in bytes, but each fill rune counts
// as a single repetition regardless of its encoded width. A fill of 0 pads
// with spaces. If s is already long enough it is returned unchanged.
func Left(s string, length int, fill rune) string {
	if length <= len(s) {
		return s
	}
	deficit := length - len(s)

	if fill == 0 {
		fill = ' '
	}

	if fill == ' ' && deficit < len(spaces) {
		return padSpaces(s, deficit)
	}

	return padRepeat(s, deficit, fill)
}

func padSpaces(s string, n int) string {
	return spaces[:n] + s
}

// padRepeat builds the padding by halving n and appending blocks of
// repeated fill, so the fill is written in a handful of bulk writes.
func padRepeat(s string, n int, fill rune) string {
	unit := string(fill)

	var b strings.Builder
	b.Grow(n*len(unit) + len(s))

	for n > 0 {
		if n&1 == 1 {
			b.WriteString(unit)
		}
		n >>= 1
		if n > 0 {
			b.WriteString(strings.Repeat(unit, n))
		}
	}

	b.WriteString(s)
	return b.String()
}
