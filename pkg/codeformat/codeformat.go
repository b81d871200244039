package codeformat

import (
	"fmt"
	"strings"
	"unicode"
)

// Format renders a raw code as a display string: zero-padded to digits
// characters and grouped with the default group size (3 when digits is
// divisible by 3, otherwise 4).
func Format(code, digits int) string {
	return FormatGrouped(code, digits, DefaultGroupSize(digits))
}

// FormatGrouped renders a raw code with an explicit group size. A group size
// of zero or less disables grouping and returns the canonical zero-padded
// form. Groups are filled left to right, so a trailing group may be shorter.
func FormatGrouped(code, digits, groupSize int) string {
	padded := fmt.Sprintf("%0*d", digits, code)
	if groupSize <= 0 || groupSize >= len(padded) {
		return padded
	}

	var b strings.Builder
	b.Grow(len(padded) + len(padded)/groupSize)
	for i, r := range padded {
		if i > 0 && i%groupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DefaultGroupSize returns the grouping applied by Format for a digit count.
func DefaultGroupSize(digits int) int {
	if digits%3 == 0 {
		return 3
	}
	return 4
}

// Normalize strips all whitespace from a submitted code, returning the
// canonical form used for comparison. Stripping a Format result yields
// exactly the zero-padded digit string it was rendered from.
func Normalize(code string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, code)
}
