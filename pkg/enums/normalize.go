package enums

import (
	"strings"
	"unicode/utf8"
)

// inputLength counts characters. The rune count never exceeds the byte
// count, so inputs within the byte limit skip the rune walk entirely.
func inputLength(s string) int {
	if len(s) <= MaxInputLength {
		return len(s)
	}
	return utf8.RuneCountInString(s)
}

// normalizeKey lowercases s and collapses every run of '-', ' ' and '_' into
// a single '_'. Member values at cache build and query strings at lookup go
// through the same function, so cache keys and lookup keys cannot diverge.
func normalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	sep := false
	for _, r := range strings.ToLower(s) {
		switch r {
		case '-', ' ', '_':
			if !sep {
				b.WriteByte('_')
			}
			sep = true
		default:
			b.WriteRune(r)
			sep = false
		}
	}
	return b.String()
}
