// Package phone holds the normalization rules applied to phone numbers typed
// by bot users and entered by administrators.
package phone

import (
	"strings"
	"unicode"
)

// MinSearchDigits is the shortest digit sequence the bot will look up.
const MinSearchDigits = 10

// Digits returns the decimal digits of s folded to ASCII 0-9, dropping every
// other character. Digits from any script count, so "７９９" and "٧٩٩" both
// yield "799".
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := digitValue(r); ok {
			b.WriteByte('0' + d)
		}
	}
	return b.String()
}

// IsSearchable reports whether s carries enough digits to be looked up.
func IsSearchable(s string) bool {
	return len(Digits(s)) >= MinSearchDigits
}

// digitValue returns the numeric value of a decimal digit rune. Unicode
// encodes every decimal digit set as a contiguous 0-9 run, and adjacent
// sets are whole runs of ten, so the value is the offset into the run mod 10.
func digitValue(r rune) (byte, bool) {
	if r >= '0' && r <= '9' {
		return byte(r - '0'), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	start := r
	for unicode.Is(unicode.Nd, start-1) {
		start--
	}
	return byte((r - start) % 10), true
}
