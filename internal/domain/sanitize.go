package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxCellRunes caps imported display strings.
const maxCellRunes = 255

// SanitizeCell neutralizes spreadsheet formula injection in a value
// coming from a bulk import: values whose first character is one of
// = + - @ | % get a leading apostrophe, control characters are
// stripped, and the result is capped at 255 runes. Applied to display
// strings only, never to subnet or VLAN fields.
func SanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '|', '%':
		s = "'" + s
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	if utf8.RuneCountInString(s) > maxCellRunes {
		s = string([]rune(s)[:maxCellRunes])
	}
	return s
}
