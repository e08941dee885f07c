package xmladiscover

import (
	"fmt"
	"strings"
	"unicode"
)

// EncodeElementName turns a column name into a legal XML element name by
// replacing every character that may not appear at its position with
// _xHHHH_, HHHH being the upper-case hex code of the character.
func EncodeElementName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if nameChar(r, i == 0) {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, "_x%04X_", r)
	}
	return b.String()
}

func nameChar(r rune, first bool) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	if first {
		return false
	}
	return r == '-' || r == '.' || unicode.IsDigit(r)
}
