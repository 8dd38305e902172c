package pure

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelCase converts delimiter-separated tokens into camelCase: every run of
// hyphens, underscores, or whitespace is removed and the character following
// the run is uppercased (a trailing run contributes nothing), then the first
// character of the whole result is lowercased. All other characters pass
// through unchanged; no locale-aware casing.
func CamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingUpper := false
	for _, r := range s {
		if isDelimiter(r) {
			pendingUpper = true
			continue
		}
		if pendingUpper {
			b.WriteRune(unicode.ToUpper(r))
			pendingUpper = false
		} else {
			b.WriteRune(r)
		}
	}

	out := b.String()
	if out == "" {
		return out
	}
	first, size := utf8.DecodeRuneInString(out)
	return string(unicode.ToLower(first)) + out[size:]
}

func isDelimiter(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}
