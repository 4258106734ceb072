package bang

import "strings"

// Template placeholders, in priority order.
const (
	PlaceholderBraces = "{q}"
	PlaceholderPrintf = "%s"
)

const upperhex = "0123456789ABCDEF"

// BuildURL substitutes term into template. The term is percent-encoded
// first. Rules, first applicable wins:
//
//	"{q}" present      → first "{q}" replaced
//	"%s" present       → first "%s" replaced
//	ends with "="      → term appended
//	contains "?"       → "q=<term>" appended as a new query parameter
//	otherwise          → "?q=<term>" appended
//
// The result is not validated as a URL.
func BuildURL(template, term string) string {
	encoded := EncodeComponent(term)

	switch {
	case strings.Contains(template, PlaceholderBraces):
		return strings.Replace(template, PlaceholderBraces, encoded, 1)
	case strings.Contains(template, PlaceholderPrintf):
		return strings.Replace(template, PlaceholderPrintf, encoded, 1)
	case strings.HasSuffix(template, "="):
		return template + encoded
	case strings.Contains(template, "?"):
		sep := "&"
		if strings.HasSuffix(template, "?") || strings.HasSuffix(template, "&") {
			sep = ""
		}
		return template + sep + "q=" + encoded
	default:
		return template + "?q=" + encoded
	}
}

// EncodeComponent percent-encodes s for a URL query component. Every byte
// outside A-Z a-z 0-9 and - _ . ! ~ * ' ( ) is escaped, so a space becomes
// %20 rather than "+".
func EncodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
