package http

import (
	"strings"

	"github.com/tidwall/gjson"
)

const upperHex = "0123456789ABCDEF"

// EncodePathComponent percent-encodes s for use as a single path segment.
// Only ASCII letters, digits and -_.!~*'() are left as-is, so '/', '?', '#'
// and spaces can never alter the request path.
func EncodePathComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// truthyString returns the value's text when it is truthy: a non-empty
// string, a non-zero number, true, or any object/array. Otherwise "".
func truthyString(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		if r.Num == 0 {
			return ""
		}
		return r.Raw
	case gjson.True, gjson.JSON:
		return r.Raw
	default:
		return ""
	}
}

// firstTruthy returns the first truthy value among paths in body.
func firstTruthy(body []byte, paths ...string) string {
	for _, p := range paths {
		if v := truthyString(gjson.GetBytes(body, p)); v != "" {
			return v
		}
	}
	return ""
}
