package cookie

import (
	"fmt"
	"net/url"
	"strings"
)

// Encode escapes a cookie name or value for the wire: the characters
// '+', ';', '%', '=' and NUL are percent-escaped, then literal spaces
// become '+'.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+', ';', '%', '=', 0:
			fmt.Fprintf(&b, "%%%02X", c)
		case ' ':
			b.WriteByte('+')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Decode reverses Encode: '+' becomes a space, then percent escapes are
// resolved. Malformed escapes leave the input untouched rather than failing;
// wire data from real servers is rarely clean.
func Decode(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	out, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return out
}
