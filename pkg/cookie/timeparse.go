package cookie

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts accepted for cookie expiry fields, tried in order. Covers the
// RFC 1123/850/ANSI C trio required for HTTP dates plus the legacy
// hyphenated Netscape form still emitted by some servers.
var expiryLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
	"Mon, 02-Jan-2006 15:04:05 MST",
	"Mon, 02-Jan-06 15:04:05 MST",
}

// ParseTime interprets s either as positive Unix epoch seconds or as an
// HTTP/RFC-style date string. Failure to match both interpretations yields
// ErrTimeParse; the cookiejar parser uses that failure as the signal for its
// field-shift fallback.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrTimeParse)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > 0 {
			return time.Unix(n, 0).UTC(), nil
		}
		return time.Time{}, fmt.Errorf("%w: non-positive epoch %q", ErrTimeParse, s)
	}

	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrTimeParse, s)
}
