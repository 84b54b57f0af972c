package cookie

import (
	"fmt"
	"strconv"
	"strings"
)

// FromSetCookie parses one Set-Cookie style string. The first ';'-delimited
// segment is the name=value pair; subsequent segments are case-insensitive
// attributes. An unparsable Expires attribute is a hard error here, unlike
// the cookiejar fallback.
func FromSetCookie(ownerURL, s string) (*Cookie, error) {
	segments := strings.Split(s, ";")

	name, value, found := strings.Cut(strings.TrimSpace(segments[0]), "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedSetCookie, s)
	}

	attrs := map[string]any{
		"name":  Decode(name),
		"value": value, // decoded during normalization
	}

	for _, segment := range segments[1:] {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		k, v, _ := strings.Cut(segment, "=")
		v = strings.TrimSpace(v)

		switch strings.ToLower(strings.TrimSpace(k)) {
		case "secure":
			attrs["secure"] = true
		case "httponly":
			attrs["httponly"] = true
		case "path":
			attrs["path"] = v
		case "domain":
			attrs["domain"] = v
		case "expires":
			t, err := ParseTime(v)
			if err != nil {
				return nil, err
			}
			attrs["expires"] = t
		case "max-age":
			if n, err := strconv.Atoi(v); err == nil {
				attrs["max_age"] = n
			}
		case "comment":
			attrs["comment"] = v
		case "commenturl":
			attrs["comment_url"] = v
		case "version":
			if n, err := strconv.Atoi(v); err == nil {
				attrs["version"] = n
			}
		case "port":
			attrs["port"] = v
		case "discard":
			attrs["discard"] = true
		}
	}

	return New(ownerURL, attrs)
}

// FromSetCookies parses a batch of Set-Cookie strings, deduplicated by exact
// string identity before parsing. The batch is all-or-nothing: the first
// parse failure aborts it and no cookies are returned alongside the error.
func FromSetCookies(ownerURL string, values []string) ([]*Cookie, error) {
	seen := make(map[string]struct{}, len(values))
	var out []*Cookie

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}

		c, err := FromSetCookie(ownerURL, v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}
