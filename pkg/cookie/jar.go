package cookie

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// FromJarFile reads a Netscape-style cookiejar file and returns one Cookie
// per valid line, all owned by ownerURL.
func FromJarFile(path, ownerURL string) ([]*Cookie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cookiejar: %w", err)
	}
	defer f.Close()

	return FromJar(f, ownerURL)
}

// FromJar parses cookiejar lines from r. Blank and '#'-prefixed lines are
// ignored and structurally broken lines (fewer than six tab-separated
// fields) are skipped silently.
//
// The expected columns are domain, flag, path, secure, expires, name,
// value. The expires column is optional: when the field in its slot fails to
// parse as a timestamp, the line is treated as the six-column form and the
// name/value fields shift left by one.
func FromJar(r io.Reader, ownerURL string) ([]*Cookie, error) {
	var out []*Cookie

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 6 {
			continue
		}

		var (
			expires *time.Time
			name    string
			value   string
		)
		if t, err := ParseTime(fields[4]); err == nil {
			expires = &t
			name = fields[5]
			if len(fields) > 6 {
				value = fields[6]
			}
		} else {
			// Field-shift fallback for lines without an expiry column.
			name = fields[4]
			value = fields[5]
		}

		attrs := map[string]any{
			"name":   name,
			"value":  value,
			"domain": fields[0],
			"path":   fields[2],
			"secure": fields[3] == "TRUE",
		}
		if expires != nil {
			attrs["expires"] = *expires
		}

		c, err := New(ownerURL, attrs)
		if err != nil {
			continue
		}
		out = append(out, c)
	}

	return out, scanner.Err()
}
