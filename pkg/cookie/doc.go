// Package cookie models one HTTP cookie as a fuzzable scanner input.
//
// A Cookie is a single auditable name/value pair plus the usual metadata
// attributes (domain, path, expires, secure, httponly, ...). Instances are
// built either directly from an attribute map or through one of the parsers:
//
//   - FromJar / FromJarFile — Netscape-style tab-delimited cookiejar files
//   - FromSetCookie / FromSetCookies — raw Set-Cookie strings
//   - FromHeaders / FromDocument / FromResponse — extraction from HTTP
//     responses, including <meta http-equiv="set-cookie"> tags in HTML
//
// Construction normalizes the raw attributes: defaults are filled in, the
// value is decoded from its wire form, and missing domain/path are derived
// from the owner URL. The original input pair is snapshotted once at the end
// of construction and never mutated afterwards, so callers can always detect
// drift from the discovered value.
//
// # Error Handling
//
// Parsers report failures through the sentinel errors in errors.go
// (ErrTimeParse, ErrMalformedSetCookie, ErrNoSuchAttribute), matchable with
// errors.Is. The extraction wrappers deliberately convert any parse failure
// into an empty result; batch Set-Cookie parsing instead surfaces the first
// failure and returns no cookies at all.
package cookie
