// Package transport is the HTTP client used to dispatch audit requests. It
// accepts cookie and header parameters, never follows redirects, and records
// per-request timing.
package transport
