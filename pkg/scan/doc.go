// Package scan layers cookie-specific mutation and audit policy on top of
// the generic element capabilities.
//
// Mutations turns one cookie and one payload into an ordered, deduplicated
// variant sequence: the baseline strategy variants, an optional
// parameter-flip variant (the payload becomes the cookie name), and — in
// extensive mode — clones of the attached page's links and forms carrying
// each cookie variant in their dispatch options.
//
// Auditor applies the scan-wide policy around that: cookies whose names are
// excluded are skipped before any mutation happens, and surviving variants
// are dispatched concurrently. Cookie variants always go out as GET requests
// with the mutated pair in the cookie header and the query channel cleared.
//
// All policy lives in an explicit Options value handed to the auditor; the
// package keeps no process-wide state.
package scan
