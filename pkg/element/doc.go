// Package element provides the generic building blocks shared by all fuzzable
// inputs in the scanner: the single auditable key/value pair, the baseline
// mutation strategies applied to it, mutation provenance metadata, and the
// page model (links and forms) that mutated inputs can be propagated across.
//
// Concrete element types such as cookies implement the Auditable contract and
// layer their own mutation logic on top of the strategies enumerated here.
// The package itself never chooses attack payloads and never evaluates
// responses; it only describes how a payload is woven into an input.
package element
