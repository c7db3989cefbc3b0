// Package pass runs named analysis passes over a single artifact value.
//
// A Sequence holds passes in registration order. Run prints a header for the
// artifact, then for each pass either a "running" marker followed by the
// pass's own output, or a "skipped" marker when the configured Ignorer says
// so. Nothing is recovered: a panicking pass aborts the whole run.
//
// The Ignorer handed to NewSequence is only read, never mutated, and must
// stay valid for as long as the sequence is used. It may be shared between
// sequences running on different goroutines; a Sequence itself must not be.
package pass
