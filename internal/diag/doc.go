// Package diag defines the diagnostic model shared by every phase of
// the compiler front-end.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by source loading and the analysis passes.
//   - Offer light-weight utilities (Reporter, Bag) that let producers
//     emit diagnostics without coupling to storage or formatting.
//   - Make "an error was reported" part of the type surface via
//     ErrorGuaranteed, and model unrecoverable conditions via
//     FatalError.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration.
// Rendering lives in internal/diagfmt; orchestration lives in
// internal/driver and the session layer.
//
// # Data model
//
// Diagnostic is the central record: a Severity (Note, Warning, Error),
// a stable Code, a human message, the primary source.Span and optional
// secondary Notes. Notes should add new context ("declared here")
// rather than repeat the message.
//
// # Emitting diagnostics
//
// Phases emit through a Reporter, usually via ReportBuilder
// (ReportError / ReportWarning / ReportNote followed by WithNote and
// Emit), or directly through Bag.Emit when they need the
// ErrorGuaranteed token. Bag deduplicates identical
// (severity, code, span, message) findings so one root cause does not
// flood the output, and keeps an error count that survives both
// deduplication and the bag's size limit.
//
// # Fatal aborts
//
// Fatal raises a FatalError that unwinds to the session entry point,
// where it is converted into ErrorGuaranteed. Nothing between the raise
// site and that boundary may catch it.
package diag
