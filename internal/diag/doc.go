// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: severity, compact numeric Code with a
// stable string form (codes.go), a short message, the primary source.Span,
// optional Notes for secondary context, and optional Fixes.
//
// A Fix is a data-only correction: title, coarse Kind, Applicability
// (confidence level), and concrete TextEdits. TextEdit.OldText acts as a
// guard the fix engine checks before applying an edit. Rendering lives in
// internal/diagfmt; applying fixes lives in internal/fix.
//
// Phases emit through a Reporter so producers stay decoupled from storage.
// BagReporter aggregates into a Bag, which supports sorting, deduplication
// and merging; ReportBuilder chains WithNote/WithFix before a single Emit.
// Keep the model deterministic: diagnostics are serialized for caching and
// golden tests.
package diag
