// Package diag defines the diagnostic model shared by the naming and rendering
// components.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     while naming pitch classes or laying out a fretboard.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage, logging or formatting.
//
// # Scope
//
// Package diag does not perform any formatting beyond the single-line short
// form, and no IO. Pretty and JSON rendering live in internal/diagfmt; the
// zap-backed reporter lives in internal/logging.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Subject – what the finding is about ("chord[0]", "glyphs.root", ...).
//   - Notes – optional secondary messages for additional context.
//
// # Severity policy
//
// Naming problems and glyph-width mismatches degrade gracefully: the producer
// falls back to a best-effort value and reports a Warning. Structural problems
// (no root, invalid modulus, negative frets) are reported as Errors and the
// producer also returns a Go error; nothing is rendered in that case.
//
// # Emitting diagnostics
//
// Producers hold a Reporter. ReportError/ReportWarning/ReportInfo build a
// ReportBuilder; chain WithNote before calling Emit. BagReporter aggregates
// into a Bag, DedupReporter drops repeats, MultiReporter fans out.
package diag
