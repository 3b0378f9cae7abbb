// Package diag defines the diagnostic model shared by the scanner and its
// drivers.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning, Error; only errors count toward the total.
//   - Code – numeric identifier with a stable string form (LEX1001 ...).
//   - Message – the exact text shown to the user.
//   - Primary – byte span of the offending source.
//   - Loc – line/column location, or nil when the problem has no position
//     (an unterminated comment is reported at end of input, not at a line).
//
// Lexical diagnostics are built only through the typed constructors in
// lexical.go, one per error kind, so every message follows its template.
//
// # Emitting diagnostics
//
// Producers depend on the Reporter interface. Implementations:
//
//   - ErrorReporter – prints "*** Error line N." blocks and counts errors.
//   - BagReporter – stores diagnostics in a Bag for later formatting.
//   - MultiReporter – fan-out to several reporters.
//   - ReportBuilder – attaches notes before a single Report call.
//
// Error totals live in a Counter that the caller creates and shares between
// reporters; there is no package-level state, so tests get a fresh count
// by constructing a new Counter.
//
// Rendering in other formats (pretty, JSON, SARIF) lives in internal/diagfmt.
package diag
