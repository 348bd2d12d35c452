// Package diag defines the diagnostic model used by the validation pass and
// the inspection CLI.
//
// Diagnostic is the central record: Severity, a stable numeric Code with an
// "AST####" string form, a short Message, the Primary source.Location and
// optional Notes pointing at related locations.
//
// Passes emit through a Reporter (usually BagReporter); Bag bounds the count,
// sorts by source.Compare order and deduplicates. Rendering lives in
// internal/diagfmt.
package diag
