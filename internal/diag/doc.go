// Package diag defines the diagnostic model shared by the lexer, the token
// stream and the driver.
//
// Diagnostic is the central record: a Severity, a numeric Code with a stable
// string ID (LEX1001, SYN2001, IO4001), a short message, the primary span and
// optional notes. Producers emit through a Reporter so they do not depend on
// storage; BagReporter collects into a Bag which supports a limit, sorting
// and deduplication.
//
// Package diag does not render anything. Pretty and JSON output live in
// internal/diagfmt.
package diag
