// Package logging builds the zerolog loggers used across factsview.
//
// The interactive view owns the terminal, so the default destination is a
// log file. Console output is used with --debug or when the file cannot be
// opened. Every event logged with a context carries that context's trace ID.
package logging
