// Package pagination provides the page arithmetic behind the list view.
//
// This package contains the pure pagination logic shared by the interactive
// and plain renderers, including:
//   - Info: server-supplied pagination metadata
//   - Summary: the 1-based inclusive range of items currently shown
//   - Controls: first/last buttons and the window of page-number buttons
//
// Nothing here validates Info: the server owns the pagination invariants and
// the client renders whatever it is given.
package pagination
