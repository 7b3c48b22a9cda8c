// Package facts is the HTTP client for the records and autocomplete API.
//
// The API exposes two GET endpoints:
//   - records:      {base}?page=N&per-page=N[&q=text] -> {"records": [...], "_pagination": {...}}
//   - autocomplete: {base}?q=text -> ["suggestion", ...]
//
// Every failure is reported as either ErrTransport or ErrDecode so callers can
// log them uniformly.
package facts
