// Package tui implements the interactive list view and the renderers shared
// with the non-interactive commands.
//
// ListViewModel is a Bubble Tea model. Each user action turns into an
// independent fetch command; responses come back as messages in completion
// order and replace the rendered records, pagination bar, or suggestions
// wholesale. Rendering goes through the Renderer interface so the same data
// can be drawn styled inside the TUI or as plain text on a pipe.
package tui
