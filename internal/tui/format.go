package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats counts with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousand separators, e.g. 18248 -> "18,248".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
