package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/factsview/internal/facts"
	"github.com/rshade/factsview/internal/pagination"
)

// noCursor disables the button and suggestion cursors.
const noCursor = -1

// Renderer turns plain list data into text. Implementations never fetch or
// mutate anything; they only draw what they are given.
type Renderer interface {
	// Record draws one record card at the given width.
	Record(rec facts.Record, selected bool, width int) string
	// Summary draws the "showing start-end of total" line.
	Summary(s pagination.Summary) string
	// Controls draws the pagination bar. cursor indexes Controls.Visible()
	// and is noCursor when the bar is not focused.
	Controls(c pagination.Controls, cursor int) string
	// Suggestions draws the autocomplete list. highlighted is noCursor when
	// nothing is highlighted.
	Suggestions(items []string, highlighted int) string
	// PageSize draws the page-size selector.
	PageSize(sizes []int, current int, focused bool) string
}

// NewRenderer returns the renderer for the given output mode.
func NewRenderer(mode OutputMode) Renderer {
	if mode == OutputModePlain {
		return PlainRenderer{}
	}
	return StyledRenderer{}
}

// RenderPage draws a full page of results: summary, cards, and pagination bar.
func RenderPage(r Renderer, page *facts.Page, width int) string {
	sections := []string{r.Summary(pagination.NewSummary(page.Pagination))}
	for _, rec := range page.Records {
		sections = append(sections, r.Record(rec, false, width))
	}
	sections = append(sections, r.Controls(pagination.NewControls(page.Pagination), noCursor))
	return strings.Join(sections, "\n")
}

// StyledRenderer draws with lipgloss.
type StyledRenderer struct{}

// Record draws a bordered card with the text on top and author and upvotes below.
func (StyledRenderer) Record(rec facts.Record, selected bool, width int) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	inner := max(width-borderPadding*2, 10) //nolint:mnd // Narrowest readable card.

	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		AuthorStyle.Render(rec.AuthorName()),
		"  ",
		UpvotesStyle.Render("▲ "+FormatCount(rec.Upvotes)),
	)
	body := lipgloss.NewStyle().Width(inner).Render(rec.Text)

	return style.Width(inner + borderPadding).Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

// Summary draws the range line.
func (StyledRenderer) Summary(s pagination.Summary) string {
	return LabelStyle.Render("Showing ") +
		ValueStyle.Render(FormatCount(s.Start)+"–"+FormatCount(s.End)) +
		LabelStyle.Render(" of ") +
		ValueStyle.Render(FormatCount(s.Total))
}

// Controls draws the pagination bar. Hidden buttons keep their width so the
// numbered buttons do not shift when an edge button disappears.
func (StyledRenderer) Controls(c pagination.Controls, cursor int) string {
	focusedPage, focusedLabel := focusedButton(c, cursor)

	parts := make([]string, 0, len(c.Pages)+2) //nolint:mnd // First and last buttons.
	for _, b := range c.Buttons() {
		if b.Hidden {
			parts = append(parts, ButtonStyle.Render(strings.Repeat(" ", lipgloss.Width(b.Label))))
			continue
		}
		style := ButtonStyle
		switch {
		case b.Page == focusedPage && b.Label == focusedLabel:
			style = FocusedButtonStyle
		case b.Active:
			style = ActiveButtonStyle
		}
		parts = append(parts, style.Render(b.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Suggestions draws one option per line.
func (StyledRenderer) Suggestions(items []string, highlighted int) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, item := range items {
		if i == highlighted {
			lines[i] = HighlightedSuggestionStyle.Render(item)
			continue
		}
		lines[i] = SuggestionStyle.Render(item)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// PageSize draws the selector as "Per page: ‹ 10 ›".
func (StyledRenderer) PageSize(_ []int, current int, focused bool) string {
	label := LabelStyle.Render("Per page: ")
	if focused {
		label = FocusedLabelStyle.Render("Per page: ")
	}
	return label + ValueStyle.Render("‹ "+strconv.Itoa(current)+" ›")
}

// PlainRenderer draws unstyled text suitable for pipes and logs.
type PlainRenderer struct{}

// Record draws the text followed by an indented author/upvotes line.
func (PlainRenderer) Record(rec facts.Record, selected bool, _ int) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	return fmt.Sprintf("%s%s\n    — %s (%s upvotes)", marker, rec.Text, rec.AuthorName(), FormatCount(rec.Upvotes))
}

// Summary draws the range line.
func (PlainRenderer) Summary(s pagination.Summary) string {
	return fmt.Sprintf("Showing %s-%s of %s", FormatCount(s.Start), FormatCount(s.End), FormatCount(s.Total))
}

// Controls draws visible buttons only; the current page is bracketed and the
// cursor, if any, is marked with '>'.
func (PlainRenderer) Controls(c pagination.Controls, cursor int) string {
	focusedPage, focusedLabel := focusedButton(c, cursor)

	var parts []string
	for _, b := range c.Visible() {
		label := b.Label
		if b.Active {
			label = "[" + label + "]"
		}
		if b.Page == focusedPage && b.Label == focusedLabel {
			label = ">" + label
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " | ")
}

// Suggestions draws one option per line.
func (PlainRenderer) Suggestions(items []string, highlighted int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		if i == highlighted {
			lines[i] = "> " + item
			continue
		}
		lines[i] = "  " + item
	}
	return strings.Join(lines, "\n")
}

// PageSize draws the selector.
func (PlainRenderer) PageSize(sizes []int, current int, focused bool) string {
	opts := make([]string, len(sizes))
	for i, size := range sizes {
		opts[i] = strconv.Itoa(size)
		if size == current {
			opts[i] = "[" + opts[i] + "]"
		}
	}
	prefix := "Per page: "
	if focused {
		prefix = "> Per page: "
	}
	return prefix + strings.Join(opts, " ")
}

// focusedButton identifies the visible button under cursor by page and label.
//
//nolint:nonamedreturns // Named returns document the pair.
func focusedButton(c pagination.Controls, cursor int) (page int, label string) {
	visible := c.Visible()
	if cursor < 0 || cursor >= len(visible) {
		return 0, ""
	}
	return visible[cursor].Page, visible[cursor].Label
}
