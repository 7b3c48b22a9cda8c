package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/factsview/internal/pagination"
)

// View renders the current state.
func (m *ListViewModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetail()
	case ViewStateList:
		return m.renderList()
	default:
		return "Unknown state"
	}
}

func (m *ListViewModel) renderList() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Cat Facts"))
	if m.inflight > 0 {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")

	b.WriteString(m.search.View())
	b.WriteString("\n")
	if len(m.suggestions) > 0 {
		b.WriteString(m.renderer.Suggestions(m.suggestions, m.highlighted))
		b.WriteString("\n")
	}

	b.WriteString(m.renderer.PageSize(m.pageSizes, m.currentPageSize(), m.focus == focusPageSize))
	b.WriteString("    ")
	if m.loaded {
		b.WriteString(m.renderer.Summary(pagination.NewSummary(m.info)))
	} else {
		b.WriteString(SubtleStyle.Render("Loading..."))
	}
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
	case len(m.records) == 0:
		b.WriteString(SubtleStyle.Render("No results."))
		b.WriteString("\n")
	default:
		b.WriteString(m.cards.View())
		b.WriteString("\n")
	}

	if m.loaded {
		cursor := noCursor
		if m.focus == focusPagination {
			cursor = m.buttonCursor
		}
		b.WriteString("\n")
		b.WriteString(m.renderer.Controls(m.controls, cursor))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *ListViewModel) renderHelp() string {
	var help string
	switch m.focus {
	case focusSearch:
		help = "enter: search  ↑/↓: suggestions  esc: done  tab: next"
	case focusPageSize:
		help = "←/→: page size  tab: next  q: quit"
	case focusPagination:
		help = "←/→: move  enter: go to page  tab: next  q: quit"
	case focusRecords, numFocusAreas:
		help = "↑/↓: navigate  enter: details  /: search  tab: next  q: quit"
	}
	return SubtleStyle.Render(help)
}

func (m *ListViewModel) renderDetail() string {
	rec := m.cards.SelectedItem()
	if rec == nil {
		return "No record selected"
	}

	width := max(m.width-borderPadding*2, 20) //nolint:mnd // Narrowest readable box.

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("FACT DETAILS"))
	content.WriteString("\n\n")
	content.WriteString(lipgloss.NewStyle().Width(width - borderPadding*2).Render(rec.Text))
	content.WriteString("\n\n")
	content.WriteString(LabelStyle.Render("Author:  "))
	content.WriteString(ValueStyle.Render(rec.AuthorName()))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Upvotes: "))
	content.WriteString(UpvotesStyle.Render(FormatCount(rec.Upvotes)))
	content.WriteString("\n\n")
	content.WriteString(SubtleStyle.Render("esc: back  q: quit"))

	return BoxStyle.Width(width).Render(content.String())
}
