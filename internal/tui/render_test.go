package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/factsview/internal/facts"
	"github.com/rshade/factsview/internal/pagination"
)

func sampleRecord() facts.Record {
	return facts.Record{
		Text:    "Cats sleep 70% of their lives.",
		User:    facts.User{Name: facts.Name{First: "Kitty", Last: "Purry"}},
		Upvotes: 18248,
	}
}

func TestNewRenderer(t *testing.T) {
	assert.IsType(t, PlainRenderer{}, NewRenderer(OutputModePlain))
	assert.IsType(t, StyledRenderer{}, NewRenderer(OutputModeStyled))
	assert.IsType(t, StyledRenderer{}, NewRenderer(OutputModeInteractive))
}

func TestPlainRenderer_Record(t *testing.T) {
	r := PlainRenderer{}

	got := r.Record(sampleRecord(), false, 80)
	assert.Equal(t, "  Cats sleep 70% of their lives.\n    — Kitty Purry (18,248 upvotes)", got)

	assert.True(t, strings.HasPrefix(r.Record(sampleRecord(), true, 80), "> "))
}

func TestPlainRenderer_Summary(t *testing.T) {
	r := PlainRenderer{}

	tests := []struct {
		name    string
		summary pagination.Summary
		want    string
	}{
		{"middle page", pagination.Summary{Total: 47, Start: 21, End: 30}, "Showing 21-30 of 47"},
		{"empty", pagination.Summary{}, "Showing 0-0 of 0"},
		{"thousands", pagination.Summary{Total: 12000, Start: 1001, End: 1010}, "Showing 1,001-1,010 of 12,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Summary(tt.summary))
		})
	}
}

func TestPlainRenderer_Controls(t *testing.T) {
	r := PlainRenderer{}

	tests := []struct {
		name   string
		info   pagination.Info
		cursor int
		want   string
	}{
		{
			name:   "middle page",
			info:   pagination.Info{TotalCount: 47, CurrentPage: 3, PerPage: 10, TotalPages: 5},
			cursor: noCursor,
			want:   "First page | 1 | 2 | [3] | 4 | 5 | Last page",
		},
		{
			name:   "first page hides first button",
			info:   pagination.Info{TotalCount: 47, CurrentPage: 1, PerPage: 10, TotalPages: 5},
			cursor: noCursor,
			want:   "[1] | 2 | 3 | Last page",
		},
		{
			name:   "cursor marks the focused button",
			info:   pagination.Info{TotalCount: 47, CurrentPage: 1, PerPage: 10, TotalPages: 5},
			cursor: 3,
			want:   "[1] | 2 | 3 | >Last page",
		},
		{
			name:   "cursor out of range is ignored",
			info:   pagination.Info{TotalCount: 47, CurrentPage: 1, PerPage: 10, TotalPages: 5},
			cursor: 9,
			want:   "[1] | 2 | 3 | Last page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Controls(pagination.NewControls(tt.info), tt.cursor))
		})
	}
}

func TestPlainRenderer_SuggestionsAndPageSize(t *testing.T) {
	r := PlainRenderer{}

	assert.Equal(t, "  cat\n> car", r.Suggestions([]string{"cat", "car"}, 1))
	assert.Empty(t, r.Suggestions(nil, noCursor))

	assert.Equal(t, "Per page: [10] 25 50", r.PageSize([]int{10, 25, 50}, 10, false))
	assert.Equal(t, "> Per page: 10 25 [50]", r.PageSize([]int{10, 25, 50}, 50, true))
}

func TestStyledRenderer(t *testing.T) {
	r := StyledRenderer{}

	t.Run("record card", func(t *testing.T) {
		card := r.Record(sampleRecord(), false, 60)
		assert.Contains(t, card, "Cats sleep 70% of their lives.")
		assert.Contains(t, card, "Kitty Purry")
		assert.Contains(t, card, "18,248")
		assert.LessOrEqual(t, lipgloss.Width(card), 60)
	})

	t.Run("summary", func(t *testing.T) {
		got := r.Summary(pagination.Summary{Total: 47, Start: 21, End: 30})
		assert.Contains(t, got, "21–30")
		assert.Contains(t, got, "47")
	})

	t.Run("hidden buttons keep their width", func(t *testing.T) {
		first := r.Controls(pagination.NewControls(pagination.Info{TotalCount: 47, CurrentPage: 1, PerPage: 10, TotalPages: 5}), noCursor)
		second := r.Controls(pagination.NewControls(pagination.Info{TotalCount: 47, CurrentPage: 2, PerPage: 10, TotalPages: 5}), noCursor)

		assert.NotContains(t, first, pagination.FirstPageLabel)
		assert.Contains(t, second, pagination.FirstPageLabel)
		assert.Equal(t, lipgloss.Width(first)+lipgloss.Width(" 4 "), lipgloss.Width(second))
	})

	t.Run("suggestions", func(t *testing.T) {
		assert.Empty(t, r.Suggestions(nil, noCursor))
		got := r.Suggestions([]string{"cat", "car"}, 0)
		assert.Contains(t, got, "cat")
		assert.Contains(t, got, "car")
	})

	t.Run("page size", func(t *testing.T) {
		assert.Contains(t, r.PageSize([]int{10, 25}, 25, true), "25")
	})
}

func TestRenderPage(t *testing.T) {
	page := &facts.Page{
		Records:    []facts.Record{sampleRecord()},
		Pagination: pagination.Info{TotalCount: 1, CurrentPage: 1, PerPage: 10, TotalPages: 1},
	}

	got := RenderPage(PlainRenderer{}, page, 80)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Showing 1-1 of 1", lines[0])
	assert.Equal(t, "[1]", lines[3])
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "18,248", FormatCount(18248))
	assert.Equal(t, "1,000,000", FormatCount(1000000))
}
