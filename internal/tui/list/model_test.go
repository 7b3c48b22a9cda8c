package listview_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/rshade/factsview/internal/tui/list"
)

// threeLine renders every item as a three-line card.
func threeLine(item string, selected bool) string {
	marker := " "
	if selected {
		marker = ">"
	}
	return fmt.Sprintf("%s+---+\n%s|%s|\n%s+---+", marker, marker, item, marker)
}

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%03d", i)
	}
	return out
}

func TestNew(t *testing.T) {
	m := listview.New(items(5), 20, 80, threeLine)

	assert.Equal(t, 5, m.ItemCount())
	assert.Equal(t, 20, m.Height())
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.Offset())
	assert.Nil(t, m.Init())
}

func TestView_FitsViewport(t *testing.T) {
	m := listview.New(items(10), 9, 80, threeLine)

	view := m.View()
	assert.Equal(t, 9, strings.Count(view, "\n")+1)
	assert.Contains(t, view, "000")
	assert.Contains(t, view, "002")
	assert.NotContains(t, view, "003")
}

func TestView_Empty(t *testing.T) {
	m := listview.New([]string{}, 9, 80, threeLine)
	assert.Empty(t, m.View())
	assert.Nil(t, m.SelectedItem())
}

func TestView_OversizedFirstItemStillDrawn(t *testing.T) {
	m := listview.New(items(2), 1, 80, threeLine)
	assert.Contains(t, m.View(), "000")
	assert.NotContains(t, m.View(), "001")
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name         string
		keys         []tea.KeyMsg
		wantSelected int
		wantOffset   int
	}{
		{
			name:         "down once",
			keys:         []tea.KeyMsg{{Type: tea.KeyDown}},
			wantSelected: 1,
			wantOffset:   0,
		},
		{
			name:         "down past viewport scrolls",
			keys:         []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}},
			wantSelected: 3,
			wantOffset:   1,
		},
		{
			name:         "up at top stays",
			keys:         []tea.KeyMsg{{Type: tea.KeyUp}},
			wantSelected: 0,
			wantOffset:   0,
		},
		{
			name:         "vim keys",
			keys:         []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'j'}}, {Type: tea.KeyRunes, Runes: []rune{'j'}}, {Type: tea.KeyRunes, Runes: []rune{'k'}}},
			wantSelected: 1,
			wantOffset:   0,
		},
		{
			name:         "end",
			keys:         []tea.KeyMsg{{Type: tea.KeyEnd}},
			wantSelected: 9,
			wantOffset:   7,
		},
		{
			name:         "end then home",
			keys:         []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyHome}},
			wantSelected: 0,
			wantOffset:   0,
		},
		{
			name:         "page down",
			keys:         []tea.KeyMsg{{Type: tea.KeyPgDown}},
			wantSelected: 3,
			wantOffset:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := listview.New(items(10), 9, 80, threeLine)
			for _, k := range tt.keys {
				_, cmd := m.Update(k)
				assert.Nil(t, cmd)
			}
			assert.Equal(t, tt.wantSelected, m.Selected())
			assert.Equal(t, tt.wantOffset, m.Offset())
			assert.Contains(t, m.View(), fmt.Sprintf("|%03d|", tt.wantSelected))
		})
	}
}

func TestScrollToTop(t *testing.T) {
	m := listview.New(items(10), 9, 80, threeLine)
	m.SetSelected(8)
	require.NotZero(t, m.Offset())

	m.ScrollToTop()
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.Offset())
}

func TestSetItems_ResetsSelection(t *testing.T) {
	m := listview.New(items(10), 9, 80, threeLine)
	m.SetSelected(5)

	m.SetItems(items(2))
	assert.Equal(t, 2, m.ItemCount())
	assert.Equal(t, 0, m.Selected())
	require.NotNil(t, m.SelectedItem())
	assert.Equal(t, "000", *m.SelectedItem())
}

func TestSetSelected_Clamps(t *testing.T) {
	m := listview.New(items(3), 9, 80, threeLine)

	m.SetSelected(-4)
	assert.Equal(t, 0, m.Selected())

	m.SetSelected(40)
	assert.Equal(t, 2, m.Selected())
}

func TestWindowSizeMsg(t *testing.T) {
	m := listview.New(items(10), 9, 80, threeLine)
	m.SetSelected(2)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 3})
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 40, m.Width())
	assert.Equal(t, 2, m.Offset())
}
