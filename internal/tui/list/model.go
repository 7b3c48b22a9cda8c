package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RenderFunc renders an item. The selected parameter indicates whether this
// item is currently selected.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a vertically scrolling list of variable-height items.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// selected is the selected item index (0-based)
	selected int

	// offset is the index of the first item drawn
	offset int

	// height is the viewport height in lines
	height int

	// width is the viewport width in columns
	width int
}

// New creates a list of items drawn with renderFunc in a height x width viewport.
func New[T any](items []T, height, width int, renderFunc RenderFunc[T]) *Model[T] {
	return &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
	}
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Height, msg.Width)
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.pageStep())
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.pageStep())
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "j":
			m.SetSelected(m.selected + 1)
		case "k":
			m.SetSelected(m.selected - 1)
		case "g":
			m.SetSelected(0)
		case "G":
			m.SetSelected(len(m.items) - 1)
		}
	}
}

// pageStep is the number of items that fit on screen from the current offset.
func (m *Model[T]) pageStep() int {
	return max(m.fitFrom(m.offset), 1)
}

// fitFrom counts how many items starting at from fit in the viewport.
func (m *Model[T]) fitFrom(from int) int {
	used, n := 0, 0
	for i := from; i < len(m.items); i++ {
		h := m.itemHeight(i)
		if n > 0 && used+h > m.height {
			break
		}
		used += h
		n++
	}
	return n
}

func (m *Model[T]) itemHeight(i int) int {
	return lipgloss.Height(m.renderFunc(m.items[i], i == m.selected))
}

// ensureVisible moves offset so the selected item is on screen.
func (m *Model[T]) ensureVisible() {
	if m.selected < m.offset {
		m.offset = m.selected
		return
	}
	for m.offset < m.selected && m.offset+m.fitFrom(m.offset) <= m.selected {
		m.offset++
	}
}

// View renders the items that fit in the viewport starting at offset.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	var sb strings.Builder
	used := 0
	for i := m.offset; i < len(m.items); i++ {
		rendered := m.renderFunc(m.items[i], i == m.selected)
		h := lipgloss.Height(rendered)
		if i > m.offset && used+h > m.height {
			break
		}
		if i > m.offset {
			sb.WriteString("\n")
		}
		sb.WriteString(rendered)
		used += h
	}
	return sb.String()
}

// SetItems replaces the items and resets the selection to the top.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.ScrollToTop()
}

// SetSize changes the viewport dimensions.
func (m *Model[T]) SetSize(height, width int) {
	m.height = height
	m.width = width
	m.ensureVisible()
}

// ScrollToTop selects the first item and scrolls to it.
func (m *Model[T]) ScrollToTop() {
	m.selected = 0
	m.offset = 0
}

// SetSelected selects index, capped to valid bounds.
func (m *Model[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		m.offset = 0
		return
	}
	m.selected = min(max(index, 0), len(m.items)-1)
	m.ensureVisible()
}

// ItemCount returns the number of items.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the selected item index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// Offset returns the index of the first drawn item.
func (m *Model[T]) Offset() int {
	return m.offset
}

// Height returns the viewport height.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *Model[T]) Width() int {
	return m.width
}

// SelectedItem returns the selected item, or nil if the list is empty.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
