package pagination

import "strconv"

// windowRadius is the number of page buttons shown on each side of the current page.
const windowRadius = 2

// Button labels for the edge buttons.
const (
	FirstPageLabel = "First page"
	LastPageLabel  = "Last page"
)

// Button is a single pagination control. Page is the page it navigates to.
type Button struct {
	Page   int
	Label  string
	Active bool
	Hidden bool
}

// Controls is the full pagination bar: an edge button on each side of a
// window of numbered page buttons.
type Controls struct {
	First Button
	Pages []Button
	Last  Button
}

// Window returns the inclusive page range shown as numbered buttons.
// The range is empty (from > to) when TotalPages is 0.
//
//nolint:nonamedreturns // Named returns document which bound is which.
func Window(info Info) (from, to int) {
	from = max(info.CurrentPage-windowRadius, 1)
	to = min(info.CurrentPage+windowRadius, info.TotalPages)
	return from, to
}

// NewControls builds the pagination bar for info. The first-page button is
// hidden on page 1 and the last-page button is hidden on the last page.
func NewControls(info Info) Controls {
	from, to := Window(info)

	pages := make([]Button, 0, max(to-from+1, 0))
	for p := from; p <= to; p++ {
		pages = append(pages, Button{
			Page:   p,
			Label:  strconv.Itoa(p),
			Active: p == info.CurrentPage,
		})
	}

	return Controls{
		First: Button{
			Page:   1,
			Label:  FirstPageLabel,
			Hidden: info.CurrentPage == 1,
		},
		Pages: pages,
		Last: Button{
			Page:   info.TotalPages,
			Label:  LastPageLabel,
			Hidden: info.CurrentPage == info.TotalPages,
		},
	}
}

// Buttons returns every button in display order, hidden ones included.
func (c Controls) Buttons() []Button {
	buttons := make([]Button, 0, len(c.Pages)+2) //nolint:mnd // First and last buttons.
	buttons = append(buttons, c.First)
	buttons = append(buttons, c.Pages...)
	buttons = append(buttons, c.Last)
	return buttons
}

// Visible returns the buttons a user can act on, in display order.
func (c Controls) Visible() []Button {
	all := c.Buttons()
	visible := make([]Button, 0, len(all))
	for _, b := range all {
		if !b.Hidden {
			visible = append(visible, b)
		}
	}
	return visible
}
