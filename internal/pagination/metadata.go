package pagination

// Info contains the pagination metadata returned alongside every page of records.
type Info struct {
	TotalCount  int `json:"total_count"  yaml:"total_count"`
	CurrentPage int `json:"current_page" yaml:"current_page"`
	PerPage     int `json:"per_page"     yaml:"per_page"`
	TotalPages  int `json:"total_pages"  yaml:"total_pages"`
}

// HasPrevious reports whether a page exists before the current one.
func (i Info) HasPrevious() bool {
	return i.CurrentPage > 1
}

// HasNext reports whether a page exists after the current one.
func (i Info) HasNext() bool {
	return i.CurrentPage < i.TotalPages
}

// Summary is the "showing Start-End of Total" line shown above the list.
type Summary struct {
	Total int
	Start int
	End   int
}

// NewSummary computes the 1-based inclusive range of items on the current page.
// Start is 0 when there are no items at all.
func NewSummary(info Info) Summary {
	start := 0
	if info.TotalCount > 0 {
		start = (info.CurrentPage-1)*info.PerPage + 1
	}

	end := min(info.TotalCount, start+info.PerPage-1)

	return Summary{
		Total: info.TotalCount,
		Start: start,
		End:   end,
	}
}

// IsEmpty reports whether the summary describes an empty result set.
func (s Summary) IsEmpty() bool {
	return s.Total == 0
}
