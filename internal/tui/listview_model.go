package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/factsview/internal/facts"
	"github.com/rshade/factsview/internal/logging"
	"github.com/rshade/factsview/internal/pagination"
	listview "github.com/rshade/factsview/internal/tui/list"
)

// Search field limits.
const (
	searchInputCharLimit = 200
	searchInputWidth     = 40
)

// ViewState represents the screen the list view is showing.
type ViewState int

const (
	// ViewStateList shows the search bar, cards, and pagination bar.
	ViewStateList ViewState = iota
	// ViewStateDetail shows a single record.
	ViewStateDetail
	// ViewStateQuitting is set just before the program exits.
	ViewStateQuitting
)

// focusArea is the control that receives key presses.
type focusArea int

const (
	focusRecords focusArea = iota
	focusSearch
	focusPageSize
	focusPagination
	numFocusAreas
)

// Fetcher is the API surface the list view needs. *facts.Client implements it.
type Fetcher interface {
	FetchPage(ctx context.Context, q facts.Query) (*facts.Page, error)
	Suggest(ctx context.Context, text string) ([]string, error)
}

// pageLoadedMsg carries the outcome of one page request.
type pageLoadedMsg struct {
	seq   uint64
	query Query
	page  *facts.Page
	err   error
}

// suggestionsLoadedMsg carries the outcome of one autocomplete request.
type suggestionsLoadedMsg struct {
	seq   uint64
	text  string
	items []string
	err   error
}

// ListViewOptions configures a ListViewModel.
type ListViewOptions struct {
	PageSizes       []int
	DefaultPageSize int
	StalePolicy     StalePolicy
	Renderer        Renderer
}

// ListViewModel is the Bubble Tea model for the interactive list view.
//
// Each user action derives a new Query and issues an independent fetch. No
// request is ever cancelled; responses are applied as they arrive, subject
// to the Sequencer's stale policy.
type ListViewModel struct {
	ctx      context.Context
	fetcher  Fetcher
	renderer Renderer
	logger   zerolog.Logger

	// View state
	state ViewState
	focus focusArea

	// query is the query of the page currently shown. Requests derive from
	// it; it only changes when a page response is applied.
	query Query
	seq   Sequencer

	// Last applied page response
	records  []facts.Record
	info     pagination.Info
	controls pagination.Controls
	loaded   bool

	// Interactive components
	cards        *listview.Model[facts.Record]
	search       textinput.Model
	committed    string
	suggestions  []string
	highlighted  int
	pageSizes    []int
	pageSizeIdx  int
	buttonCursor int

	// Loading indicator
	spinner  spinner.Model
	inflight int

	// Display configuration
	width  int
	height int
}

// NewListViewModel creates the list view. Nothing is fetched until Init.
func NewListViewModel(ctx context.Context, fetcher Fetcher, opts ListViewOptions) *ListViewModel {
	pageSizes := opts.PageSizes
	if len(pageSizes) == 0 {
		pageSizes = []int{opts.DefaultPageSize}
	}
	pageSizeIdx := 0
	for i, size := range pageSizes {
		if size == opts.DefaultPageSize {
			pageSizeIdx = i
		}
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = StyledRenderer{}
	}

	m := &ListViewModel{
		ctx:         ctx,
		fetcher:     fetcher,
		renderer:    renderer,
		logger:      logging.ComponentLogger(logging.FromContext(ctx), "tui"),
		state:       ViewStateList,
		focus:       focusRecords,
		query:       NewQuery(pageSizes[pageSizeIdx]),
		seq:         NewSequencer(opts.StalePolicy),
		search:      newSearchInput(),
		highlighted: noCursor,
		pageSizes:   pageSizes,
		pageSizeIdx: pageSizeIdx,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.cards = listview.New([]facts.Record{}, m.cardsHeight(), m.width, m.renderCard)
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = searchInputCharLimit
	ti.Width = searchInputWidth
	ti.Prompt = "Search: "
	return ti
}

// Init issues the initial fetch of page 1 with an empty query.
func (m *ListViewModel) Init() tea.Cmd {
	return m.fetchPage(NewQuery(m.currentPageSize()))
}

// Update handles messages and updates the model state.
func (m *ListViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cards.SetSize(m.cardsHeight(), m.width)
		return m, nil
	case pageLoadedMsg:
		m.handlePageLoaded(msg)
		return m, nil
	case suggestionsLoadedMsg:
		m.handleSuggestionsLoaded(msg)
		return m, nil
	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// fetchPage returns the command that requests q.
func (m *ListViewModel) fetchPage(q Query) tea.Cmd {
	seq := m.seq.NextPage()
	m.inflight++

	ctx, fetcher, req := m.ctx, m.fetcher, q.Facts()
	fetch := func() tea.Msg {
		page, err := fetcher.FetchPage(ctx, req)
		return pageLoadedMsg{seq: seq, query: q, page: page, err: err}
	}

	if m.inflight == 1 {
		return tea.Batch(fetch, m.spinner.Tick)
	}
	return fetch
}

// fetchSuggestions clears the suggestion list and, for a non-empty text,
// returns the command that requests new suggestions.
func (m *ListViewModel) fetchSuggestions(text string) tea.Cmd {
	m.clearSuggestions()

	if text == "" {
		m.seq.InvalidateSuggestions()
		return nil
	}

	seq := m.seq.NextSuggest()
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		items, err := fetcher.Suggest(ctx, text)
		return suggestionsLoadedMsg{seq: seq, text: text, items: items, err: err}
	}
}

func (m *ListViewModel) clearSuggestions() {
	m.suggestions = nil
	m.highlighted = noCursor
}

func (m *ListViewModel) handlePageLoaded(msg pageLoadedMsg) {
	m.inflight = max(m.inflight-1, 0)

	if !m.seq.AcceptPage(msg.seq) {
		m.logger.Debug().Ctx(m.ctx).
			Uint64("seq", msg.seq).
			Int("page", msg.query.Page).
			Msg("discarding stale page response")
		return
	}

	if msg.err != nil {
		m.logger.Error().Ctx(m.ctx).
			Err(msg.err).
			Int("page", msg.query.Page).
			Int("per_page", msg.query.PerPage).
			Str("query", msg.query.Text).
			Msg("fetch error")
		m.syncPageSize()
		return
	}

	m.query = msg.query
	m.records = msg.page.Records
	m.info = msg.page.Pagination
	m.controls = pagination.NewControls(m.info)
	m.loaded = true
	m.cards.SetItems(m.records)
	m.buttonCursor = m.activeButtonIndex()
	m.syncPageSize()
}

// syncPageSize points the page-size selector at the size of the page shown.
func (m *ListViewModel) syncPageSize() {
	if i := slices.Index(m.pageSizes, m.query.PerPage); i >= 0 {
		m.pageSizeIdx = i
	}
}

func (m *ListViewModel) handleSuggestionsLoaded(msg suggestionsLoadedMsg) {
	if !m.seq.AcceptSuggest(msg.seq) {
		m.logger.Debug().Ctx(m.ctx).
			Uint64("seq", msg.seq).
			Str("query", msg.text).
			Msg("discarding stale autocomplete response")
		return
	}

	if msg.err != nil {
		m.logger.Error().Ctx(m.ctx).
			Err(msg.err).
			Str("query", msg.text).
			Msg("autocomplete fetch error")
		return
	}

	m.suggestions = msg.items
	m.highlighted = noCursor
}

func (m *ListViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	if m.state == ViewStateDetail {
		return m.handleDetailKey(key)
	}

	switch key {
	case keyTab:
		return m, m.setFocus((m.focus + 1) % numFocusAreas)
	case keyShiftTab:
		return m, m.setFocus((m.focus + numFocusAreas - 1) % numFocusAreas)
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch key {
	case keyQuit:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keySlash:
		return m, m.setFocus(focusSearch)
	}

	switch m.focus {
	case focusPageSize:
		return m, m.handlePageSizeKey(key)
	case focusPagination:
		return m, m.handlePaginationKey(key)
	case focusRecords, focusSearch, numFocusAreas:
	}
	return m.handleRecordsKey(msg)
}

// setFocus moves keyboard focus. Leaving the search field with an edited
// value commits it, which clears the suggestion list.
func (m *ListViewModel) setFocus(f focusArea) tea.Cmd {
	if m.focus == f {
		return nil
	}

	if m.focus == focusSearch {
		m.search.Blur()
		if m.search.Value() != m.committed {
			m.commitSearchValue()
		}
	}

	m.focus = f
	if f == focusSearch {
		return m.search.Focus()
	}
	return nil
}

// commitSearchValue marks the field's value as committed and clears the
// suggestion list.
func (m *ListViewModel) commitSearchValue() {
	m.committed = m.search.Value()
	m.clearSuggestions()
}

func (m *ListViewModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		return m, m.setFocus(focusRecords)
	case keyDown:
		if len(m.suggestions) > 0 {
			m.highlighted = min(m.highlighted+1, len(m.suggestions)-1)
		}
		return m, nil
	case keyUp:
		if len(m.suggestions) > 0 {
			m.highlighted = max(m.highlighted-1, noCursor)
		}
		return m, nil
	case keyEnter:
		if m.highlighted >= 0 && m.highlighted < len(m.suggestions) {
			m.search.SetValue(m.suggestions[m.highlighted])
			m.search.CursorEnd()
			m.commitSearchValue()
			return m, nil
		}
		return m, m.submitSearch()
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.fetchSuggestions(m.search.Value()))
}

// submitSearch fetches page 1 for the trimmed field value and, separately,
// autocomplete suggestions for the same trimmed value.
func (m *ListViewModel) submitSearch() tea.Cmd {
	m.committed = m.search.Value()
	next := m.query.Apply(SubmitSearch{Text: m.search.Value()})
	return tea.Batch(m.fetchPage(next), m.fetchSuggestions(next.Text))
}

func (m *ListViewModel) handlePageSizeKey(key string) tea.Cmd {
	idx := m.pageSizeIdx
	switch key {
	case keyLeft, keyH:
		idx = max(idx-1, 0)
	case keyRight, keyL:
		idx = min(idx+1, len(m.pageSizes)-1)
	default:
		return nil
	}
	if idx == m.pageSizeIdx {
		return nil
	}

	m.pageSizeIdx = idx
	return m.fetchPage(m.query.Apply(ChangePageSize{PerPage: m.currentPageSize()}))
}

func (m *ListViewModel) handlePaginationKey(key string) tea.Cmd {
	if !m.loaded {
		return nil
	}
	visible := m.controls.Visible()
	switch key {
	case keyLeft, keyH:
		m.buttonCursor = max(m.buttonCursor-1, 0)
	case keyRight, keyL:
		m.buttonCursor = min(m.buttonCursor+1, len(visible)-1)
	case keyEnter, keySpace:
		if m.buttonCursor < 0 || m.buttonCursor >= len(visible) {
			return nil
		}
		return m.goToPage(visible[m.buttonCursor].Page)
	}
	return nil
}

// goToPage fetches page with the current search text and scrolls the card
// list back to the top.
func (m *ListViewModel) goToPage(page int) tea.Cmd {
	cmd := m.fetchPage(m.query.Apply(GoToPage{Page: page}))
	m.cards.ScrollToTop()
	return cmd
}

func (m *ListViewModel) handleRecordsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyEnter {
		if m.cards.SelectedItem() != nil {
			m.state = ViewStateDetail
		}
		return m, nil
	}

	_, cmd := m.cards.Update(msg)
	return m, cmd
}

func (m *ListViewModel) handleDetailKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keyQuit:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc, keyEnter:
		m.state = ViewStateList
	}
	return m, nil
}

// activeButtonIndex returns the index of the current page's button in the
// visible pagination buttons.
func (m *ListViewModel) activeButtonIndex() int {
	for i, b := range m.controls.Visible() {
		if b.Active {
			return i
		}
	}
	return 0
}

func (m *ListViewModel) currentPageSize() int {
	return m.pageSizes[m.pageSizeIdx]
}

func (m *ListViewModel) cardsHeight() int {
	return max(m.height-listChromeHeight, minHeight)
}

func (m *ListViewModel) renderCard(rec facts.Record, selected bool) string {
	return m.renderer.Record(rec, selected && m.focus == focusRecords, m.width)
}

// Query returns the query of the page currently shown.
func (m *ListViewModel) Query() Query {
	return m.query
}

// Records returns the records currently shown.
func (m *ListViewModel) Records() []facts.Record {
	return m.records
}

// Suggestions returns the suggestions currently shown.
func (m *ListViewModel) Suggestions() []string {
	return m.suggestions
}

// Pagination returns the pagination info of the page currently shown.
func (m *ListViewModel) Pagination() pagination.Info {
	return m.info
}
