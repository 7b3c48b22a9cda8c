package tui

import (
	"fmt"
	"strings"

	"github.com/rshade/factsview/internal/facts"
)

// Query is the state a page request is built from. It is a value: every user
// action produces a new Query through Apply and the old one is never mutated.
type Query struct {
	Page    int
	PerPage int
	Text    string
}

// NewQuery returns the query issued on initial load.
func NewQuery(perPage int) Query {
	return Query{Page: 1, PerPage: perPage}
}

// Action is a user intent that changes the query.
type Action interface {
	apply(q Query) Query
}

// GoToPage moves to a page, keeping the search text and page size.
type GoToPage struct{ Page int }

// ChangePageSize switches the page size and returns to the first page.
type ChangePageSize struct{ PerPage int }

// SubmitSearch replaces the search text with its trimmed form and returns to the first page.
type SubmitSearch struct{ Text string }

func (a GoToPage) apply(q Query) Query {
	q.Page = a.Page
	return q
}

func (a ChangePageSize) apply(q Query) Query {
	q.Page = 1
	q.PerPage = a.PerPage
	return q
}

func (a SubmitSearch) apply(q Query) Query {
	q.Page = 1
	q.Text = strings.TrimSpace(a.Text)
	return q
}

// Apply returns the query that results from action.
func (q Query) Apply(action Action) Query {
	return action.apply(q)
}

// Facts converts the query to the API client's request type.
func (q Query) Facts() facts.Query {
	return facts.Query{Page: q.Page, PerPage: q.PerPage, Text: q.Text}
}

// StalePolicy decides whether an out-of-order response is applied.
type StalePolicy int

const (
	// LastArrival applies every response in the order it arrives, so a slow
	// older response can overwrite a newer one.
	LastArrival StalePolicy = iota
	// LastRequest drops responses older than the newest request of their kind.
	LastRequest
)

// ParseStalePolicy parses "last-arrival" or "last-request".
func ParseStalePolicy(s string) (StalePolicy, error) {
	switch s {
	case "", "last-arrival":
		return LastArrival, nil
	case "last-request":
		return LastRequest, nil
	default:
		return LastArrival, fmt.Errorf("unknown stale policy %q", s)
	}
}

// String returns the config name of the policy.
func (p StalePolicy) String() string {
	if p == LastRequest {
		return "last-request"
	}
	return "last-arrival"
}

// Sequencer stamps requests with increasing sequence numbers, one counter per
// request kind, and decides which responses to apply.
type Sequencer struct {
	policy     StalePolicy
	pageSeq    uint64
	suggestSeq uint64
}

// NewSequencer returns a sequencer with the given policy.
func NewSequencer(policy StalePolicy) Sequencer {
	return Sequencer{policy: policy}
}

// Policy returns the configured policy.
func (s *Sequencer) Policy() StalePolicy {
	return s.policy
}

// NextPage stamps a new page request.
func (s *Sequencer) NextPage() uint64 {
	s.pageSeq++
	return s.pageSeq
}

// NextSuggest stamps a new suggestion request.
func (s *Sequencer) NextSuggest() uint64 {
	s.suggestSeq++
	return s.suggestSeq
}

// InvalidateSuggestions makes every in-flight suggestion request stale.
func (s *Sequencer) InvalidateSuggestions() {
	s.suggestSeq++
}

// AcceptPage reports whether a page response stamped seq should be applied.
func (s *Sequencer) AcceptPage(seq uint64) bool {
	return s.policy == LastArrival || seq == s.pageSeq
}

// AcceptSuggest reports whether a suggestion response stamped seq should be applied.
func (s *Sequencer) AcceptSuggest(seq uint64) bool {
	return s.policy == LastArrival || seq == s.suggestSeq
}
