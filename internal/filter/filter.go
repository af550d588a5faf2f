// Package filter provides search and filtering criteria for journal entries.
package filter

import (
	"strings"
	"time"

	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/timeutil"
)

// Filter represents search and filtering criteria for journal entries.
// All filter fields are optional - zero values match all entries.
type Filter struct {
	Labels  []entry.Label // Any of these sentiment labels matches (OR logic)
	From    time.Time     // Inclusive lower timestamp bound (zero value: unbounded)
	To      time.Time     // Inclusive upper timestamp bound (zero value: unbounded)
	Keyword string        // Case-insensitive substring search in entry text
}

// NewFilter creates a new Filter with the given criteria.
// All parameters are optional - pass zero values to match all entries.
func NewFilter(labels []entry.Label, from, to time.Time, keyword string) *Filter {
	return &Filter{
		Labels:  labels,
		From:    from,
		To:      to,
		Keyword: keyword,
	}
}

// IsEmpty returns true if all filter fields are empty (matches all entries)
func (f *Filter) IsEmpty() bool {
	return len(f.Labels) == 0 && f.From.IsZero() && f.To.IsZero() && f.Keyword == ""
}

// MatchesLabel returns true if the entry's sentiment is any of the filter
// labels. An empty label filter matches all entries.
func (f *Filter) MatchesLabel(e entry.Entry) bool {
	if len(f.Labels) == 0 {
		return true
	}
	for _, l := range f.Labels {
		if e.Sentiment == l {
			return true
		}
	}
	return false
}

// MatchesRange returns true if the entry's timestamp falls within the
// filter's [From, To] bounds. Zero-valued bounds are unbounded.
func (f *Filter) MatchesRange(e entry.Entry) bool {
	if !f.From.IsZero() && e.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.Timestamp.After(f.To) {
		return false
	}
	return true
}

// MatchesKeyword returns true if the keyword is found in the entry's text
// (case-insensitive). An empty keyword matches all entries.
func (f *Filter) MatchesKeyword(e entry.Entry) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Text), strings.ToLower(f.Keyword))
}

// Matches returns true if the entry satisfies all filter criteria (AND logic).
func (f *Filter) Matches(e entry.Entry) bool {
	return f.MatchesLabel(e) && f.MatchesRange(e) && f.MatchesKeyword(e)
}

// Apply returns a new slice containing only entries that match the filter
// criteria, preserving order. If the filter is empty, returns all entries.
func Apply(entries []entry.Entry, f *Filter) []entry.Entry {
	if f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// LastNDays returns a filter covering the last n calendar days including
// today, at day granularity.
func LastNDays(n int) *Filter {
	from, to := timeutil.LastNDays(n)
	return &Filter{From: from, To: to}
}
