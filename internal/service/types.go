// Package service provides the business logic layer for the moodlog
// application. It wraps the underlying storage, sentiment, config, and
// stats packages, providing a clean API for both CLI and TUI frontends.
package service

import (
	"time"

	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/stats"
)

// DateRange represents a predefined or custom date range for filtering entries
type DateRange int

const (
	DateRangeAll DateRange = iota
	DateRangeToday
	DateRangeYesterday
	DateRangeThisWeek
	DateRangePrevWeek
	DateRangeThisMonth
	DateRangePrevMonth
	DateRangeLast // Last N days (requires LastDays field)
	DateRangeCustom
)

// DateRangeSpec specifies a date range for filtering entries
type DateRangeSpec struct {
	Type     DateRange
	LastDays int       // Used when Type is DateRangeLast
	From     time.Time // Used when Type is DateRangeCustom
	To       time.Time // Used when Type is DateRangeCustom
}

// IndexedEntry represents an entry with its 1-based display index
type IndexedEntry struct {
	Entry entry.Entry
	Index int
}

// ListResult contains the results of listing entries
type ListResult struct {
	Entries []IndexedEntry
	Period  string    // Human-readable period description
	Start   time.Time // Start of the date range (zero: unbounded)
	End     time.Time // End of the date range (zero: unbounded)
}

// StatsResult contains summary statistics for a time period.
// Best and Worst are nil when the period has no entries.
type StatsResult struct {
	Summary stats.Summary
	Best    *entry.Entry
	Worst   *entry.Entry
	Period  string
	Start   time.Time
	End     time.Time
}

// TrendResult contains trend points for a time period
type TrendResult struct {
	Points []stats.TrendPoint
	Bucket stats.Bucket
	Period string
	Start  time.Time
	End    time.Time
}
