package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/solheim/moodlog/internal/config"
	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/filter"
	"github.com/solheim/moodlog/internal/sentiment"
	"github.com/solheim/moodlog/internal/storage"
	"github.com/solheim/moodlog/internal/timeutil"
)

// Common errors for the journal service
var (
	ErrEmptyText = errors.New("entry text cannot be empty")
	ErrNoEntries = errors.New("no entries found")
)

// JournalService provides operations for recording and retrieving
// journal entries.
type JournalService struct {
	store  *storage.Store
	scorer sentiment.Scorer
	config config.Config
}

// NewJournalService creates a new JournalService
func NewJournalService(store *storage.Store, scorer sentiment.Scorer, cfg config.Config) *JournalService {
	return &JournalService{
		store:  store,
		scorer: scorer,
		config: cfg,
	}
}

// Add scores text and appends a new entry to the journal.
// Whitespace-only text is rejected; leading and trailing whitespace is
// trimmed before scoring so the stored text matches what was scored.
func (s *JournalService) Add(text string) (*entry.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	result := s.scorer.Score(text)
	e := entry.New(text, result.Score)

	if err := s.store.Append(e); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	return &e, nil
}

// List returns entries for the specified date range and filter, sorted
// by timestamp and numbered from 1.
func (s *JournalService) List(dateRange DateRangeSpec, f *filter.Filter) (*ListResult, error) {
	start, end, period := s.resolveDateRange(dateRange)

	entries := s.store.Entries()

	if !start.IsZero() || !end.IsZero() {
		ranged := make([]entry.Entry, 0, len(entries))
		for _, e := range entries {
			if matchesBounds(e, start, end) {
				ranged = append(ranged, e)
			}
		}
		entries = ranged
	}

	if f != nil && !f.IsEmpty() {
		entries = filter.Apply(entries, f)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp.Time)
	})

	indexed := make([]IndexedEntry, len(entries))
	for i, e := range entries {
		indexed[i] = IndexedEntry{Entry: e, Index: i + 1}
	}

	return &ListResult{
		Entries: indexed,
		Period:  period,
		Start:   start,
		End:     end,
	}, nil
}

// Search returns all entries whose text contains the query,
// case-insensitive, sorted by timestamp.
func (s *JournalService) Search(query string) (*ListResult, error) {
	return s.List(DateRangeSpec{Type: DateRangeAll}, &filter.Filter{Keyword: query})
}

// Count returns the number of entries in the journal
func (s *JournalService) Count() int {
	return s.store.Len()
}

// StoragePath returns the journal file path
func (s *JournalService) StoragePath() string {
	return s.store.Path()
}

// Clear removes all entries after backing up the journal file, and
// returns the number of entries removed. Confirmation is the caller's
// responsibility.
func (s *JournalService) Clear() (int, error) {
	if err := storage.CreateBackup(s.store.Path()); err != nil {
		return 0, fmt.Errorf("failed to back up journal: %w", err)
	}

	removed, err := s.store.ClearAll()
	if err != nil {
		return 0, fmt.Errorf("failed to clear journal: %w", err)
	}
	return removed, nil
}

// ExportJSON renders the full journal document as indented JSON
func (s *JournalService) ExportJSON() ([]byte, error) {
	return storage.ExportJSON(s.store.Snapshot())
}

// ExportCSV renders all entries as CSV with a header row
func (s *JournalService) ExportCSV() ([]byte, error) {
	return storage.ExportCSV(s.store.Entries())
}

// ListBackups returns available journal backups, most recent first
func (s *JournalService) ListBackups() []storage.BackupInfo {
	return storage.ListBackups(s.store.Path())
}

// RestoreBackup replaces the journal with backup number n and reloads
// the in-memory state from the restored file.
func (s *JournalService) RestoreBackup(n int) error {
	if err := storage.RestoreBackup(s.store.Path(), n); err != nil {
		return err
	}
	if err := s.store.Reload(); err != nil {
		return fmt.Errorf("restored journal is unreadable: %w", err)
	}
	return nil
}

func matchesBounds(e entry.Entry, start, end time.Time) bool {
	if !start.IsZero() && e.Timestamp.Before(start) {
		return false
	}
	if !end.IsZero() && e.Timestamp.After(end) {
		return false
	}
	return true
}

// resolveDateRange converts a DateRangeSpec to concrete start/end times
// and a period description. DateRangeAll yields zero bounds.
func (s *JournalService) resolveDateRange(spec DateRangeSpec) (start, end time.Time, period string) {
	now := time.Now()

	switch spec.Type {
	case DateRangeToday:
		start, end = timeutil.Today()
		period = "today"
	case DateRangeYesterday:
		start, end = timeutil.Yesterday()
		period = "yesterday"
	case DateRangeThisWeek:
		start = timeutil.StartOfWeekWithConfig(now, s.config.WeekStartDay)
		end = timeutil.EndOfWeekWithConfig(now, s.config.WeekStartDay)
		period = "this week"
	case DateRangePrevWeek:
		thisWeekStart := timeutil.StartOfWeekWithConfig(now, s.config.WeekStartDay)
		start = thisWeekStart.AddDate(0, 0, -7)
		end = timeutil.EndOfWeekWithConfig(start, s.config.WeekStartDay)
		period = "last week"
	case DateRangeThisMonth:
		start, end = timeutil.ThisMonth()
		period = "this month"
	case DateRangePrevMonth:
		start, end = timeutil.LastMonth()
		period = "last month"
	case DateRangeLast:
		start, end = timeutil.LastNDays(spec.LastDays)
		period = fmt.Sprintf("last %d days", spec.LastDays)
	case DateRangeCustom:
		start = spec.From
		end = spec.To
		period = formatDateRangeForDisplay(start, end)
	default:
		period = "all time"
	}

	return start, end, period
}

// formatDateRangeForDisplay formats a date range for human-readable display
func formatDateRangeForDisplay(start, end time.Time) string {
	switch {
	case start.IsZero() && end.IsZero():
		return "all time"
	case start.IsZero():
		return fmt.Sprintf("until %s", end.Format("Jan 2, 2006"))
	case end.IsZero():
		return fmt.Sprintf("since %s", start.Format("Jan 2, 2006"))
	case start.Format("2006-01-02") == end.Format("2006-01-02"):
		return start.Format("Mon, Jan 2, 2006")
	case start.Year() == end.Year():
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	default:
		return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	}
}
