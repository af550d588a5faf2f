package service

import (
	"errors"

	"github.com/solheim/moodlog/internal/config"
	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/stats"
	"github.com/solheim/moodlog/internal/storage"
)

// plainEntries strips display indices off a ListResult
func plainEntries(list *ListResult) []entry.Entry {
	out := make([]entry.Entry, len(list.Entries))
	for i, ie := range list.Entries {
		out[i] = ie.Entry
	}
	return out
}

// StatsService computes summaries and trends over the journal
type StatsService struct {
	store   *storage.Store
	config  config.Config
	journal *JournalService
}

// NewStatsService creates a new StatsService
func NewStatsService(store *storage.Store, cfg config.Config) *StatsService {
	return &StatsService{
		store:  store,
		config: cfg,
		// Internal journal service used only for date range resolution
		journal: &JournalService{store: store, config: cfg},
	}
}

// Summary returns summary statistics for entries in the given range,
// including the best and worst entries when the range is non-empty.
func (s *StatsService) Summary(dateRange DateRangeSpec) (*StatsResult, error) {
	list, err := s.journal.List(dateRange, nil)
	if err != nil {
		return nil, err
	}

	plain := plainEntries(list)

	result := &StatsResult{
		Summary: stats.Summarize(plain),
		Period:  list.Period,
		Start:   list.Start,
		End:     list.End,
	}

	best, worst, err := stats.BestAndWorst(plain)
	if err != nil {
		if errors.Is(err, stats.ErrEmptyLog) {
			return result, nil
		}
		return nil, err
	}
	result.Best = &best
	result.Worst = &worst

	return result, nil
}

// Trend returns mean scores bucketed by day or week for entries in the
// given range, sorted chronologically with empty buckets omitted.
func (s *StatsService) Trend(bucket stats.Bucket, dateRange DateRangeSpec) (*TrendResult, error) {
	list, err := s.journal.List(dateRange, nil)
	if err != nil {
		return nil, err
	}

	return &TrendResult{
		Points: stats.Trend(plainEntries(list), bucket, s.config.WeekStartDay),
		Bucket: bucket,
		Period: list.Period,
		Start:  list.Start,
		End:    list.End,
	}, nil
}
