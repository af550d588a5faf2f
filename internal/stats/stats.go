// Package stats computes aggregate statistics and trends over journal entries.
package stats

import (
	"errors"
	"sort"
	"time"

	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/timeutil"
)

// ErrEmptyLog indicates an aggregate was requested that is undefined
// over an empty set of entries.
var ErrEmptyLog = errors.New("no journal entries")

// Summary contains aggregated statistics for a set of entries
type Summary struct {
	Count         int
	MeanScore     float64
	PositiveCount int
	NeutralCount  int
	NegativeCount int
}

// Summarize computes summary statistics over entries.
// An empty input yields the zero Summary, with MeanScore 0.0.
func Summarize(entries []entry.Entry) Summary {
	s := Summary{}

	if len(entries) == 0 {
		return s
	}

	var total float64
	for _, e := range entries {
		total += e.Score
		switch e.Sentiment {
		case entry.LabelPositive:
			s.PositiveCount++
		case entry.LabelNegative:
			s.NegativeCount++
		default:
			s.NeutralCount++
		}
	}

	s.Count = len(entries)
	s.MeanScore = total / float64(len(entries))

	return s
}

// Bucket selects the time granularity for trend aggregation.
type Bucket string

const (
	BucketDay  Bucket = "day"
	BucketWeek Bucket = "week"
)

// Valid reports whether b is a known bucket granularity.
func (b Bucket) Valid() bool {
	return b == BucketDay || b == BucketWeek
}

// TrendPoint is the mean score of all entries falling into one time bucket.
type TrendPoint struct {
	BucketStart time.Time
	MeanScore   float64
	Count       int
}

// Trend groups entries into day or week buckets and returns the mean
// score per bucket, sorted chronologically. Buckets with no entries are
// omitted rather than zero-filled. weekStartDay ("monday" or "sunday")
// only affects week bucketing.
func Trend(entries []entry.Entry, bucket Bucket, weekStartDay string) []TrendPoint {
	if len(entries) == 0 {
		return []TrendPoint{}
	}

	type acc struct {
		total float64
		count int
	}
	buckets := make(map[time.Time]*acc)

	for _, e := range entries {
		var key time.Time
		switch bucket {
		case BucketWeek:
			key = timeutil.TruncateToWeek(e.Timestamp.Time, weekStartDay)
		default:
			key = timeutil.TruncateToDay(e.Timestamp.Time)
		}

		a, ok := buckets[key]
		if !ok {
			a = &acc{}
			buckets[key] = a
		}
		a.total += e.Score
		a.count++
	}

	points := make([]TrendPoint, 0, len(buckets))
	for start, a := range buckets {
		points = append(points, TrendPoint{
			BucketStart: start,
			MeanScore:   a.total / float64(a.count),
			Count:       a.count,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].BucketStart.Before(points[j].BucketStart)
	})

	return points
}

// BestAndWorst returns the entries with the highest and lowest scores.
// Ties are broken by the earliest timestamp. Returns ErrEmptyLog if
// entries is empty. With a single entry, best and worst are the same.
func BestAndWorst(entries []entry.Entry) (best, worst entry.Entry, err error) {
	if len(entries) == 0 {
		return entry.Entry{}, entry.Entry{}, ErrEmptyLog
	}

	best, worst = entries[0], entries[0]
	for _, e := range entries[1:] {
		if e.Score > best.Score || (e.Score == best.Score && e.Timestamp.Before(best.Timestamp.Time)) {
			best = e
		}
		if e.Score < worst.Score || (e.Score == worst.Score && e.Timestamp.Before(worst.Timestamp.Time)) {
			worst = e
		}
	}

	return best, worst, nil
}
