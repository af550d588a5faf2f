// Package cli provides the CLI presentation layer for the moodlog
// application. It handles command-line output formatting.
package cli

import (
	"fmt"
	"strings"

	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/stats"
)

// FormatScore formats a compound score for display with an explicit sign
// Examples: "+0.70", "-0.05", "+0.00"
func FormatScore(score float64) string {
	return fmt.Sprintf("%+.2f", score)
}

// EmojiForLabel returns the mood emoji for a sentiment label
func EmojiForLabel(l entry.Label) string {
	switch l {
	case entry.LabelPositive:
		return "😊"
	case entry.LabelNegative:
		return "😟"
	default:
		return "😐"
	}
}

// FormatEntryLine formats an indexed entry as a single list line.
// Example: "  3. [2024-03-07 14:30] 😊 Positive (+0.70) Met with friends"
func FormatEntryLine(ie service.IndexedEntry) string {
	e := ie.Entry
	return fmt.Sprintf("%3d. [%s] %s %s (%s) %s",
		ie.Index,
		e.Timestamp.Format(entry.TimeLayout),
		EmojiForLabel(e.Sentiment),
		e.Sentiment,
		FormatScore(e.Score),
		e.Text,
	)
}

// FormatEntryDetail formats a single entry without an index, for
// best/worst displays.
func FormatEntryDetail(e entry.Entry) string {
	return fmt.Sprintf("[%s] %s (%s) %s",
		e.Timestamp.Format(entry.TimeLayout),
		EmojiForLabel(e.Sentiment),
		FormatScore(e.Score),
		e.Text,
	)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// barWidth is the total width of distribution and trend bars
const barWidth = 20

// FormatCountBar renders a proportional bar for a count out of total.
// A non-zero count always shows at least one block.
func FormatCountBar(count, total int) string {
	if total == 0 {
		return ""
	}
	n := count * barWidth / total
	if count > 0 && n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// FormatScoreBar renders a bar for a mean score in [-1, 1].
// Negative scores fill leftward from a center line, positive rightward.
// Example: "          |████      " for +0.4
func FormatScoreBar(score float64) string {
	half := barWidth / 2
	n := int(score * float64(half))

	left := strings.Repeat(" ", half)
	right := strings.Repeat(" ", half)
	switch {
	case n > 0:
		if n > half {
			n = half
		}
		right = strings.Repeat("█", n) + strings.Repeat(" ", half-n)
	case n < 0:
		n = -n
		if n > half {
			n = half
		}
		left = strings.Repeat(" ", half-n) + strings.Repeat("█", n)
	}

	return left + "|" + right
}

// FormatTrendLine formats one trend point as a labelled bar line.
// Day buckets are labelled with the date, week buckets with "wk of" the
// start date.
func FormatTrendLine(p stats.TrendPoint, bucket stats.Bucket) string {
	label := p.BucketStart.Format("2006-01-02")
	if bucket == stats.BucketWeek {
		label = "wk of " + label
	}
	word := "entries"
	if p.Count == 1 {
		word = "entry"
	}
	return fmt.Sprintf("%-16s %s %s (%d %s)",
		label,
		FormatScoreBar(p.MeanScore),
		FormatScore(p.MeanScore),
		p.Count,
		word,
	)
}
