// Package entry defines the journal entry model and the sentiment
// threshold policy shared by the scorer, store, and aggregator.
package entry

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the serialization format for entry timestamps.
// Minute precision, local time, kept for compatibility with existing
// journal files.
const TimeLayout = "2006-01-02 15:04"

// Threshold boundaries for mapping a compound valence score to a label.
// These match the VADER convention; a substituted scorer must re-validate
// them rather than assume they transfer.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Label is the discrete sentiment classification of an entry.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// Valid reports whether l is one of the three known labels.
func (l Label) Valid() bool {
	switch l {
	case LabelPositive, LabelNeutral, LabelNegative:
		return true
	}
	return false
}

// LabelForScore maps a compound valence score to its label using the
// fixed threshold policy:
//
//	score >= 0.05  -> Positive
//	score <= -0.05 -> Negative
//	otherwise      -> Neutral
func LabelForScore(score float64) Label {
	switch {
	case score >= PositiveThreshold:
		return LabelPositive
	case score <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Timestamp is an entry creation instant serialized at minute precision
// ("2006-01-02 15:04") in local time.
type Timestamp struct {
	time.Time
}

// Now returns the current time truncated to minute precision.
func Now() Timestamp {
	return At(time.Now())
}

// At returns t truncated to minute precision.
func At(t time.Time) Timestamp {
	return Timestamp{t.Truncate(time.Minute)}
}

// MarshalJSON implements json.Marshaler using TimeLayout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.Format(TimeLayout))), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting TimeLayout strings.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Entry is a single journal record. All fields are immutable once the
// entry is created; re-scoring means deriving a new entry, never mutating
// an old one.
type Entry struct {
	Timestamp Timestamp `json:"timestamp"`
	Text      string    `json:"text"`
	Sentiment Label     `json:"sentiment"`
	Score     float64   `json:"score"`
}

// New constructs an entry stamped with the current time. The label is
// derived from score via LabelForScore so the two can never disagree.
func New(text string, score float64) Entry {
	return Entry{
		Timestamp: Now(),
		Text:      text,
		Sentiment: LabelForScore(score),
		Score:     score,
	}
}
