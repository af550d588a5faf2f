// Package sentiment provides the valence scoring capability for journal
// entries. Scoring is delegated to an off-the-shelf lexicon/rule-based
// analyzer; this package only adapts it to the fixed threshold policy.
package sentiment

import (
	"errors"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/solheim/moodlog/internal/entry"
)

// ErrLexiconUnavailable is returned when the analyzer's lexicon cannot be
// obtained. Scoring is impossible without it; callers must surface the
// condition rather than default entries to Neutral.
var ErrLexiconUnavailable = errors.New("sentiment lexicon unavailable")

// Result is the outcome of scoring a piece of text.
type Result struct {
	Label entry.Label
	Score float64 // normalized compound polarity in [-1, 1]
}

// Scorer scores free text. Implementations must be pure functions of their
// input plus a fixed lexicon: deterministic, stateless, and safe for
// concurrent use.
type Scorer interface {
	Score(text string) Result
}

// VADER scores text with the VADER valence lexicon (word-level valence
// combined with heuristics for negation, intensifiers, and punctuation or
// capitalization emphasis). The lexicon ships embedded in the library, so
// no runtime provisioning is needed.
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADER constructs the VADER scorer. Returns ErrLexiconUnavailable if
// the embedded lexicon cannot be loaded.
func NewVADER() (*VADER, error) {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	if analyzer == nil {
		return nil, ErrLexiconUnavailable
	}
	return &VADER{analyzer: analyzer}, nil
}

// Score implements Scorer. Empty or whitespace-only text scores 0.0 and
// labels Neutral without consulting the analyzer.
func (v *VADER) Score(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Label: entry.LabelNeutral, Score: 0.0}
	}

	scores := v.analyzer.PolarityScores(text)
	compound := scores.Compound

	// The analyzer normalizes into [-1, 1]; clamp defends the label
	// invariant against lexicon updates.
	if compound > 1.0 {
		compound = 1.0
	} else if compound < -1.0 {
		compound = -1.0
	}

	return Result{
		Label: entry.LabelForScore(compound),
		Score: compound,
	}
}
