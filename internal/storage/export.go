package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/solheim/moodlog/internal/entry"
)

// csvHeader is the fixed column order for CSV exports.
var csvHeader = []string{"timestamp", "text", "sentiment", "score"}

// ExportJSON renders the journal document as indented JSON, in the same
// schema as the journal file itself.
func ExportJSON(j Journal) ([]byte, error) {
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return append(data, '\n'), nil
}

// ExportCSV renders entries as CSV with a header row. Fields containing
// commas, quotes, or newlines are quoted per RFC 4180 by encoding/csv.
// Scores are written with four decimal places.
func ExportCSV(entries []entry.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	for _, e := range entries {
		record := []string{
			e.Timestamp.Format(entry.TimeLayout),
			e.Text,
			string(e.Sentiment),
			strconv.FormatFloat(e.Score, 'f', 4, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return buf.Bytes(), nil
}
