package storage

import (
	"fmt"
	"strings"
	"time"
)

// docTimeLayout is the serialization format for the journal's own
// created_at / last_updated fields: ISO-8601 with microseconds and no
// zone designator, matching what existing journal files contain.
// Entry timestamps use the coarser entry.TimeLayout instead.
const docTimeLayout = "2006-01-02T15:04:05.000000"

// DocTime is a document-level timestamp on the journal itself.
type DocTime struct {
	time.Time
}

func nowDoc() DocTime {
	return DocTime{time.Now()}
}

// MarshalJSON implements json.Marshaler using docTimeLayout.
func (t DocTime) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.Format(docTimeLayout))), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts ISO-8601 with or
// without fractional seconds; a zone offset is honored when present,
// otherwise local time is assumed.
func (t *DocTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid journal timestamp %q", s)
}
