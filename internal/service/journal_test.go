package service

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/solheim/moodlog/internal/config"
	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/filter"
	"github.com/solheim/moodlog/internal/sentiment"
	"github.com/solheim/moodlog/internal/storage"
)

// fakeScorer returns canned scores based on keywords so tests are
// independent of the real lexicon.
type fakeScorer struct{}

func (fakeScorer) Score(text string) sentiment.Result {
	lower := strings.ToLower(text)
	var score float64
	switch {
	case strings.Contains(lower, "great"):
		score = 0.7
	case strings.Contains(lower, "terrible"):
		score = -0.7
	}
	return sentiment.Result{Label: entry.LabelForScore(score), Score: score}
}

func newTestServices(t *testing.T) *Services {
	t.Helper()
	tmpDir := t.TempDir()

	store, err := storage.Open(filepath.Join(tmpDir, storage.JournalFile))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	cfg := config.DefaultConfig()
	return NewServicesWithStore(store, filepath.Join(tmpDir, config.ConfigFile), cfg, fakeScorer{})
}

func TestAdd(t *testing.T) {
	svc := newTestServices(t)

	e, err := svc.Journal.Add("Today was a great day")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if e.Sentiment != entry.LabelPositive {
		t.Errorf("Sentiment = %q, expected Positive", e.Sentiment)
	}
	if e.Score != 0.7 {
		t.Errorf("Score = %v, expected 0.7", e.Score)
	}
	if svc.Journal.Count() != 1 {
		t.Errorf("Count = %d, expected 1", svc.Journal.Count())
	}
}

func TestAdd_EmptyText(t *testing.T) {
	svc := newTestServices(t)

	tests := []string{"", "   ", "\n\t"}
	for _, text := range tests {
		if _, err := svc.Journal.Add(text); !errors.Is(err, ErrEmptyText) {
			t.Errorf("Add(%q) error = %v, expected ErrEmptyText", text, err)
		}
	}

	if svc.Journal.Count() != 0 {
		t.Errorf("Rejected entries must not be stored, count = %d", svc.Journal.Count())
	}
}

func TestAdd_TrimsWhitespace(t *testing.T) {
	svc := newTestServices(t)

	e, err := svc.Journal.Add("  a quiet day  \n")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if e.Text != "a quiet day" {
		t.Errorf("Text = %q, expected trimmed text", e.Text)
	}
}

func TestList_AllTime(t *testing.T) {
	svc := newTestServices(t)

	for _, text := range []string{"great start", "terrible middle", "plain end"} {
		if _, err := svc.Journal.Add(text); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	list, err := svc.Journal.List(DateRangeSpec{Type: DateRangeAll}, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(list.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(list.Entries))
	}
	if list.Period != "all time" {
		t.Errorf("Period = %q, expected \"all time\"", list.Period)
	}

	// Indices are 1-based and sequential
	for i, ie := range list.Entries {
		if ie.Index != i+1 {
			t.Errorf("Entry %d has index %d, expected %d", i, ie.Index, i+1)
		}
	}
}

func TestList_TodayIncludesFreshEntries(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Journal.Add("logged just now"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	list, err := svc.Journal.List(DateRangeSpec{Type: DateRangeToday}, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list.Entries) != 1 {
		t.Errorf("Expected today's entry to match, got %d entries", len(list.Entries))
	}
	if list.Period != "today" {
		t.Errorf("Period = %q, expected \"today\"", list.Period)
	}
}

func TestList_YesterdayExcludesToday(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Journal.Add("logged just now"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	list, err := svc.Journal.List(DateRangeSpec{Type: DateRangeYesterday}, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list.Entries) != 0 {
		t.Errorf("A fresh entry should not match yesterday, got %d entries", len(list.Entries))
	}
}

func TestList_WithSentimentFilter(t *testing.T) {
	svc := newTestServices(t)

	for _, text := range []string{"great morning", "terrible evening", "plain lunch"} {
		if _, err := svc.Journal.Add(text); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	f := &filter.Filter{Labels: []entry.Label{entry.LabelNegative}}
	list, err := svc.Journal.List(DateRangeSpec{Type: DateRangeAll}, f)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(list.Entries) != 1 {
		t.Fatalf("Expected 1 negative entry, got %d", len(list.Entries))
	}
	if list.Entries[0].Entry.Text != "terrible evening" {
		t.Errorf("Entry = %q", list.Entries[0].Entry.Text)
	}
}

func TestSearch(t *testing.T) {
	svc := newTestServices(t)

	for _, text := range []string{"walked in the park", "meeting at work", "Park run with friends"} {
		if _, err := svc.Journal.Add(text); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	list, err := svc.Journal.Search("park")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(list.Entries) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(list.Entries))
	}
}

func TestClear_BacksUpFirst(t *testing.T) {
	svc := newTestServices(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Journal.Add("some day"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	removed, err := svc.Journal.Clear()
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 3 {
		t.Errorf("Clear removed %d, expected 3", removed)
	}
	if svc.Journal.Count() != 0 {
		t.Errorf("Count after clear = %d, expected 0", svc.Journal.Count())
	}

	backups := svc.Journal.ListBackups()
	if len(backups) != 1 {
		t.Fatalf("Expected 1 backup after clear, got %d", len(backups))
	}
}

func TestRestoreBackup_AfterClear(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Journal.Add("precious memory"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.Journal.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if err := svc.Journal.RestoreBackup(1); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	if svc.Journal.Count() != 1 {
		t.Fatalf("Count after restore = %d, expected 1", svc.Journal.Count())
	}
	list, err := svc.Journal.List(DateRangeSpec{Type: DateRangeAll}, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list.Entries[0].Entry.Text != "precious memory" {
		t.Errorf("Restored entry = %q", list.Entries[0].Entry.Text)
	}
}

func TestExportJSON(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Journal.Add("great export test"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	data, err := svc.Journal.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var doc struct {
		Entries []entry.Entry `json:"entries"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if len(doc.Entries) != 1 {
		t.Errorf("Export has %d entries, expected 1", len(doc.Entries))
	}
}

func TestExportCSV(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Journal.Add("csv test"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	data, err := svc.Journal.ExportCSV()
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "timestamp,") {
		t.Errorf("Header = %q", lines[0])
	}
}

func TestFormatDateRangeForDisplay(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.Local)
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{"all time", time.Time{}, time.Time{}, "all time"},
		{"same day", day(7), day(7), "Thu, Mar 7, 2024"},
		{"same year", day(1), day(7), "Mar 1 - Mar 7, 2024"},
		{
			"different years",
			time.Date(2023, time.December, 30, 0, 0, 0, 0, time.Local),
			day(2),
			"Dec 30, 2023 - Mar 2, 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDateRangeForDisplay(tt.start, tt.end); got != tt.expected {
				t.Errorf("formatDateRangeForDisplay() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
