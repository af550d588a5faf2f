// Package views contains the individual view models for the TUI tabs.
package views

import (
	"fmt"
	"strings"

	"github.com/solheim/moodlog/internal/cli"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected entry index (-1 for none)
}

// RenderEntryList renders a list of entries with aligned columns:
// index, timestamp, sentiment, score, text.
func RenderEntryList(entries []service.IndexedEntry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	// Leave room for the fixed-width columns
	maxTextWidth := opts.Width - 5 - 18 - 10 - 8
	if maxTextWidth < 20 {
		maxTextWidth = 20
	}

	var b strings.Builder
	for i, ie := range entries {
		e := ie.Entry

		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		text := e.Text
		if len(text) > maxTextWidth {
			text = text[:maxTextWidth-1] + "…"
		}

		index := styles.EntryIndex.Render(fmt.Sprintf("%4d", ie.Index))
		timeCol := styles.EntryTime.Render(e.Timestamp.Format("2006-01-02 15:04"))
		label := styles.ForLabel(e.Sentiment).Render(fmt.Sprintf("%-8s", string(e.Sentiment)))
		score := styles.StatValue.Render(cli.FormatScore(e.Score))
		textCol := styles.EntryText.Render(text)

		line := fmt.Sprintf("%s %s %s %s  %s", index, timeCol, label, score, textCol)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func pluralizeEntries(count int) string {
	if count == 1 {
		return "entry"
	}
	return "entries"
}
