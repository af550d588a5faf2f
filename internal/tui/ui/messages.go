package ui

import "github.com/solheim/moodlog/internal/entry"

// EntryLoggedMsg is broadcast after a new entry is saved so other views
// can refresh their data.
type EntryLoggedMsg struct {
	Entry entry.Entry
}
