package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/tui/ui"
)

// EntriesModel is the model for the entries view
type EntriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int
	spec   service.DateRangeSpec
	result *service.ListResult
	cursor int
	err    error
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	return EntriesModel{
		services: services,
		styles:   styles,
		keys:     keys,
		spec:     service.DateRangeSpec{Type: service.DateRangeAll},
		cursor:   -1,
	}
}

// entriesLoadedMsg is sent when entries are loaded
type entriesLoadedMsg struct {
	result *service.ListResult
	err    error
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.loadEntries()
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Today):
			m.spec = service.DateRangeSpec{Type: service.DateRangeToday}
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.Yesterday):
			m.spec = service.DateRangeSpec{Type: service.DateRangeYesterday}
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.ThisWeek):
			m.spec = service.DateRangeSpec{Type: service.DateRangeThisWeek}
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.ThisMonth):
			m.spec = service.DateRangeSpec{Type: service.DateRangeThisMonth}
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.AllTime):
			m.spec = service.DateRangeSpec{Type: service.DateRangeAll}
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadEntries()
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.result != nil && m.cursor < len(m.result.Entries)-1 {
				m.cursor++
			}
			return m, nil
		}

	case entriesLoadedMsg:
		m.err = msg.err
		m.result = msg.result
		m.cursor = -1
		if m.result != nil && len(m.result.Entries) > 0 {
			m.cursor = len(m.result.Entries) - 1
		}

	case ui.EntryLoggedMsg:
		return m, m.loadEntries()
	}

	return m, nil
}

// View implements tea.Model
func (m EntriesModel) View() string {
	var b strings.Builder

	period := "all time"
	if m.result != nil {
		period = m.result.Period
	}
	b.WriteString(m.styles.ViewTitle.Render("Entries — " + period))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return m.styles.Content.Render(b.String())
	}

	if m.result == nil {
		b.WriteString("Loading...")
		return m.styles.Content.Render(b.String())
	}

	if len(m.result.Entries) == 0 {
		b.WriteString(m.styles.StatusHelp.Render("No entries for " + period))
		return m.styles.Content.Render(b.String())
	}

	b.WriteString(RenderEntryList(m.result.Entries, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
	}))

	b.WriteString("\n")
	count := len(m.result.Entries)
	b.WriteString(m.styles.StatusHelp.Render(
		fmt.Sprintf("%d %s  (t/y/w/m/a to change range)", count, pluralizeEntries(count))))

	return m.styles.Content.Render(b.String())
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadEntries creates a command to load entries for the current range
func (m EntriesModel) loadEntries() tea.Cmd {
	spec := m.spec
	return func() tea.Msg {
		result, err := m.services.Journal.List(spec, nil)
		return entriesLoadedMsg{result: result, err: err}
	}
}
