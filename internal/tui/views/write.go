package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solheim/moodlog/internal/cli"
	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/tui/ui"
)

// WriteModel is the model for the write view, where new entries are
// composed and saved.
type WriteModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width    int
	height   int
	input    textarea.Model
	lastSave *entry.Entry
	err      error
}

// NewWriteModel creates a new write view model
func NewWriteModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) WriteModel {
	ta := textarea.New()
	ta.Placeholder = "How was your day?"
	ta.ShowLineNumbers = false
	ta.SetHeight(5)
	ta.Focus()

	return WriteModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    ta,
	}
}

// entrySavedMsg is sent when an entry save attempt completes
type entrySavedMsg struct {
	entry *entry.Entry
	err   error
}

// Init implements tea.Model
func (m WriteModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m WriteModel) Update(msg tea.Msg) (WriteModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Save) {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.err = service.ErrEmptyText
				return m, nil
			}
			return m, m.saveEntry(text)
		}

	case entrySavedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.lastSave = msg.entry
			m.input.Reset()
			return m, func() tea.Msg { return ui.EntryLoggedMsg{Entry: *msg.entry} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m WriteModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("New Entry"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.lastSave != nil:
		e := m.lastSave
		b.WriteString(m.styles.Success.Render("Logged "))
		b.WriteString(m.styles.ForLabel(e.Sentiment).Render(
			fmt.Sprintf("%s %s (%s)", cli.EmojiForLabel(e.Sentiment), e.Sentiment, cli.FormatScore(e.Score))))
	default:
		b.WriteString(m.styles.StatusHelp.Render("Write freely, then press ctrl+s to score and save"))
	}

	return m.styles.Content.Render(b.String())
}

// SetSize sets the view dimensions
func (m *WriteModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := width - 8
	if inputWidth > 20 {
		m.input.SetWidth(inputWidth)
	}
}

// IsInputMode reports whether the textarea has focus and is capturing
// keystrokes.
func (m WriteModel) IsInputMode() bool {
	return m.input.Focused()
}

// saveEntry creates a command that scores and persists the text
func (m WriteModel) saveEntry(text string) tea.Cmd {
	return func() tea.Msg {
		e, err := m.services.Journal.Add(text)
		return entrySavedMsg{entry: e, err: err}
	}
}
