package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solheim/moodlog/internal/cli"
	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/tui/ui"
)

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int
	spec   service.DateRangeSpec
	result *service.StatsResult
	err    error
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		spec:     service.DateRangeSpec{Type: service.DateRangeAll},
	}
}

// statsLoadedMsg is sent when stats are loaded
type statsLoadedMsg struct {
	result *service.StatsResult
	err    error
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ThisWeek):
			m.spec = service.DateRangeSpec{Type: service.DateRangeThisWeek}
			return m, m.loadStats()
		case key.Matches(msg, m.keys.ThisMonth):
			m.spec = service.DateRangeSpec{Type: service.DateRangeThisMonth}
			return m, m.loadStats()
		case key.Matches(msg, m.keys.AllTime):
			m.spec = service.DateRangeSpec{Type: service.DateRangeAll}
			return m, m.loadStats()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStats()
		}

	case statsLoadedMsg:
		m.err = msg.err
		m.result = msg.result

	case ui.EntryLoggedMsg:
		return m, m.loadStats()
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	period := "all time"
	if m.result != nil {
		period = m.result.Period
	}
	b.WriteString(m.styles.ViewTitle.Render("Mood Statistics — " + period))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return m.styles.Content.Render(b.String())
	}

	if m.result == nil {
		b.WriteString("Loading...")
		return m.styles.Content.Render(b.String())
	}

	s := m.result.Summary
	if s.Count == 0 {
		b.WriteString(m.styles.StatusHelp.Render("No entries for " + period))
		return m.styles.Content.Render(b.String())
	}

	meanStyle := m.styles.ForLabel(entry.LabelForScore(s.MeanScore))
	b.WriteString(m.renderStatLine("Entries:", fmt.Sprintf("%d %s", s.Count, pluralizeEntries(s.Count))))
	b.WriteString(m.styles.StatLabel.Render("Mean mood:"))
	b.WriteString(" ")
	b.WriteString(meanStyle.Render(fmt.Sprintf("%s %s", cli.FormatScore(s.MeanScore), cli.EmojiForLabel(entry.LabelForScore(s.MeanScore)))))
	b.WriteString("\n\n")

	b.WriteString(m.renderDistLine(m.styles.Positive, "Positive", s.PositiveCount, s.Count))
	b.WriteString(m.renderDistLine(m.styles.Neutral, "Neutral", s.NeutralCount, s.Count))
	b.WriteString(m.renderDistLine(m.styles.Negative, "Negative", s.NegativeCount, s.Count))

	if m.result.Best != nil && m.result.Worst != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Best:"))
		b.WriteString(" ")
		b.WriteString(m.styles.Positive.Render(cli.FormatEntryDetail(*m.result.Best)))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Worst:"))
		b.WriteString(" ")
		b.WriteString(m.styles.Negative.Render(cli.FormatEntryDetail(*m.result.Worst)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatusHelp.Render("w/m/a to change range, r to refresh"))

	return m.styles.Content.Render(b.String())
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadStats creates a command to load stats for the current range
func (m StatsModel) loadStats() tea.Cmd {
	spec := m.spec
	return func() tea.Msg {
		result, err := m.services.Stats.Summary(spec)
		return statsLoadedMsg{result: result, err: err}
	}
}

func (m StatsModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}

func (m StatsModel) renderDistLine(style lipgloss.Style, label string, count, total int) string {
	return fmt.Sprintf("  %s %4d  %s\n",
		style.Render(fmt.Sprintf("%-8s", label)),
		count,
		m.styles.Bar.Render(cli.FormatCountBar(count, total)))
}
