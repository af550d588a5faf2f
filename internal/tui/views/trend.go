package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solheim/moodlog/internal/cli"
	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/stats"
	"github.com/solheim/moodlog/internal/tui/ui"
)

// TrendModel is the model for the trend view
type TrendModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int
	bucket stats.Bucket
	spec   service.DateRangeSpec
	result *service.TrendResult
	err    error
}

// NewTrendModel creates a new trend view model
func NewTrendModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TrendModel {
	return TrendModel{
		services: services,
		styles:   styles,
		keys:     keys,
		bucket:   stats.BucketDay,
		spec:     service.DateRangeSpec{Type: service.DateRangeAll},
	}
}

// trendLoadedMsg is sent when trend data is loaded
type trendLoadedMsg struct {
	result *service.TrendResult
	err    error
}

// Init implements tea.Model
func (m TrendModel) Init() tea.Cmd {
	return m.loadTrend()
}

// Update implements tea.Model
func (m TrendModel) Update(msg tea.Msg) (TrendModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ByDay):
			m.bucket = stats.BucketDay
			return m, m.loadTrend()
		case key.Matches(msg, m.keys.ByWeek):
			m.bucket = stats.BucketWeek
			return m, m.loadTrend()
		case key.Matches(msg, m.keys.ThisMonth):
			m.spec = service.DateRangeSpec{Type: service.DateRangeThisMonth}
			return m, m.loadTrend()
		case key.Matches(msg, m.keys.AllTime):
			m.spec = service.DateRangeSpec{Type: service.DateRangeAll}
			return m, m.loadTrend()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadTrend()
		}

	case trendLoadedMsg:
		m.err = msg.err
		m.result = msg.result

	case ui.EntryLoggedMsg:
		return m, m.loadTrend()
	}

	return m, nil
}

// View implements tea.Model
func (m TrendModel) View() string {
	var b strings.Builder

	period := "all time"
	if m.result != nil {
		period = m.result.Period
	}
	b.WriteString(m.styles.ViewTitle.Render(
		fmt.Sprintf("Mood Trend by %s — %s", m.bucket, period)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return m.styles.Content.Render(b.String())
	}

	if m.result == nil {
		b.WriteString("Loading...")
		return m.styles.Content.Render(b.String())
	}

	if len(m.result.Points) == 0 {
		b.WriteString(m.styles.StatusHelp.Render("No entries for " + period))
		return m.styles.Content.Render(b.String())
	}

	for _, p := range m.result.Points {
		b.WriteString(m.renderTrendLine(p))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatusHelp.Render("d/w to change bucket, m/a to change range, r to refresh"))

	return m.styles.Content.Render(b.String())
}

// SetSize sets the view dimensions
func (m *TrendModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadTrend creates a command to load trend data for the current bucket
// and range
func (m TrendModel) loadTrend() tea.Cmd {
	bucket := m.bucket
	spec := m.spec
	return func() tea.Msg {
		result, err := m.services.Stats.Trend(bucket, spec)
		return trendLoadedMsg{result: result, err: err}
	}
}

func (m TrendModel) renderTrendLine(p stats.TrendPoint) string {
	date := p.BucketStart.Format("2006-01-02")
	if m.bucket == stats.BucketWeek {
		date = "wk of " + date
	}

	label := entry.LabelForScore(p.MeanScore)
	return fmt.Sprintf("  %s  %s %s  %s",
		m.styles.EntryTime.Render(fmt.Sprintf("%-16s", date)),
		m.styles.ForLabel(label).Render(cli.FormatScore(p.MeanScore)),
		m.styles.Bar.Render(cli.FormatScoreBar(p.MeanScore)),
		m.styles.StatusHelp.Render(fmt.Sprintf("(%d %s)", p.Count, pluralizeEntries(p.Count))))
}
