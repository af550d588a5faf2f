// Package tui provides the Terminal User Interface for the moodlog
// application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/tui/ui"
	"github.com/solheim/moodlog/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabWrite Tab = iota
	TabEntries
	TabStats
	TabTrend
)

var tabNames = []string{"Write", "Entries", "Stats", "Trend"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	writeView   views.WriteModel
	entriesView views.EntriesModel
	statsView   views.StatsModel
	trendView   views.TrendModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	// Initialize theme from config
	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabWrite,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		writeView:     views.NewWriteModel(services, styles, keys),
		entriesView:   views.NewEntriesModel(services, styles, keys),
		statsView:     views.NewStatsModel(services, styles, keys),
		trendView:     views.NewTrendModel(services, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.writeView.Init(),
		m.entriesView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The write tab's textarea captures character keys, so global
		// single-key shortcuts only apply off that tab.
		capturingKeys := m.isCapturingKeys()

		// Handle global keys first
		switch {
		case key.Matches(msg, m.keys.Quit) && !capturingKeys:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturingKeys:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Theme) && !capturingKeys:
			m.themeProvider.NextTheme()
			m.restyle()
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturingKeys:
			m.activeTab = TabWrite
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturingKeys:
			m.activeTab = TabEntries
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturingKeys:
			m.activeTab = TabStats
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab4) && !capturingKeys:
			m.activeTab = TabTrend
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update view dimensions
		contentHeight := m.height - 4 // Account for tabs and status bar
		m.writeView.SetSize(m.width, contentHeight)
		m.entriesView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		m.trendView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.EntryLoggedMsg:
		// A new entry invalidates every view's data, not just the
		// active one.
		m.writeView, cmd = m.writeView.Update(msg)
		cmds = append(cmds, cmd)
		m.entriesView, cmd = m.entriesView.Update(msg)
		cmds = append(cmds, cmd)
		m.statsView, cmd = m.statsView.Update(msg)
		cmds = append(cmds, cmd)
		m.trendView, cmd = m.trendView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Update the active view
	switch m.activeTab {
	case TabWrite:
		m.writeView, cmd = m.writeView.Update(msg)
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case TabTrend:
		m.trendView, cmd = m.trendView.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Render tabs
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	// Render active view
	switch m.activeTab {
	case TabWrite:
		b.WriteString(m.writeView.View())
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabTrend:
		b.WriteString(m.trendView.View())
	}

	// Render status bar
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	// Help overlay
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	// View-specific keys
	switch m.activeTab {
	case TabWrite:
		parts = append(parts, m.renderKeyHelp("ctrl+s", "save"))
	case TabEntries:
		parts = append(parts, m.renderKeyHelp("t/y/w/m/a", "range"))
		parts = append(parts, m.renderKeyHelp("j/k", "navigate"))
		parts = append(parts, m.renderKeyHelp("r", "refresh"))
	case TabStats:
		parts = append(parts, m.renderKeyHelp("w/m/a", "range"))
		parts = append(parts, m.renderKeyHelp("r", "refresh"))
	case TabTrend:
		parts = append(parts, m.renderKeyHelp("d/w", "bucket"))
		parts = append(parts, m.renderKeyHelp("m/a", "range"))
	}

	// Global keys
	parts = append(parts, m.renderKeyHelp("tab/1-4", "views"))
	if m.activeTab != TabWrite {
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	if m.activeTab == TabWrite {
		return m.writeView.IsInputMode()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabWrite:
		return m.writeView.Init()
	case TabEntries:
		return m.entriesView.Init()
	case TabStats:
		return m.statsView.Init()
	case TabTrend:
		return m.trendView.Init()
	}
	return nil
}

// restyle rebuilds the views with the current theme's styles
func (m *Model) restyle() {
	m.styles = m.themeProvider.Styles()
	m.writeView = views.NewWriteModel(m.services, m.styles, m.keys)
	m.entriesView = views.NewEntriesModel(m.services, m.styles, m.keys)
	m.statsView = views.NewStatsModel(m.services, m.styles, m.keys)
	m.trendView = views.NewTrendModel(m.services, m.styles, m.keys)

	contentHeight := m.height - 4
	m.writeView.SetSize(m.width, contentHeight)
	m.entriesView.SetSize(m.width, contentHeight)
	m.statsView.SetSize(m.width, contentHeight)
	m.trendView.SetSize(m.width, contentHeight)
}

// renderHelpOverlay renders a help overlay on top of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-4    Switch views\n")
	help.WriteString("  T          Next theme\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabWrite:
		help.WriteString(m.styles.StatLabel.Render("Write:"))
		help.WriteString("\n")
		help.WriteString("  ctrl+s     Score and save the entry\n")
	case TabEntries:
		help.WriteString(m.styles.StatLabel.Render("Entries:"))
		help.WriteString("\n")
		help.WriteString("  t          Today's entries\n")
		help.WriteString("  y          Yesterday's entries\n")
		help.WriteString("  w          This week\n")
		help.WriteString("  m          This month\n")
		help.WriteString("  a          All time\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  r          Refresh\n")
	case TabStats:
		help.WriteString(m.styles.StatLabel.Render("Stats:"))
		help.WriteString("\n")
		help.WriteString("  w          This week\n")
		help.WriteString("  m          This month\n")
		help.WriteString("  a          All time\n")
		help.WriteString("  r          Refresh\n")
	case TabTrend:
		help.WriteString(m.styles.StatLabel.Render("Trend:"))
		help.WriteString("\n")
		help.WriteString("  d          Bucket by day\n")
		help.WriteString("  w          Bucket by week\n")
		help.WriteString("  m          This month\n")
		help.WriteString("  a          All time\n")
		help.WriteString("  r          Refresh\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())

	return m.styles.App.Render(helpBox)
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
