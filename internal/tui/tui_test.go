package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solheim/moodlog/internal/config"
	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/sentiment"
	"github.com/solheim/moodlog/internal/service"
	"github.com/solheim/moodlog/internal/storage"
)

// neutralScorer scores everything 0.0
type neutralScorer struct{}

func (neutralScorer) Score(string) sentiment.Result {
	return sentiment.Result{Label: entry.LabelNeutral, Score: 0.0}
}

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()
	storagePath := filepath.Join(tmpDir, storage.JournalFile)
	configPath := filepath.Join(tmpDir, config.ConfigFile)

	store, err := storage.Open(storagePath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return service.NewServicesWithStore(store, configPath, config.DefaultConfig(), neutralScorer{})
}

func TestNew(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	if model.activeTab != TabWrite {
		t.Errorf("expected initial tab to be Write, got %d", model.activeTab)
	}
	if model.services == nil {
		t.Error("expected services to be set")
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
}

func TestInit(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	cmd := model.Init()
	if cmd == nil {
		t.Error("expected Init to return a command")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := newModel.(Model)

	if m.width != 100 {
		t.Errorf("expected width 100, got %d", m.width)
	}
	if m.height != 50 {
		t.Errorf("expected height 50, got %d", m.height)
	}
}

func TestUpdate_TabKeyCyclesViews(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)
	if m.activeTab != TabEntries {
		t.Errorf("expected Entries tab after tab key, got %d", m.activeTab)
	}

	// Cycle all the way around
	for i := 0; i < 3; i++ {
		newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = newModel.(Model)
	}
	if m.activeTab != TabWrite {
		t.Errorf("expected to wrap back to Write tab, got %d", m.activeTab)
	}
}

func TestUpdate_ShiftTabGoesBack(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m := newModel.(Model)
	if m.activeTab != TabTrend {
		t.Errorf("expected Trend tab after shift+tab from Write, got %d", m.activeTab)
	}
}

func TestUpdate_QuitKeyOffWriteTab(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	// Move off the write tab so 'q' is not captured by the textarea
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %T", msg)
	}
}

func TestUpdate_HelpToggle(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)
	if !m.showHelp {
		t.Error("expected showHelp to be true after pressing ?")
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)
	if m.showHelp {
		t.Error("expected showHelp to be false after second ?")
	}
}

func TestUpdate_NumberKeysJumpToTabs(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	// Off the write tab first; on it, digits go into the textarea
	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)

	tests := []struct {
		key      rune
		expected Tab
	}{
		{'3', TabStats},
		{'4', TabTrend},
		{'2', TabEntries},
		{'1', TabWrite},
	}
	for _, tt := range tests {
		newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
		m = newModel.(Model)
		if m.activeTab != tt.expected {
			t.Errorf("key %c: expected tab %d, got %d", tt.key, tt.expected, m.activeTab)
		}
	}
}

func TestUpdate_ThemeKeyCycles(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := newModel.(Model)
	before := m.themeProvider.CurrentName()

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'T'}})
	m = newModel.(Model)
	if m.themeProvider.CurrentName() == before {
		t.Error("expected theme to change after pressing T")
	}
}

func TestView_RendersTabsAndStatusBar(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := newModel.(Model)

	view := m.View()
	for _, name := range tabNames {
		if !strings.Contains(view, name) {
			t.Errorf("expected tab %q in view", name)
		}
	}
	if !strings.Contains(view, "ctrl+s") {
		t.Errorf("expected write-tab status hint, got: %s", view)
	}
}

func TestView_BeforeFirstWindowSize(t *testing.T) {
	services := setupTestServices(t)
	model := New(services)

	if model.View() != "Loading..." {
		t.Errorf("expected loading placeholder, got: %s", model.View())
	}
}
