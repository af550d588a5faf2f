package ui

import (
	"testing"
)

func TestNewThemeProvider_Default(t *testing.T) {
	tp := NewThemeProvider("")

	if tp == nil {
		t.Fatal("expected non-nil ThemeProvider")
	}

	// Should use default theme when empty string is passed
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected default theme %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestNewThemeProvider_WithTheme(t *testing.T) {
	tp := NewThemeProvider("nord")

	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestNewThemeProvider_InvalidTheme(t *testing.T) {
	// Invalid theme should fall back to default
	tp := NewThemeProvider("nonexistent-theme-xyz")

	if tp == nil {
		t.Fatal("expected non-nil ThemeProvider")
	}
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected fallback to default theme, got %q", tp.CurrentName())
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	ok := tp.SetTheme("nord")
	if !ok {
		t.Error("expected SetTheme to return true for valid theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}

	ok = tp.SetTheme("nonexistent-theme-xyz")
	if ok {
		t.Error("expected SetTheme to return false for unknown theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme unchanged after failed set, got %q", tp.CurrentName())
	}
}

func TestThemeProvider_NextTheme(t *testing.T) {
	tp := NewThemeProvider("")

	first := tp.CurrentName()
	next := tp.NextTheme()

	if next == "" {
		t.Error("expected NextTheme to return a name")
	}
	if next == first {
		t.Errorf("expected NextTheme to change the theme, still %q", next)
	}
	if tp.CurrentName() != next {
		t.Errorf("expected current theme %q, got %q", next, tp.CurrentName())
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")

	themes := tp.AvailableThemes()
	if len(themes) == 0 {
		t.Fatal("expected at least one available theme")
	}

	found := false
	for _, name := range themes {
		if name == DefaultTheme {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected %q among available themes", DefaultTheme)
	}

	// Sorted output
	for i := 1; i < len(themes); i++ {
		if themes[i-1] > themes[i] {
			t.Errorf("expected sorted themes, %q before %q", themes[i-1], themes[i])
			break
		}
	}
}

func TestThemeProvider_Styles(t *testing.T) {
	tp := NewThemeProvider("")

	styles := tp.Styles()
	if styles.ViewTitle.GetBold() != true {
		t.Error("expected bold view title style")
	}
}
