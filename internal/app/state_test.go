package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hexpick/internal/output"
	"hexpick/pkg/colorutil"
)

func TestSelectionFromColor(t *testing.T) {
	tests := []struct {
		name    string
		color   colorutil.Color
		prevHue float64
		wantHue float64
	}{
		{"chromatic color sets hue", colorutil.FromHSV(200, 0.5, 0.5), 10, 200},
		{"black keeps previous hue", colorutil.BlackColor, 90, 90},
		{"grey keeps previous hue", colorutil.Color{R: 0.4, G: 0.4, B: 0.4}, 45, 45},
		{"previous hue is normalized", colorutil.WhiteColor, 400, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := SelectionFromColor(tt.color, tt.prevHue)
			if diff := sel.Hue - tt.wantHue; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("Hue = %v, want %v", sel.Hue, tt.wantHue)
			}
			if sel.Color != tt.color {
				t.Errorf("Color = %+v, want %+v", sel.Color, tt.color)
			}
		})
	}
}

func TestStateEvents(t *testing.T) {
	s := NewState(colorutil.BlackColor)

	var colorEvents, themeEvents, outputEvents int
	var lastSel Selection
	s.On(EventColorChanged, func(data interface{}) {
		colorEvents++
		lastSel = data.(Selection)
	})
	s.On(EventThemeChanged, func(data interface{}) { themeEvents++ })
	s.On(EventOutputChanged, func(data interface{}) { outputEvents++ })

	s.SetSelection(Selection{Color: colorutil.WhiteColor, Hue: 30})
	if colorEvents != 0 {
		t.Errorf("SetSelection emitted %d events, want 0", colorEvents)
	}

	s.Update(Selection{Color: colorutil.WhiteColor, Hue: 390})
	if colorEvents != 1 {
		t.Errorf("Update emitted %d events, want 1", colorEvents)
	}
	if lastSel.Hue != 30 {
		t.Errorf("emitted hue = %v, want 30", lastSel.Hue)
	}

	s.SetTheme(s.Theme().Swap())
	if themeEvents != 1 || s.Theme() != ThemeLight {
		t.Errorf("theme events = %d, theme = %v", themeEvents, s.Theme())
	}

	s.SetFormat(s.Format().Toggle())
	if outputEvents != 1 || s.Format() != output.Structured {
		t.Errorf("output events = %d, format = %v", outputEvents, s.Format())
	}
}

func TestSetHex(t *testing.T) {
	s := NewState(colorutil.BlackColor)
	s.SetSelection(Selection{Color: colorutil.BlackColor, Hue: 90})

	if err := s.SetHex("#ff0000"); err != nil {
		t.Fatalf("SetHex: %v", err)
	}
	if got := s.Color().Hex(); got != "#ff0000" {
		t.Errorf("color = %s, want #ff0000", got)
	}
	if s.Selection().Hue != 0 {
		t.Errorf("hue = %v, want 0 for red", s.Selection().Hue)
	}

	err := s.SetHex("not a color")
	if !errors.Is(err, colorutil.ErrInvalidFormat) {
		t.Errorf("SetHex(invalid) error = %v, want ErrInvalidFormat", err)
	}
	if got := s.Color().Hex(); got != "#ff0000" {
		t.Errorf("invalid hex changed color to %s", got)
	}

	if err := s.SetHex("  #000000 "); err != nil {
		t.Fatalf("SetHex with spaces: %v", err)
	}
	if s.Selection().Hue != 0 {
		t.Errorf("black should keep hue 0, got %v", s.Selection().Hue)
	}
}

func TestParseThemeMode(t *testing.T) {
	if m, err := ParseThemeMode("Light"); err != nil || m != ThemeLight {
		t.Errorf("ParseThemeMode(Light) = %v, %v", m, err)
	}
	if m, err := ParseThemeMode("dark"); err != nil || m != ThemeDark {
		t.Errorf("ParseThemeMode(dark) = %v, %v", m, err)
	}
	if _, err := ParseThemeMode("sepia"); err == nil {
		t.Error("ParseThemeMode(sepia) should fail")
	}
	if ThemeDark.Swap() != ThemeLight || ThemeLight.String() != "light" {
		t.Error("Swap/String mismatch")
	}
}

func TestHotReloaderDetectsNewBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hexpick")
	if err := os.WriteFile(path, []byte("v1"), 0o755); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}

	h := newHotReloader(path, 10*time.Millisecond, nil)
	if h == nil {
		t.Fatal("newHotReloader returned nil")
	}
	if h.checkForUpdate() {
		t.Fatal("unchanged binary reported as updated")
	}

	fired := make(chan struct{}, 1)
	h.OnNewBinary(func() { fired <- struct{}{} })
	h.Start()
	defer h.Stop()

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("OnNewBinary was not called")
	}

	h.ResetBaseline()
	if h.checkForUpdate() {
		t.Error("ResetBaseline should adopt the new modification time")
	}
}

func TestHotReloaderMissingBinary(t *testing.T) {
	if h := newHotReloader(filepath.Join(t.TempDir(), "missing"), time.Second, nil); h != nil {
		t.Error("expected nil reloader for missing executable")
	}
}
