// Package app provides application state, events, theming and lifecycle helpers.
package app

import (
	"fmt"
	"strings"
	"sync"

	"hexpick/internal/output"
	"hexpick/pkg/colorutil"
)

// Selection is the color the user is editing.
//
// Hue is kept next to the color because it cannot be recovered from RGB when
// saturation or value is zero; the plane picker still needs it to draw.
type Selection struct {
	Color colorutil.Color
	Hue   float64
}

// SelectionFromColor derives a selection from c, keeping prevHue when c has
// no defined hue.
func SelectionFromColor(c colorutil.Color, prevHue float64) Selection {
	h, s, v := c.HSV()
	if s == 0 || v == 0 {
		h = prevHue
	}
	return Selection{Color: c, Hue: colorutil.NormalizeHue(h)}
}

// ThemeMode selects the light or dark palette.
type ThemeMode int

const (
	ThemeDark ThemeMode = iota
	ThemeLight
)

func (m ThemeMode) String() string {
	if m == ThemeLight {
		return "light"
	}
	return "dark"
}

// Swap returns the other mode.
func (m ThemeMode) Swap() ThemeMode {
	if m == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseThemeMode accepts "dark" or "light".
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeDark, fmt.Errorf("unknown theme %q (want dark or light)", s)
	}
}

// EventType identifies different application events.
type EventType int

const (
	// EventColorChanged carries the new Selection. Views showing derived
	// text or the swatch recompute on it.
	EventColorChanged EventType = iota
	// EventThemeChanged carries the new ThemeMode.
	EventThemeChanged
	// EventOutputChanged carries the new output.Format.
	EventOutputChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application data record.
type State struct {
	mu sync.RWMutex

	selection Selection
	theme     ThemeMode
	format    output.Format

	// Event listeners
	listeners map[EventType][]EventListener
}

// NewState creates state starting at the given color.
func NewState(initial colorutil.Color) *State {
	return &State{
		selection: SelectionFromColor(initial, 0),
		theme:     ThemeDark,
		format:    output.CSS,
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Selection returns the current selection.
func (s *State) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// Color returns the current color.
func (s *State) Color() colorutil.Color {
	return s.Selection().Color
}

// SetSelection stores sel without notifying listeners. Pickers follow it with
// an explicit refresh request.
func (s *State) SetSelection(sel Selection) {
	sel.Hue = colorutil.NormalizeHue(sel.Hue)
	s.mu.Lock()
	s.selection = sel
	s.mu.Unlock()
}

// Update stores sel and emits EventColorChanged.
func (s *State) Update(sel Selection) {
	s.SetSelection(sel)
	s.Emit(EventColorChanged, s.Selection())
}

// SetColor replaces the color from outside the pickers (hex entry, paste).
// The picker hue follows the color unless the color is achromatic.
func (s *State) SetColor(c colorutil.Color) {
	s.Update(SelectionFromColor(c, s.Selection().Hue))
}

// SetHex parses and applies a "#rrggbb" string. On error the current color
// is left untouched.
func (s *State) SetHex(hex string) error {
	c, err := colorutil.ParseHex(strings.TrimSpace(hex))
	if err != nil {
		return err
	}
	s.SetColor(c)
	return nil
}

// Theme returns the current theme mode.
func (s *State) Theme() ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme changes the theme mode and emits EventThemeChanged.
func (s *State) SetTheme(mode ThemeMode) {
	s.mu.Lock()
	s.theme = mode
	s.mu.Unlock()
	s.Emit(EventThemeChanged, mode)
}

// Format returns the current output format.
func (s *State) Format() output.Format {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.format
}

// SetFormat changes the output format and emits EventOutputChanged.
func (s *State) SetFormat(f output.Format) {
	s.mu.Lock()
	s.format = f
	s.mu.Unlock()
	s.Emit(EventOutputChanged, f)
}
