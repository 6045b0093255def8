// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	appDir    = "hexpick"
	prefsFile = "preferences.json"
)

// Preference keys.
const (
	KeyTheme     = "theme"
	KeyOutput    = "output"
	KeyHotReload = "hot_reload"
)

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// Load reads preferences from the user config dir
// (~/.config/hexpick/preferences.json on Linux).
// Returns a Prefs with defaults if the file doesn't exist.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	p, _ := LoadFrom(filepath.Join(configDir, appDir))
	return p
}

// LoadFrom reads preferences from dir. A missing file is not an error;
// a corrupt one is reported but still yields usable empty preferences.
func LoadFrom(dir string) (*Prefs, error) {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   filepath.Join(dir, prefsFile),
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read preferences: %w", err)
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		p.values = make(map[string]interface{})
		return p, fmt.Errorf("parse %s: %w", p.path, err)
	}
	return p, nil
}

// Path returns the file the preferences are saved to.
func (p *Prefs) Path() string {
	return p.path
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return os.WriteFile(p.path, data, 0o644)
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Bool returns a bool preference, or fallback if not set.
func (p *Prefs) Bool(key string, fallback bool) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// SetBool stores a bool preference.
func (p *Prefs) SetBool(key string, val bool) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}
