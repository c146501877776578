package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/justyntemme/tabstrip"
)

// Config holds all user-configurable settings loaded from config.json
type Config struct {
	UI      UIConfig      `json:"ui"`
	Bar     BarConfig     `json:"bar"`
	Session SessionConfig `json:"session"`
	Hotkeys HotkeysConfig `json:"hotkeys"`
}

// UIConfig holds UI-related settings
type UIConfig struct {
	Theme string `json:"theme"` // "light" or "dark"
}

// BarConfig holds tab bar settings. Zero values fall back to the
// widget's defaults; sizes are in pixels.
type BarConfig struct {
	Spacing            int    `json:"spacing"`
	Padding            int    `json:"padding"`
	TabWidth           int    `json:"tabWidth"` // 0 sizes each tab to its content
	Height             int    `json:"height"`
	TextSize           int    `json:"textSize"`
	IconSize           int    `json:"iconSize"`
	CloseSize          int    `json:"closeSize"`
	IconPosition       string `json:"iconPosition"` // "left" | "top" | "right" | "bottom"
	DragThreshold      int    `json:"dragThreshold"`
	TooltipDelayMs     int    `json:"tooltipDelayMs"`
	ScrollMode         string `json:"scrollMode"` // "floating" | "below" | "none"
	ScrollbarThickness int    `json:"scrollbarThickness"`
}

// SessionConfig holds session persistence settings
type SessionConfig struct {
	RestoreOnStart bool `json:"restoreOnStart"`
}

// HotkeysConfig holds keyboard shortcut strings, parsed by ParseHotkey
type HotkeysConfig struct {
	NewTab   string `json:"newTab"`
	CloseTab string `json:"closeTab"`
	NextTab  string `json:"nextTab"`
	PrevTab  string `json:"prevTab"`
	Escape   string `json:"escape"`

	// Direct tab switching
	Tab1 string `json:"tab1"`
	Tab2 string `json:"tab2"`
	Tab3 string `json:"tab3"`
	Tab4 string `json:"tab4"`
	Tab5 string `json:"tab5"`
	Tab6 string `json:"tab6"`
}

// ToBar converts the JSON settings into a widget Config. Unknown enum
// strings fall through to the widget defaults.
func (b BarConfig) ToBar() tabstrip.Config {
	cfg := tabstrip.Config{
		Spacing:            b.Spacing,
		Padding:            b.Padding,
		TabWidth:           b.TabWidth,
		Height:             b.Height,
		TextSize:           b.TextSize,
		IconSize:           b.IconSize,
		CloseSize:          b.CloseSize,
		DragThreshold:      float32(b.DragThreshold),
		TooltipDelay:       time.Duration(b.TooltipDelayMs) * time.Millisecond,
		ScrollbarThickness: b.ScrollbarThickness,
	}
	switch b.IconPosition {
	case "top":
		cfg.IconPosition = tabstrip.PositionTop
	case "right":
		cfg.IconPosition = tabstrip.PositionRight
	case "bottom":
		cfg.IconPosition = tabstrip.PositionBottom
	default:
		cfg.IconPosition = tabstrip.PositionLeft
	}
	switch b.ScrollMode {
	case "below":
		cfg.ScrollMode = tabstrip.ScrollbarBelow
	case "none":
		cfg.ScrollMode = tabstrip.ScrollbarNone
	default:
		cfg.ScrollMode = tabstrip.ScrollbarFloating
	}
	return cfg
}

// Manager handles loading, saving, and accessing configuration
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	parseErr error // Stores parsing error if config failed to load
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		config: DefaultConfig(),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "light",
		},
		Bar: BarConfig{
			Spacing:        2,
			Padding:        4,
			TooltipDelayMs: 500,
			ScrollMode:     "floating",
		},
		Session: SessionConfig{
			RestoreOnStart: true,
		},
		Hotkeys: DefaultHotkeys(),
	}
}

// ConfigPath returns the location of config.json
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tabdemo", "config.json")
}

// Load reads the configuration from the config file
// If the file doesn't exist, creates it with defaults
// If parsing fails, stores the error and returns defaults
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.path = ConfigPath()
	m.parseErr = nil

	// Ensure config directory exists
	configDir := filepath.Dir(m.path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		log.Printf("Config: failed to create directory %s: %v", configDir, err)
		return err
	}

	// Try to read existing config
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		// Create default config file
		log.Printf("Config: creating default config at %s", m.path)
		m.config = DefaultConfig()
		if saveErr := m.saveUnlocked(); saveErr != nil {
			log.Printf("Config: failed to save default config: %v", saveErr)
			return saveErr
		}
		return nil
	}
	if err != nil {
		log.Printf("Config: failed to read %s: %v", m.path, err)
		return err
	}

	// Parse JSON
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Store error for UI display, use defaults
		log.Printf("Config: JSON parse error: %v", err)
		m.parseErr = err
		m.config = DefaultConfig()
		return nil // Don't return error - we're using defaults
	}

	log.Printf("Config: loaded from %s", m.path)
	m.config = &cfg
	return nil
}

// saveUnlocked saves config without acquiring lock (caller must hold lock)
func (m *Manager) saveUnlocked() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveUnlocked()
}

// Get returns a copy of the current configuration
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return *DefaultConfig()
	}
	return *m.config
}

// ParseError returns the parsing error if config failed to load
func (m *Manager) ParseError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parseErr
}

// SetTheme updates the theme setting
func (m *Manager) SetTheme(theme string) {
	m.mu.Lock()
	m.config.UI.Theme = theme
	m.mu.Unlock()
	m.Save()
}

// IsDarkMode returns whether the dark theme is active
func (m *Manager) IsDarkMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.UI.Theme == "dark"
}
