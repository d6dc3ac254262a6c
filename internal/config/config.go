// Package config implements the JSON-backed configuration cmd/nesgo loads
// once at startup: window/backend choice, the two controller ports' key
// maps, the default ROM search path, and trace/log settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the full tree persisted to and loaded from disk.
type Config struct {
	Window WindowConfig `json:"window"`
	Video  VideoConfig  `json:"video"`
	Input  InputConfig  `json:"input"`
	Trace  TraceConfig  `json:"trace"`
	Paths  PathsConfig  `json:"paths"`

	configPath string
}

// VideoConfig tunes the post-processing internal/present applies to each
// completed frame before handing it to the backend.
type VideoConfig struct {
	Brightness float32 `json:"brightness"`
	Contrast   float32 `json:"contrast"`
	Saturation float32 `json:"saturation"`
}

// WindowConfig selects the presentation backend and its scale.
type WindowConfig struct {
	Scale   int    `json:"scale"`   // NES resolution multiplier
	Backend string `json:"backend"` // "ebitengine", "headless"
	VSync   bool   `json:"vsync"`
}

// InputConfig holds both controller ports' key maps. They are loaded and
// saved with the rest of the file, but no backend reads them:
// internal/graphics maps keys to buttons through its own fixed table.
type InputConfig struct {
	Player1Keys KeyMapping `json:"player1_keys"`
	Player2Keys KeyMapping `json:"player2_keys"`
}

// KeyMapping names the keyboard key bound to each of the eight buttons.
type KeyMapping struct {
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	A      string `json:"a"`
	B      string `json:"b"`
	Start  string `json:"start"`
	Select string `json:"select"`
}

// TraceConfig selects the diagnostic sink cmd/nesgo attaches to the CPU
// (internal/trace).
type TraceConfig struct {
	Level       string `json:"level"`       // "off", "nestest", "spew"
	Destination string `json:"destination"` // "stdout", or a file path
}

// PathsConfig holds the default ROM search path.
type PathsConfig struct {
	ROMs string `json:"roms"`
}

// New returns a Config populated with sane defaults.
func New() *Config {
	return &Config{
		Window: WindowConfig{Scale: 2, Backend: "ebitengine", VSync: true},
		Video:  VideoConfig{Brightness: 1.0, Contrast: 1.0, Saturation: 1.0},
		Input: InputConfig{
			Player1Keys: KeyMapping{Up: "W", Down: "S", Left: "A", Right: "D", A: "J", B: "K", Start: "Return", Select: "Space"},
			Player2Keys: KeyMapping{Up: "Up", Down: "Down", Left: "Left", Right: "Right", A: "N", B: "M", Start: "RShift", Select: "RCtrl"},
		},
		Trace: TraceConfig{Level: "off", Destination: "stdout"},
		Paths: PathsConfig{ROMs: "./roms"},
	}
}

// LoadFromFile loads configuration from path, writing the default config
// there first if it does not yet exist.
func LoadFromFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c := New()
		if err := c.SaveToFile(path); err != nil {
			return nil, err
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	c := New()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.configPath = path
	c.validate()
	return c, nil
}

// SaveToFile writes c as indented JSON to path, creating its directory if
// needed.
func (c *Config) SaveToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: mkdir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	c.configPath = path
	return nil
}

func (c *Config) validate() {
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}
	if c.Window.Backend == "" {
		c.Window.Backend = "ebitengine"
	}
	if c.Paths.ROMs == "" {
		c.Paths.ROMs = "./roms"
	}
	if c.Video.Brightness == 0 && c.Video.Contrast == 0 && c.Video.Saturation == 0 {
		c.Video = VideoConfig{Brightness: 1.0, Contrast: 1.0, Saturation: 1.0}
	}
}

// WindowResolution returns the host window's pixel dimensions for the
// configured scale over the native 256x240 NES frame.
func (c *Config) WindowResolution() (int, int) {
	return 256 * c.Window.Scale, 240 * c.Window.Scale
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string { return "./config/gones.json" }
