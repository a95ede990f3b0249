package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle        = "xwin"
	DefaultWidth        = 640
	DefaultHeight       = 480
	DefaultRecentEvents = 64
	MaxRecentEvents     = 4096
	DefaultLogMaxSizeMB = 10
	DefaultLogMaxFiles  = 3
)

// Config is the effective configuration after includes and defaults.
type Config struct {
	// Display is the X display name; empty uses $DISPLAY.
	Display string `yaml:"display,omitempty"`
	// XAuthority overrides $XAUTHORITY when connecting.
	XAuthority string `yaml:"xauthority,omitempty"`

	Title          string  `yaml:"title"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	ExitOnEsc      bool    `yaml:"exit_on_esc"`
	AutomaticClose bool    `yaml:"automatic_close"`
	CaptureCursor  bool    `yaml:"capture_cursor"`
	// ScaleFactor overrides DPI detection when > 0.
	ScaleFactor float64 `yaml:"scale_factor,omitempty"`

	// RecentEvents bounds the event history kept for status queries.
	RecentEvents int `yaml:"recent_events"`

	Logging LoggingConfig `yaml:"logging"`
	IPC     IPCConfig     `yaml:"ipc"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	// Level controls logging verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// File receives log output; empty logs to stderr.
	File string `yaml:"file,omitempty"`
	// Format is text or json.
	Format string `yaml:"format,omitempty"`
	// MaxSizeMB rotates File once it grows past this size; 0 disables
	// rotation.
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxFiles is how many rotated files are kept.
	MaxFiles int `yaml:"max_files"`
}

// IPCConfig configures the control socket.
type IPCConfig struct {
	Enabled bool `yaml:"enabled"`
	// Socket overrides the runtime-dir socket path.
	Socket string `yaml:"socket,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:          DefaultTitle,
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		AutomaticClose: true,
		RecentEvents:   DefaultRecentEvents,
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			MaxSizeMB: DefaultLogMaxSizeMB,
			MaxFiles:  DefaultLogMaxFiles,
		},
		IPC: IPCConfig{Enabled: true},
	}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "xwin", "config.yaml"), nil
}

// SlogLevel converts Logging.Level. Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Save writes the configuration to path.
//
// Note: this marshals the effective config and will not preserve comments or
// include structure from the original YAML.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return &ValidationError{Path: "title", Err: fmt.Errorf("title is required")}
	}
	if c.Width <= 0 {
		return &ValidationError{Path: "width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Height <= 0 {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be > 0")}
	}
	if c.ScaleFactor < 0 {
		return &ValidationError{Path: "scale_factor", Err: fmt.Errorf("scale_factor must be >= 0 (0 detects from the monitor)")}
	}
	if c.RecentEvents < 0 || c.RecentEvents > MaxRecentEvents {
		return &ValidationError{Path: "recent_events", Err: fmt.Errorf("recent_events must be between 0 and %d", MaxRecentEvents)}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("logging.level must be one of: debug, info, warn, error")}
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return &ValidationError{Path: "logging.format", Err: fmt.Errorf("logging.format must be one of: text, json")}
	}
	if c.Logging.MaxSizeMB < 0 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("logging.max_size_mb must be >= 0")}
	}
	if c.Logging.MaxFiles < 0 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("logging.max_files must be >= 0")}
	}
	if c.IPC.Socket != "" && !filepath.IsAbs(c.IPC.Socket) {
		return &ValidationError{Path: "ipc.socket", Err: fmt.Errorf("ipc.socket must be an absolute path")}
	}

	for _, w := range c.validationWarnings() {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return nil
}

func (c *Config) validationWarnings() []string {
	var warnings []string
	if c.CaptureCursor && !c.ExitOnEsc && !c.IPC.Enabled {
		warnings = append(warnings, "capture_cursor is on with exit_on_esc and ipc disabled; close the window from the window manager")
	}
	return warnings
}
