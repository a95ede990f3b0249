package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		// Not present.
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

type RawLogging struct {
	Level     *string `yaml:"level"`
	File      *string `yaml:"file"`
	Format    *string `yaml:"format"`
	MaxSizeMB *int    `yaml:"max_size_mb"`
	MaxFiles  *int    `yaml:"max_files"`
}

type RawIPC struct {
	Enabled *bool   `yaml:"enabled"`
	Socket  *string `yaml:"socket"`
}

// RawConfig is one YAML file as written. Nil fields were not set and leave
// lower-priority values alone when merged.
type RawConfig struct {
	Include IncludeList `yaml:"include"`

	Display    *string `yaml:"display"`
	XAuthority *string `yaml:"xauthority"`

	Title          *string  `yaml:"title"`
	Width          *float64 `yaml:"width"`
	Height         *float64 `yaml:"height"`
	ExitOnEsc      *bool    `yaml:"exit_on_esc"`
	AutomaticClose *bool    `yaml:"automatic_close"`
	CaptureCursor  *bool    `yaml:"capture_cursor"`
	ScaleFactor    *float64 `yaml:"scale_factor"`
	RecentEvents   *int     `yaml:"recent_events"`

	Logging *RawLogging `yaml:"logging"`
	IPC     *RawIPC     `yaml:"ipc"`
}

func (base RawConfig) merge(overlay RawConfig) RawConfig {
	out := base
	// Includes are resolved per file and never merged.
	out.Include = nil

	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	if overlay.XAuthority != nil {
		out.XAuthority = overlay.XAuthority
	}
	if overlay.Title != nil {
		out.Title = overlay.Title
	}
	if overlay.Width != nil {
		out.Width = overlay.Width
	}
	if overlay.Height != nil {
		out.Height = overlay.Height
	}
	if overlay.ExitOnEsc != nil {
		out.ExitOnEsc = overlay.ExitOnEsc
	}
	if overlay.AutomaticClose != nil {
		out.AutomaticClose = overlay.AutomaticClose
	}
	if overlay.CaptureCursor != nil {
		out.CaptureCursor = overlay.CaptureCursor
	}
	if overlay.ScaleFactor != nil {
		out.ScaleFactor = overlay.ScaleFactor
	}
	if overlay.RecentEvents != nil {
		out.RecentEvents = overlay.RecentEvents
	}
	if overlay.Logging != nil {
		if out.Logging == nil {
			out.Logging = &RawLogging{}
		}
		merged := mergeRawLogging(*out.Logging, *overlay.Logging)
		out.Logging = &merged
	}
	if overlay.IPC != nil {
		if out.IPC == nil {
			out.IPC = &RawIPC{}
		}
		merged := mergeRawIPC(*out.IPC, *overlay.IPC)
		out.IPC = &merged
	}
	return out
}

func mergeRawLogging(base RawLogging, overlay RawLogging) RawLogging {
	out := base
	if overlay.Level != nil {
		out.Level = overlay.Level
	}
	if overlay.File != nil {
		out.File = overlay.File
	}
	if overlay.Format != nil {
		out.Format = overlay.Format
	}
	if overlay.MaxSizeMB != nil {
		out.MaxSizeMB = overlay.MaxSizeMB
	}
	if overlay.MaxFiles != nil {
		out.MaxFiles = overlay.MaxFiles
	}
	return out
}

func mergeRawIPC(base RawIPC, overlay RawIPC) RawIPC {
	out := base
	if overlay.Enabled != nil {
		out.Enabled = overlay.Enabled
	}
	if overlay.Socket != nil {
		out.Socket = overlay.Socket
	}
	return out
}
