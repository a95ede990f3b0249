package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths:
//
//	display
//	xauthority
//	title
//	width
//	height
//	exit_on_esc
//	automatic_close
//	capture_cursor
//	scale_factor
//	recent_events
//	logging.level
//	logging.file
//	logging.format
//	logging.max_size_mb
//	logging.max_files
//	ipc.enabled
//	ipc.socket
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

// ExplainPaths lists every path Explain accepts.
func ExplainPaths() []string {
	return []string{
		"display", "xauthority",
		"title", "width", "height",
		"exit_on_esc", "automatic_close", "capture_cursor",
		"scale_factor", "recent_events",
		"logging.level", "logging.file", "logging.format",
		"logging.max_size_mb", "logging.max_files",
		"ipc.enabled", "ipc.socket",
	}
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch strings.TrimSpace(path) {
	case "display":
		return cfg.Display, nil
	case "xauthority":
		return cfg.XAuthority, nil
	case "title":
		return cfg.Title, nil
	case "width":
		return cfg.Width, nil
	case "height":
		return cfg.Height, nil
	case "exit_on_esc":
		return cfg.ExitOnEsc, nil
	case "automatic_close":
		return cfg.AutomaticClose, nil
	case "capture_cursor":
		return cfg.CaptureCursor, nil
	case "scale_factor":
		return cfg.ScaleFactor, nil
	case "recent_events":
		return cfg.RecentEvents, nil
	case "logging":
		return cfg.Logging, nil
	case "logging.level":
		return cfg.Logging.Level, nil
	case "logging.file":
		return cfg.Logging.File, nil
	case "logging.format":
		return cfg.Logging.Format, nil
	case "logging.max_size_mb":
		return cfg.Logging.MaxSizeMB, nil
	case "logging.max_files":
		return cfg.Logging.MaxFiles, nil
	case "ipc":
		return cfg.IPC, nil
	case "ipc.enabled":
		return cfg.IPC.Enabled, nil
	case "ipc.socket":
		return cfg.IPC.Socket, nil
	}
	return nil, fmt.Errorf("unknown path: %s", path)
}
