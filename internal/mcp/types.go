package mcp

import (
	"github.com/1broseidon/xwin/internal/instances"
	"github.com/1broseidon/xwin/internal/ipc"
	"github.com/1broseidon/xwin/internal/session"
)

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	IncludeDead bool `json:"include_dead,omitempty" jsonschema:"Also list sockets whose window no longer answers"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []instances.Instance `json:"windows"`
}

// InstanceInput selects a running window.
type InstanceInput struct {
	Instance string `json:"instance,omitempty" jsonschema:"Window instance name given to xwin run --name (default: the unnamed window)"`
}

// WindowStatusOutput is the output for the window_status tool.
type WindowStatusOutput struct {
	Instance string         `json:"instance"`
	Status   ipc.StatusData `json:"status"`
}

// SetWindowInput is the input for the set_window tool. Only provided fields
// are applied.
type SetWindowInput struct {
	Instance      string   `json:"instance,omitempty" jsonschema:"Window instance name (default: the unnamed window)"`
	Title         *string  `json:"title,omitempty" jsonschema:"New window title"`
	Width         *float64 `json:"width,omitempty" jsonschema:"New logical inner width; requires height"`
	Height        *float64 `json:"height,omitempty" jsonschema:"New logical inner height; requires width"`
	X             *int     `json:"x,omitempty" jsonschema:"New outer x position in physical pixels; requires y"`
	Y             *int     `json:"y,omitempty" jsonschema:"New outer y position in physical pixels; requires x"`
	Visible       *bool    `json:"visible,omitempty" jsonschema:"Show (true) or hide (false) the window"`
	CaptureCursor *bool    `json:"capture_cursor,omitempty" jsonschema:"Enable relative mouse capture: the cursor is hidden and motion is reported as deltas"`
	ExitOnEsc     *bool    `json:"exit_on_esc,omitempty" jsonschema:"Close the window when Escape is pressed"`
}

// SetWindowOutput is the output for the set_window tool.
type SetWindowOutput struct {
	Applied []string       `json:"applied"`
	Status  ipc.StatusData `json:"status"`
}

// CloseWindowOutput is the output for the close_window tool.
type CloseWindowOutput struct {
	Closed bool `json:"closed"`
}

// RecentEventsInput is the input for the recent_events tool.
type RecentEventsInput struct {
	Instance string `json:"instance,omitempty" jsonschema:"Window instance name (default: the unnamed window)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of newest events to return (default: all retained)"`
	Since    uint64 `json:"since,omitempty" jsonschema:"Only return events with a sequence number greater than this"`
}

// RecentEventsOutput is the output for the recent_events tool.
type RecentEventsOutput struct {
	Events []session.Entry `json:"events"`
	Total  uint64          `json:"total"`
}

// WaitForEventInput is the input for the wait_for_event tool.
type WaitForEventInput struct {
	Instance string `json:"instance,omitempty" jsonschema:"Window instance name (default: the unnamed window)"`
	Kind     string `json:"kind" jsonschema:"required,Event kind to wait for: resize, text, focus, cursor, close, button, move or file_drag"`
	Detail   string `json:"detail,omitempty" jsonschema:"Optional detail to match, e.g. key:Escape, mouse:Left or MouseRelative"`
	Since    uint64 `json:"since,omitempty" jsonschema:"Only consider events after this sequence number (default: events arriving after the call)"`
	Timeout  int    `json:"timeout,omitempty" jsonschema:"Timeout in seconds (default: 30)"`
}

// WaitForEventOutput is the output for the wait_for_event tool.
type WaitForEventOutput struct {
	Found bool           `json:"found"`
	Event *session.Entry `json:"event,omitempty"`
}

// InjectKeyInput is the input for the inject_key tool.
type InjectKeyInput struct {
	Instance  string `json:"instance,omitempty" jsonschema:"Window instance name (default: the unnamed window)"`
	Key       string `json:"key" jsonschema:"required,Key name such as Escape, A, Key1, F5, Return or Space"`
	Scancode  uint32 `json:"scancode,omitempty" jsonschema:"Optional scancode reported with the key"`
	NoRelease bool   `json:"no_release,omitempty" jsonschema:"Only press the key, without the matching release"`
}

// InjectKeyOutput is the output for the inject_key tool.
type InjectKeyOutput struct {
	Injected bool `json:"injected"`
}

// LaunchWindowInput is the input for the launch_window tool.
type LaunchWindowInput struct {
	Instance      string  `json:"instance,omitempty" jsonschema:"Instance name for the new window (default: the unnamed window)"`
	Title         string  `json:"title,omitempty" jsonschema:"Window title (default: from config)"`
	Width         float64 `json:"width,omitempty" jsonschema:"Logical inner width (default: from config)"`
	Height        float64 `json:"height,omitempty" jsonschema:"Logical inner height (default: from config)"`
	CaptureCursor bool    `json:"capture_cursor,omitempty" jsonschema:"Start with relative mouse capture enabled"`
	ExitOnEsc     bool    `json:"exit_on_esc,omitempty" jsonschema:"Close the window when Escape is pressed"`
	Timeout       int     `json:"timeout,omitempty" jsonschema:"Seconds to wait for the window to answer (default: 10)"`
}

// LaunchWindowOutput is the output for the launch_window tool.
type LaunchWindowOutput struct {
	Instance string         `json:"instance"`
	PID      int            `json:"pid"`
	Socket   string         `json:"socket"`
	Status   ipc.StatusData `json:"status"`
}
