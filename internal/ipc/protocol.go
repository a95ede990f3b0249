package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/1broseidon/xwin/internal/session"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandGetStatus    CommandType = "GET_STATUS"
	CommandSetTitle     CommandType = "SET_TITLE"
	CommandSetSize      CommandType = "SET_SIZE"
	CommandSetPosition  CommandType = "SET_POSITION"
	CommandSetVisible   CommandType = "SET_VISIBLE"
	CommandSetCapture   CommandType = "SET_CAPTURE"
	CommandSetExitOnEsc CommandType = "SET_EXIT_ON_ESC"
	CommandClose        CommandType = "CLOSE"
	CommandRecentEvents CommandType = "RECENT_EVENTS"
	CommandInjectKey    CommandType = "INJECT_KEY"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData is returned by GET_STATUS.
type StatusData = session.Status

type TitlePayload struct {
	Title string `json:"title"`
}

// SizePayload is a logical inner size.
type SizePayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PositionPayload is a physical outer position.
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type TogglePayload struct {
	Enabled bool `json:"enabled"`
}

// RecentEventsPayload selects history entries. Since wins over Limit when
// set.
type RecentEventsPayload struct {
	Limit int    `json:"limit,omitempty"`
	Since uint64 `json:"since,omitempty"`
}

type EventsData struct {
	Events []session.Entry `json:"events"`
	Total  uint64          `json:"total"`
}

// InjectKeyPayload simulates a key. Key is a VirtualKeyCode name such as
// "Escape" or "A". Release defaults to following the press.
type InjectKeyPayload struct {
	Key       string `json:"key"`
	Scancode  uint32 `json:"scancode,omitempty"`
	NoRelease bool   `json:"no_release,omitempty"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	if req.Command == "" {
		return nil, fmt.Errorf("command is required")
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
