package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/xwin/internal/instances"
	"github.com/1broseidon/xwin/internal/session"
)

const defaultWaitTimeout = 30 * time.Second

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	found, err := s.scanFn()
	if err != nil {
		return nil, ListWindowsOutput{}, fmt.Errorf("failed to list windows: %w", err)
	}
	windows := make([]instances.Instance, 0, len(found))
	for _, inst := range found {
		if inst.Alive || args.IncludeDead {
			windows = append(windows, inst)
		}
	}
	return nil, ListWindowsOutput{Windows: windows}, nil
}

func (s *Server) handleWindowStatus(_ context.Context, _ *mcpsdk.CallToolRequest, args InstanceInput) (*mcpsdk.CallToolResult, WindowStatusOutput, error) {
	c, err := s.controller(args.Instance)
	if err != nil {
		return nil, WindowStatusOutput{}, err
	}
	status, err := c.GetStatus()
	if err != nil {
		return nil, WindowStatusOutput{}, fmt.Errorf("window %q: %w", displayName(args.Instance), err)
	}
	return nil, WindowStatusOutput{Instance: displayName(args.Instance), Status: *status}, nil
}

// change is one field update requested through set_window.
type change struct {
	name  string
	apply func() error
}

func (s *Server) handleSetWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args SetWindowInput) (*mcpsdk.CallToolResult, SetWindowOutput, error) {
	if (args.Width == nil) != (args.Height == nil) {
		return nil, SetWindowOutput{}, fmt.Errorf("width and height must be given together")
	}
	if (args.X == nil) != (args.Y == nil) {
		return nil, SetWindowOutput{}, fmt.Errorf("x and y must be given together")
	}

	c, err := s.controller(args.Instance)
	if err != nil {
		return nil, SetWindowOutput{}, err
	}

	var changes []change
	add := func(name string, fn func() error) {
		changes = append(changes, change{name: name, apply: fn})
	}
	if args.Title != nil {
		add("title", func() error { return c.SetTitle(*args.Title) })
	}
	if args.Width != nil {
		add("size", func() error { return c.SetSize(*args.Width, *args.Height) })
	}
	if args.X != nil {
		add("position", func() error { return c.SetPosition(*args.X, *args.Y) })
	}
	if args.Visible != nil {
		add("visible", func() error { return c.SetVisible(*args.Visible) })
	}
	if args.CaptureCursor != nil {
		add("capture_cursor", func() error { return c.SetCapture(*args.CaptureCursor) })
	}
	if args.ExitOnEsc != nil {
		add("exit_on_esc", func() error { return c.SetExitOnEsc(*args.ExitOnEsc) })
	}
	if len(changes) == 0 {
		return nil, SetWindowOutput{}, fmt.Errorf("nothing to change; pass at least one field")
	}

	applied := make([]string, 0, len(changes))
	for _, ch := range changes {
		if err := ch.apply(); err != nil {
			s.logger.Warn("set_window partially applied", "instance", displayName(args.Instance), "applied", applied, "error", err)
			return nil, SetWindowOutput{}, fmt.Errorf("set %s: %w", ch.name, err)
		}
		applied = append(applied, ch.name)
	}

	status, err := c.GetStatus()
	if err != nil {
		return nil, SetWindowOutput{}, err
	}
	s.logger.Info("window updated", "instance", displayName(args.Instance), "applied", applied)
	return nil, SetWindowOutput{Applied: applied, Status: *status}, nil
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args InstanceInput) (*mcpsdk.CallToolResult, CloseWindowOutput, error) {
	c, err := s.controller(args.Instance)
	if err != nil {
		return nil, CloseWindowOutput{}, err
	}
	if err := c.Close(); err != nil {
		return nil, CloseWindowOutput{}, fmt.Errorf("window %q: %w", displayName(args.Instance), err)
	}
	s.logger.Info("window close requested", "instance", displayName(args.Instance))
	return nil, CloseWindowOutput{Closed: true}, nil
}

func (s *Server) handleRecentEvents(_ context.Context, _ *mcpsdk.CallToolRequest, args RecentEventsInput) (*mcpsdk.CallToolResult, RecentEventsOutput, error) {
	if args.Limit < 0 {
		return nil, RecentEventsOutput{}, fmt.Errorf("limit must be >= 0")
	}
	c, err := s.controller(args.Instance)
	if err != nil {
		return nil, RecentEventsOutput{}, err
	}
	data, err := c.RecentEvents(args.Limit, args.Since)
	if err != nil {
		return nil, RecentEventsOutput{}, fmt.Errorf("window %q: %w", displayName(args.Instance), err)
	}
	events := data.Events
	if events == nil {
		events = []session.Entry{}
	}
	return nil, RecentEventsOutput{Events: events, Total: data.Total}, nil
}

func (s *Server) handleWaitForEvent(ctx context.Context, _ *mcpsdk.CallToolRequest, args WaitForEventInput) (*mcpsdk.CallToolResult, WaitForEventOutput, error) {
	kind := strings.TrimSpace(args.Kind)
	if kind == "" {
		return nil, WaitForEventOutput{}, fmt.Errorf("kind is required")
	}
	c, err := s.controller(args.Instance)
	if err != nil {
		return nil, WaitForEventOutput{}, err
	}

	timeout := time.Duration(args.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}

	since := args.Since
	if since == 0 {
		// Only events that arrive after the call.
		data, err := c.RecentEvents(1, 0)
		if err != nil {
			return nil, WaitForEventOutput{}, fmt.Errorf("window %q: %w", displayName(args.Instance), err)
		}
		since = data.Total
	}

	start := time.Now()
	deadline := start.Add(timeout)
	for {
		data, err := c.RecentEvents(0, since)
		if err != nil {
			return nil, WaitForEventOutput{}, fmt.Errorf("window %q: %w", displayName(args.Instance), err)
		}
		for i := range data.Events {
			entry := data.Events[i]
			if matchEvent(entry, kind, args.Detail) {
				s.logger.Debug("event matched", "instance", displayName(args.Instance), "kind", kind,
					"seq", entry.Seq, "elapsed_ms", time.Since(start).Milliseconds())
				return nil, WaitForEventOutput{Found: true, Event: &entry}, nil
			}
			since = entry.Seq
		}

		if time.Now().After(deadline) {
			return nil, WaitForEventOutput{Found: false}, nil
		}
		select {
		case <-ctx.Done():
			return nil, WaitForEventOutput{}, ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}

func matchEvent(e session.Entry, kind, detail string) bool {
	if !strings.EqualFold(e.Kind, kind) {
		return false
	}
	return detail == "" || strings.EqualFold(e.Detail, detail)
}

func (s *Server) handleInjectKey(_ context.Context, _ *mcpsdk.CallToolRequest, args InjectKeyInput) (*mcpsdk.CallToolResult, InjectKeyOutput, error) {
	key := strings.TrimSpace(args.Key)
	if key == "" {
		return nil, InjectKeyOutput{}, fmt.Errorf("key is required")
	}
	c, err := s.controller(args.Instance)
	if err != nil {
		return nil, InjectKeyOutput{}, err
	}
	if err := c.InjectKey(key, args.Scancode, args.NoRelease); err != nil {
		return nil, InjectKeyOutput{}, fmt.Errorf("window %q: %w", displayName(args.Instance), err)
	}
	s.logger.Debug("key injected", "instance", displayName(args.Instance), "key", key)
	return nil, InjectKeyOutput{Injected: true}, nil
}
