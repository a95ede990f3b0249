// Package session runs a window on the goroutine that owns it. Remote
// callers never touch the window directly: they submit commands that the
// session loop executes between polls.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/platform"
	"github.com/1broseidon/xwin/internal/window"
)

// ErrStopped is returned for commands submitted after the loop exited.
var ErrStopped = errors.New("session stopped")

// Command runs on the session goroutine with exclusive access to the window.
type Command func(w *window.Window) (any, error)

type request struct {
	cmd   Command
	reply chan result
}

type result struct {
	value any
	err   error
}

// Options configures a Session.
type Options struct {
	// RecentEvents bounds the event history.
	RecentEvents int
	Logger       *slog.Logger
	// OnEvent is called on the session goroutine for every event.
	OnEvent func(seq uint64, ev input.Event)
}

// Session owns a window and its event loop.
type Session struct {
	win     *window.Window
	logger  *slog.Logger
	history *History
	onEvent func(uint64, input.Event)

	requests chan request
	done     chan struct{}
	stopOnce sync.Once
	started  time.Time
}

func New(win *window.Window, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		win:      win,
		logger:   logger,
		history:  NewHistory(opts.RecentEvents),
		onEvent:  opts.OnEvent,
		requests: make(chan request),
		done:     make(chan struct{}),
		started:  time.Now(),
	}
}

// History returns the recorded events.
func (s *Session) History() *History {
	return s.history
}

// Done is closed when Run returns.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Run drains events and executes commands until the window should close or
// ctx ends. It must be called from the goroutine that created the window.
// A nil error means the window asked to close.
func (s *Session) Run(ctx context.Context) error {
	defer s.stopOnce.Do(func() { close(s.done) })

	s.logger.Info("session started", "title", s.win.Title())
	for {
		s.drain()
		if s.win.ShouldClose() {
			s.logger.Info("session stopped", "reason", "close requested", "events", s.history.Total())
			return nil
		}

		backend, pushed := s.win.Ready()
		select {
		case <-ctx.Done():
			s.logger.Info("session stopped", "reason", ctx.Err(), "events", s.history.Total())
			return ctx.Err()
		case req := <-s.requests:
			req.reply <- s.exec(req.cmd)
		case <-backend:
		case <-pushed:
		}
	}
}

func (s *Session) drain() {
	for {
		ev, ok := s.win.Poll()
		if !ok {
			return
		}
		seq := s.history.Add(ev, time.Now())
		s.logger.Debug("event", "seq", seq, "event", ev.String())
		if s.onEvent != nil {
			s.onEvent(seq, ev)
		}
		if s.win.ShouldClose() {
			return
		}
	}
}

func (s *Session) exec(cmd Command) (res result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("command panic recovered", "error", r)
			res = result{err: fmt.Errorf("command panicked: %v", r)}
		}
	}()
	v, err := cmd(s.win)
	return result{value: v, err: err}
}

// Do runs cmd on the session goroutine and waits for its result.
func (s *Session) Do(ctx context.Context, cmd Command) (any, error) {
	req := request{cmd: cmd, reply: make(chan result, 1)}
	select {
	case s.requests <- req:
	case <-s.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case res := <-req.reply:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Status is a snapshot of the window state.
type Status struct {
	Title         string             `json:"title"`
	Size          input.Size         `json:"size"`
	DrawSize      input.Size         `json:"draw_size"`
	ScaleFactor   float64            `json:"scale_factor"`
	Position      *platform.Position `json:"position,omitempty"`
	CaptureCursor bool               `json:"capture_cursor"`
	ExitOnEsc     bool               `json:"exit_on_esc"`
	ShouldClose   bool               `json:"should_close"`
	EventsSeen    uint64             `json:"events_seen"`
	UptimeSeconds int64              `json:"uptime_seconds"`
}

// Status reads the window state on the session goroutine.
func (s *Session) Status(ctx context.Context) (Status, error) {
	v, err := s.Do(ctx, func(w *window.Window) (any, error) {
		st := Status{
			Title:         w.Title(),
			Size:          w.Size(),
			DrawSize:      w.DrawSize(),
			ScaleFactor:   w.ScaleFactor(),
			CaptureCursor: w.CursorCaptured(),
			ExitOnEsc:     w.ExitOnEsc(),
			ShouldClose:   w.ShouldClose(),
			EventsSeen:    s.history.Total(),
			UptimeSeconds: int64(time.Since(s.started).Seconds()),
		}
		if pos, ok := w.Position(); ok {
			st.Position = &pos
		}
		return st, nil
	})
	if err != nil {
		return Status{}, err
	}
	return v.(Status), nil
}
