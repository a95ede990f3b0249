package session

import (
	"context"
	"fmt"

	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/platform"
	"github.com/1broseidon/xwin/internal/window"
)

func (s *Session) run(ctx context.Context, fn func(w *window.Window)) error {
	_, err := s.Do(ctx, func(w *window.Window) (any, error) {
		fn(w)
		return nil, nil
	})
	return err
}

func (s *Session) SetTitle(ctx context.Context, title string) error {
	return s.run(ctx, func(w *window.Window) { w.SetTitle(title) })
}

// SetSize resizes the window to a logical size.
func (s *Session) SetSize(ctx context.Context, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("size must be positive, got %gx%g", width, height)
	}
	return s.run(ctx, func(w *window.Window) {
		w.SetSize(input.Size{Width: width, Height: height})
	})
}

// SetPosition moves the window frame to a physical position.
func (s *Session) SetPosition(ctx context.Context, x, y int) error {
	return s.run(ctx, func(w *window.Window) {
		w.SetPosition(platform.Position{X: x, Y: y})
	})
}

func (s *Session) SetVisible(ctx context.Context, visible bool) error {
	return s.run(ctx, func(w *window.Window) {
		if visible {
			w.Show()
		} else {
			w.Hide()
		}
	})
}

func (s *Session) SetCaptureCursor(ctx context.Context, capture bool) error {
	return s.run(ctx, func(w *window.Window) { w.SetCaptureCursor(capture) })
}

func (s *Session) SetExitOnEsc(ctx context.Context, exit bool) error {
	return s.run(ctx, func(w *window.Window) { w.SetExitOnEsc(exit) })
}

// RequestClose marks the window for closing; Run returns once it notices.
func (s *Session) RequestClose(ctx context.Context) error {
	return s.run(ctx, func(w *window.Window) { w.SetShouldClose(true) })
}

// Inject queues raw events as if the backend had produced them.
func (s *Session) Inject(ctx context.Context, events ...platform.RawEvent) error {
	return s.run(ctx, func(w *window.Window) {
		for _, ev := range events {
			w.Push(ev)
		}
	})
}
