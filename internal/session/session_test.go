package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/platform"
	"github.com/1broseidon/xwin/internal/window"
)

type harness struct {
	session *Session
	backend *platform.MemoryBackend
	errc    chan error
	cancel  context.CancelFunc
}

func start(t *testing.T, settings window.Settings, opts Options) *harness {
	t.Helper()
	backend := platform.NewMemoryBackend(platform.WindowConfig{
		Title:  settings.Title,
		Width:  settings.Size.Width,
		Height: settings.Size.Height,
	}, 1)
	w := window.New(backend, settings)
	s := New(w, opts)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	h := &harness{session: s, backend: backend, errc: errc, cancel: cancel}
	t.Cleanup(func() {
		cancel()
		select {
		case <-errc:
		case <-time.After(5 * time.Second):
		}
	})
	return h
}

func (h *harness) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.errc:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not stop")
		return nil
	}
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSession_CloseRequestStopsLoop(t *testing.T) {
	h := start(t, window.DefaultSettings("close"), Options{RecentEvents: 8})
	h.backend.Inject(platform.Focused{Focused: true}, platform.CloseRequested{})

	if err := h.wait(t); err != nil {
		t.Fatalf("expected clean stop, got %v", err)
	}
	recent := h.session.History().Recent(0)
	if len(recent) != 2 || recent[0].Kind != "focus" || recent[1].Kind != "close" {
		t.Fatalf("unexpected history %+v", recent)
	}
	if _, err := h.session.Status(testContext(t)); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped after exit, got %v", err)
	}
}

func TestSession_ContextCancelStopsLoop(t *testing.T) {
	h := start(t, window.DefaultSettings("cancel"), Options{})
	h.cancel()
	if err := h.wait(t); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSession_CommandsRunOnLoop(t *testing.T) {
	h := start(t, window.DefaultSettings("cmd"), Options{RecentEvents: 4})
	ctx := testContext(t)

	if err := h.session.SetTitle(ctx, "renamed"); err != nil {
		t.Fatalf("SetTitle: %v", err)
	}
	if err := h.session.SetSize(ctx, 300, 200); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if err := h.session.SetSize(ctx, 0, 200); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if err := h.session.SetPosition(ctx, 10, 20); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if err := h.session.SetCaptureCursor(ctx, true); err != nil {
		t.Fatalf("SetCaptureCursor: %v", err)
	}
	if err := h.session.SetExitOnEsc(ctx, true); err != nil {
		t.Fatalf("SetExitOnEsc: %v", err)
	}
	if err := h.session.SetVisible(ctx, false); err != nil {
		t.Fatalf("SetVisible: %v", err)
	}

	st, err := h.session.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Title != "renamed" || st.Size != (input.Size{Width: 300, Height: 200}) {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.Position == nil || *st.Position != (platform.Position{X: 10, Y: 20}) {
		t.Fatalf("unexpected position %+v", st.Position)
	}
	if !st.CaptureCursor || !st.ExitOnEsc || st.ShouldClose {
		t.Fatalf("unexpected flags %+v", st)
	}
	if h.backend.Visible() || h.backend.CursorVisible() {
		t.Fatalf("backend should be hidden with the cursor hidden")
	}
}

func TestSession_EscapeClosesWhenEnabled(t *testing.T) {
	settings := window.DefaultSettings("esc")
	settings.ExitOnEsc = true
	h := start(t, settings, Options{RecentEvents: 4})

	if err := h.session.Inject(testContext(t), platform.KeyboardInput{
		State: platform.Pressed, Scancode: 1, Key: platform.KeyEscape,
	}); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if err := h.wait(t); err != nil {
		t.Fatalf("expected clean stop, got %v", err)
	}
}

func TestSession_RequestCloseAndOnEvent(t *testing.T) {
	seen := make(chan uint64, 4)
	h := start(t, window.DefaultSettings("req"), Options{
		RecentEvents: 4,
		OnEvent:      func(seq uint64, ev input.Event) { seen <- seq },
	})
	ctx := testContext(t)

	if err := h.session.Inject(ctx, platform.ReceivedCharacter{Char: 'x'}); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	select {
	case seq := <-seen:
		if seq != 1 {
			t.Fatalf("expected first sequence number 1, got %d", seq)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("OnEvent not called")
	}

	if err := h.session.RequestClose(ctx); err != nil {
		t.Fatalf("RequestClose: %v", err)
	}
	if err := h.wait(t); err != nil {
		t.Fatalf("expected clean stop, got %v", err)
	}
}

func TestSession_CommandPanicIsRecovered(t *testing.T) {
	h := start(t, window.DefaultSettings("panic"), Options{})
	_, err := h.session.Do(testContext(t), func(*window.Window) (any, error) {
		panic("boom")
	})
	if err == nil {
		t.Fatalf("expected error from panicking command")
	}
	if _, err := h.session.Status(testContext(t)); err != nil {
		t.Fatalf("session should keep running, got %v", err)
	}
}
