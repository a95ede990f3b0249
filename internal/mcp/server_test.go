package mcp

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/instances"
	"github.com/1broseidon/xwin/internal/ipc"
	"github.com/1broseidon/xwin/internal/session"
)

// fakeController records calls and serves a scripted event history.
type fakeController struct {
	mu      sync.Mutex
	status  ipc.StatusData
	calls   []string
	events  []session.Entry
	failOn  string
	offline bool
	// onPoll runs on every RecentEvents call.
	onPoll func(f *fakeController)
}

func (f *fakeController) record(call string) error {
	f.calls = append(f.calls, call)
	if f.offline {
		return errors.New("connection refused")
	}
	if call == f.failOn {
		return errors.New("backend refused")
	}
	return nil
}

func (f *fakeController) GetStatus() (*ipc.StatusData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.offline {
		return nil, errors.New("connection refused")
	}
	st := f.status
	return &st, nil
}

func (f *fakeController) SetTitle(title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("title"); err != nil {
		return err
	}
	f.status.Title = title
	return nil
}

func (f *fakeController) SetSize(width, height float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("size"); err != nil {
		return err
	}
	f.status.Size = input.Size{Width: width, Height: height}
	return nil
}

func (f *fakeController) SetPosition(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("position")
}

func (f *fakeController) SetVisible(bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("visible")
}

func (f *fakeController) SetCapture(capture bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("capture_cursor"); err != nil {
		return err
	}
	f.status.CaptureCursor = capture
	return nil
}

func (f *fakeController) SetExitOnEsc(exit bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("exit_on_esc"); err != nil {
		return err
	}
	f.status.ExitOnEsc = exit
	return nil
}

func (f *fakeController) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("close")
}

func (f *fakeController) RecentEvents(limit int, since uint64) (*ipc.EventsData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.offline {
		return nil, errors.New("connection refused")
	}
	if f.onPoll != nil {
		f.onPoll(f)
	}
	var out []session.Entry
	for _, e := range f.events {
		if e.Seq > since {
			out = append(out, e)
		}
	}
	if since == 0 && limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	var total uint64
	if n := len(f.events); n > 0 {
		total = f.events[n-1].Seq
	}
	return &ipc.EventsData{Events: out, Total: total}, nil
}

func (f *fakeController) InjectKey(key string, scancode uint32, noRelease bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("inject:" + key)
}

func (f *fakeController) appendEvent(rec input.Record) {
	seq := uint64(len(f.events) + 1)
	f.events = append(f.events, session.Entry{Seq: seq, Time: time.Now(), Record: rec})
}

func newTestServer(t *testing.T, c *fakeController) *Server {
	t.Helper()
	s := NewServer(nil, nil)
	s.pollInterval = time.Millisecond
	s.dialFn = func(instance string) (Controller, error) {
		if strings.Contains(instance, "/") {
			return nil, errors.New("invalid instance name")
		}
		return c, nil
	}
	s.launchFn = func([]string) (int, error) {
		t.Fatalf("unexpected launch")
		return 0, nil
	}
	return s
}

func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestWindowStatus(t *testing.T) {
	c := &fakeController{status: ipc.StatusData{Title: "demo", ScaleFactor: 2}}
	s := newTestServer(t, c)

	_, out, err := s.handleWindowStatus(context.Background(), nil, InstanceInput{})
	if err != nil {
		t.Fatalf("window_status: %v", err)
	}
	if out.Instance != "default" || out.Status.Title != "demo" || out.Status.ScaleFactor != 2 {
		t.Fatalf("unexpected output: %+v", out)
	}

	if _, _, err := s.handleWindowStatus(context.Background(), nil, InstanceInput{Instance: "a/b"}); err == nil {
		t.Fatalf("expected error for invalid instance")
	}

	c.offline = true
	_, _, err = s.handleWindowStatus(context.Background(), nil, InstanceInput{Instance: "game"})
	if err == nil || !strings.Contains(err.Error(), `"game"`) {
		t.Fatalf("expected instance in error, got %v", err)
	}
}

func TestSetWindowAppliesOnlyGivenFields(t *testing.T) {
	c := &fakeController{}
	s := newTestServer(t, c)

	_, out, err := s.handleSetWindow(context.Background(), nil, SetWindowInput{
		Title:         strPtr("renamed"),
		Width:         floatPtr(320),
		Height:        floatPtr(200),
		CaptureCursor: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("set_window: %v", err)
	}
	wantApplied := []string{"title", "size", "capture_cursor"}
	if !reflect.DeepEqual(out.Applied, wantApplied) {
		t.Fatalf("applied = %v, want %v", out.Applied, wantApplied)
	}
	if out.Status.Title != "renamed" || out.Status.Size.Width != 320 || !out.Status.CaptureCursor {
		t.Fatalf("status not refreshed: %+v", out.Status)
	}
	if !reflect.DeepEqual(c.calls, wantApplied) {
		t.Fatalf("calls = %v, want %v", c.calls, wantApplied)
	}
}

func TestSetWindowRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   SetWindowInput
		want string
	}{
		{"nothing", SetWindowInput{}, "nothing to change"},
		{"width only", SetWindowInput{Width: floatPtr(10)}, "width and height"},
		{"x only", SetWindowInput{X: intPtr(10)}, "x and y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeController{}
			s := newTestServer(t, c)
			_, _, err := s.handleSetWindow(context.Background(), nil, tt.in)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
			if len(c.calls) != 0 {
				t.Fatalf("expected no calls, got %v", c.calls)
			}
		})
	}
}

func TestSetWindowStopsAtFirstFailure(t *testing.T) {
	c := &fakeController{failOn: "position"}
	s := newTestServer(t, c)

	_, _, err := s.handleSetWindow(context.Background(), nil, SetWindowInput{
		Title:     strPtr("x"),
		X:         intPtr(1),
		Y:         intPtr(2),
		ExitOnEsc: boolPtr(true),
	})
	if err == nil || !strings.Contains(err.Error(), "set position") {
		t.Fatalf("expected position failure, got %v", err)
	}
	if want := []string{"title", "position"}; !reflect.DeepEqual(c.calls, want) {
		t.Fatalf("calls = %v, want %v", c.calls, want)
	}
}

func TestCloseWindowAndInjectKey(t *testing.T) {
	c := &fakeController{}
	s := newTestServer(t, c)

	_, closed, err := s.handleCloseWindow(context.Background(), nil, InstanceInput{})
	if err != nil || !closed.Closed {
		t.Fatalf("close_window: %+v, %v", closed, err)
	}

	if _, _, err := s.handleInjectKey(context.Background(), nil, InjectKeyInput{Key: "  "}); err == nil {
		t.Fatalf("expected error for empty key")
	}
	_, injected, err := s.handleInjectKey(context.Background(), nil, InjectKeyInput{Key: "Escape"})
	if err != nil || !injected.Injected {
		t.Fatalf("inject_key: %+v, %v", injected, err)
	}
	if want := []string{"close", "inject:Escape"}; !reflect.DeepEqual(c.calls, want) {
		t.Fatalf("calls = %v, want %v", c.calls, want)
	}
}

func TestRecentEvents(t *testing.T) {
	c := &fakeController{}
	c.appendEvent(input.Record{Kind: "focus"})
	c.appendEvent(input.Record{Kind: "button", Detail: "key:A", State: "Press"})
	c.appendEvent(input.Record{Kind: "button", Detail: "key:A", State: "Release"})
	s := newTestServer(t, c)

	_, out, err := s.handleRecentEvents(context.Background(), nil, RecentEventsInput{Limit: 2})
	if err != nil {
		t.Fatalf("recent_events: %v", err)
	}
	if out.Total != 3 || len(out.Events) != 2 || out.Events[0].Seq != 2 {
		t.Fatalf("unexpected output: %+v", out)
	}

	_, out, err = s.handleRecentEvents(context.Background(), nil, RecentEventsInput{Since: 3})
	if err != nil {
		t.Fatalf("recent_events since: %v", err)
	}
	if out.Events == nil || len(out.Events) != 0 {
		t.Fatalf("expected empty non-nil events, got %#v", out.Events)
	}

	if _, _, err := s.handleRecentEvents(context.Background(), nil, RecentEventsInput{Limit: -1}); err == nil {
		t.Fatalf("expected error for negative limit")
	}
}

func TestWaitForEventMatchesNewEvent(t *testing.T) {
	c := &fakeController{}
	// An old Escape press must not satisfy the wait.
	c.appendEvent(input.Record{Kind: "button", Detail: "key:Escape", State: "Press"})
	polls := 0
	c.onPoll = func(f *fakeController) {
		polls++
		switch polls {
		case 3:
			f.appendEvent(input.Record{Kind: "text", Text: strPtr("q")})
		case 5:
			f.appendEvent(input.Record{Kind: "button", Detail: "key:Escape", State: "Press"})
		}
	}
	s := newTestServer(t, c)

	_, out, err := s.handleWaitForEvent(context.Background(), nil, WaitForEventInput{
		Kind:    "button",
		Detail:  "key:escape",
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("wait_for_event: %v", err)
	}
	if !out.Found || out.Event == nil || out.Event.Seq != 3 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestWaitForEventSinceAndTimeout(t *testing.T) {
	c := &fakeController{}
	c.appendEvent(input.Record{Kind: "close"})
	s := newTestServer(t, c)

	_, out, err := s.handleWaitForEvent(context.Background(), nil, WaitForEventInput{Kind: "close", Since: 0, Timeout: 1})
	if err != nil {
		t.Fatalf("wait_for_event: %v", err)
	}
	if out.Found {
		t.Fatalf("expected no match for an event recorded before the call")
	}

	// An explicit cursor makes earlier events visible.
	c.appendEvent(input.Record{Kind: "focus"})
	_, out, err = s.handleWaitForEvent(context.Background(), nil, WaitForEventInput{Kind: "FOCUS", Since: 1, Timeout: 1})
	if err != nil {
		t.Fatalf("wait_for_event since: %v", err)
	}
	if !out.Found || out.Event.Seq != 2 {
		t.Fatalf("unexpected output: %+v", out)
	}

	if _, _, err := s.handleWaitForEvent(context.Background(), nil, WaitForEventInput{}); err == nil {
		t.Fatalf("expected error for missing kind")
	}
}

func TestWaitForEventHonoursContext(t *testing.T) {
	c := &fakeController{}
	s := newTestServer(t, c)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.handleWaitForEvent(ctx, nil, WaitForEventInput{Kind: "close", Timeout: 30})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLaunchArgs(t *testing.T) {
	got := launchArgs(LaunchWindowInput{
		Instance:      "game",
		Title:         "Demo",
		Width:         800,
		Height:        600.5,
		CaptureCursor: true,
		ExitOnEsc:     true,
	})
	want := []string{"run", "--name", "game", "--title", "Demo", "--width", "800", "--height", "600.5", "--capture", "--exit-on-esc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("launchArgs = %v, want %v", got, want)
	}
	if got := launchArgs(LaunchWindowInput{}); !reflect.DeepEqual(got, []string{"run"}) {
		t.Fatalf("launchArgs(empty) = %v", got)
	}
}

func TestLaunchWindowWaitsForSocket(t *testing.T) {
	c := &fakeController{offline: true, status: ipc.StatusData{Title: "Demo"}}
	s := newTestServer(t, c)
	var gotArgs []string
	s.launchFn = func(args []string) (int, error) {
		gotArgs = args
		go func() {
			time.Sleep(20 * time.Millisecond)
			c.mu.Lock()
			c.offline = false
			c.mu.Unlock()
		}()
		return 4242, nil
	}

	_, out, err := s.handleLaunchWindow(context.Background(), nil, LaunchWindowInput{Instance: "demo", Title: "Demo", Timeout: 5})
	if err != nil {
		t.Fatalf("launch_window: %v", err)
	}
	if out.PID != 4242 || out.Instance != "demo" || out.Status.Title != "Demo" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if !strings.HasSuffix(out.Socket, "xwin-demo.sock") {
		t.Fatalf("unexpected socket %q", out.Socket)
	}
	if len(gotArgs) == 0 || gotArgs[0] != "run" {
		t.Fatalf("unexpected args %v", gotArgs)
	}
}

func TestLaunchWindowRefusesRunningInstance(t *testing.T) {
	c := &fakeController{}
	s := newTestServer(t, c)
	_, _, err := s.handleLaunchWindow(context.Background(), nil, LaunchWindowInput{})
	if err == nil || !strings.Contains(err.Error(), "already running") {
		t.Fatalf("expected already running error, got %v", err)
	}
}

func TestListWindowsFiltersDead(t *testing.T) {
	s := newTestServer(t, &fakeController{})
	s.scanFn = func() ([]instances.Instance, error) {
		return []instances.Instance{
			{Name: "", Socket: "/run/xwin.sock", Error: "connection refused"},
			{Name: "game", Socket: "/run/xwin-game.sock", Alive: true, Status: &ipc.StatusData{Title: "game"}},
		}, nil
	}

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("list_windows: %v", err)
	}
	if len(out.Windows) != 1 || out.Windows[0].Name != "game" {
		t.Fatalf("unexpected windows %+v", out.Windows)
	}

	_, out, err = s.handleListWindows(context.Background(), nil, ListWindowsInput{IncludeDead: true})
	if err != nil {
		t.Fatalf("list_windows include_dead: %v", err)
	}
	if len(out.Windows) != 2 {
		t.Fatalf("expected dead entry too, got %+v", out.Windows)
	}

	s.scanFn = func() ([]instances.Instance, error) { return nil, errors.New("no runtime dir") }
	if _, _, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{}); err == nil {
		t.Fatalf("expected scan error")
	}
}
