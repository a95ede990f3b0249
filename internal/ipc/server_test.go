package ipc

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/xwin/internal/platform"
	"github.com/1broseidon/xwin/internal/session"
	"github.com/1broseidon/xwin/internal/window"
)

func startServer(t *testing.T, settings window.Settings) (*Client, *platform.MemoryBackend, chan error) {
	t.Helper()
	backend := platform.NewMemoryBackend(platform.WindowConfig{
		Title:  settings.Title,
		Width:  settings.Size.Width,
		Height: settings.Size.Height,
	}, 1)
	sess := session.New(window.New(backend, settings), session.Options{RecentEvents: 16})

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- sess.Run(ctx) }()

	socket := filepath.Join(t.TempDir(), "xwin.sock")
	srv, err := NewServer(socket, sess, nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		srv.Stop()
		cancel()
	})
	return NewClientWithSocket(socket), backend, errc
}

func TestServer_StatusAndMutations(t *testing.T) {
	client, backend, _ := startServer(t, window.DefaultSettings("ipc"))

	if err := client.Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := client.SetTitle("via-ipc"); err != nil {
		t.Fatalf("SetTitle: %v", err)
	}
	if err := client.SetSize(320, 240); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if err := client.SetPosition(7, 9); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if err := client.SetCapture(true); err != nil {
		t.Fatalf("SetCapture: %v", err)
	}
	if err := client.SetExitOnEsc(true); err != nil {
		t.Fatalf("SetExitOnEsc: %v", err)
	}
	if err := client.SetVisible(false); err != nil {
		t.Fatalf("SetVisible: %v", err)
	}

	st, err := client.GetStatus()
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if st.Title != "via-ipc" || st.Size.Width != 320 || st.Size.Height != 240 {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.Position == nil || st.Position.X != 7 || st.Position.Y != 9 {
		t.Fatalf("unexpected position %+v", st.Position)
	}
	if !st.CaptureCursor || !st.ExitOnEsc {
		t.Fatalf("expected capture and exit-on-esc, got %+v", st)
	}
	if backend.NativeTitle() != "via-ipc" || backend.Visible() {
		t.Fatalf("backend not updated: title=%q visible=%t", backend.NativeTitle(), backend.Visible())
	}
}

func TestServer_InvalidRequests(t *testing.T) {
	client, _, _ := startServer(t, window.DefaultSettings("ipc"))

	if err := client.SetSize(-1, 10); err == nil {
		t.Fatalf("expected error for negative size")
	}
	if err := client.InjectKey("NoSuchKey", 0, false); err == nil || !strings.Contains(err.Error(), "Unknown key") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
	if _, err := client.send(CommandType("BOGUS"), nil); err == nil || !strings.Contains(err.Error(), "Unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
	if _, err := client.send(CommandSetTitle, nil); err == nil {
		t.Fatalf("expected error for missing payload")
	}
}

func TestServer_InjectKeyAndRecentEvents(t *testing.T) {
	client, _, _ := startServer(t, window.DefaultSettings("ipc"))

	if err := client.InjectKey("A", 38, false); err != nil {
		t.Fatalf("InjectKey: %v", err)
	}

	var data *EventsData
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		var err error
		data, err = client.RecentEvents(0, 0)
		if err != nil {
			t.Fatalf("RecentEvents: %v", err)
		}
		if len(data.Events) == 2 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if data == nil || len(data.Events) != 2 {
		t.Fatalf("expected press and release, got %+v", data)
	}
	if data.Events[0].Detail != "key:A" || data.Events[0].State != "Press" || data.Events[1].State != "Release" {
		t.Fatalf("unexpected events %+v", data.Events)
	}

	since, err := client.RecentEvents(0, data.Events[0].Seq)
	if err != nil {
		t.Fatalf("RecentEvents since: %v", err)
	}
	if len(since.Events) != 1 || since.Total != 2 {
		t.Fatalf("expected one event after first seq, got %+v", since)
	}
}

func TestServer_CloseStopsSession(t *testing.T) {
	client, _, errc := startServer(t, window.DefaultSettings("ipc"))

	if err := client.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not stop after CLOSE")
	}

	if _, err := client.GetStatus(); err == nil {
		t.Fatalf("expected error once the session stopped")
	}
}

func TestParseRequest(t *testing.T) {
	if _, err := ParseRequest([]byte(`{"payload":{}}`)); err == nil {
		t.Fatalf("expected error for missing command")
	}
	req, err := ParseRequest([]byte(`{"command":"SET_TITLE","payload":{"title":"x"}}`))
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Command != CommandSetTitle || len(req.Payload) == 0 {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestSocketFor(t *testing.T) {
	runtimeDir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", runtimeDir)

	tests := []struct {
		instance   string
		configured string
		want       string
		wantErr    bool
	}{
		{"", "", filepath.Join(runtimeDir, "xwin.sock"), false},
		{"", "/srv/custom.sock", "/srv/custom.sock", false},
		{"game", "/srv/custom.sock", filepath.Join(runtimeDir, "xwin-game.sock"), false},
		{"a/b", "", "", true},
	}
	for _, tt := range tests {
		got, err := SocketFor(tt.instance, tt.configured)
		if (err != nil) != tt.wantErr {
			t.Fatalf("SocketFor(%q, %q) err=%v, wantErr=%v", tt.instance, tt.configured, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("SocketFor(%q, %q)=%q, want %q", tt.instance, tt.configured, got, tt.want)
		}
	}
}
