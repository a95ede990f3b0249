package instances

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/1broseidon/xwin/internal/ipc"
)

func TestNameFromSocket(t *testing.T) {
	tests := []struct {
		file string
		name string
		ok   bool
	}{
		{"xwin.sock", "", true},
		{"/run/user/1000/xwin-game.sock", "game", true},
		{"xwin-.sock", "", false},
		{"xwin-game.pid", "", false},
		{"termtile.sock", "", false},
	}
	for _, tt := range tests {
		name, ok := NameFromSocket(tt.file)
		if name != tt.name || ok != tt.ok {
			t.Errorf("NameFromSocket(%q) = %q, %v; want %q, %v", tt.file, name, ok, tt.name, tt.ok)
		}
	}
}

func listen(t *testing.T, path string) *net.UnixListener {
	t.Helper()
	l, err := net.ListenUnix("unix", &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		t.Fatalf("listen %s: %v", path, err)
	}
	return l
}

// staleSocket leaves a socket file nobody listens on.
func staleSocket(t *testing.T, path string) {
	t.Helper()
	l := listen(t, path)
	l.SetUnlinkOnClose(false)
	l.Close()
}

func setup(t *testing.T) (string, Prober) {
	t.Helper()
	dir := t.TempDir()

	alive := filepath.Join(dir, "xwin-game.sock")
	l := listen(t, alive)
	t.Cleanup(func() { l.Close() })

	staleSocket(t, filepath.Join(dir, "xwin.sock"))
	staleSocket(t, filepath.Join(dir, "other.sock"))
	if err := os.WriteFile(filepath.Join(dir, "xwin-file.sock"), nil, 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	probe := func(socket string) (*ipc.StatusData, error) {
		if socket == alive {
			return &ipc.StatusData{Title: "game"}, nil
		}
		return ProbeSocket(socket)
	}
	return dir, probe
}

func TestScan(t *testing.T) {
	dir, probe := setup(t)

	found, err := Scan(dir, probe)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 instances, got %+v", found)
	}
	if found[0].Name != "" || found[0].Alive || found[0].Error == "" {
		t.Fatalf("expected dead default instance first, got %+v", found[0])
	}
	if found[1].Name != "game" || !found[1].Alive || found[1].Status == nil || found[1].Status.Title != "game" {
		t.Fatalf("unexpected live instance %+v", found[1])
	}

	missing, err := Scan(filepath.Join(dir, "nope"), probe)
	if err != nil || missing != nil {
		t.Fatalf("Scan(missing dir) = %v, %v", missing, err)
	}
}

func TestPruneRemovesOnlyStaleSockets(t *testing.T) {
	dir, probe := setup(t)

	removed, err := Prune(dir, probe)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if len(removed) != 1 || filepath.Base(removed[0]) != "xwin.sock" {
		t.Fatalf("removed = %v", removed)
	}
	for _, keep := range []string{"xwin-game.sock", "other.sock", "xwin-file.sock"} {
		if _, err := os.Stat(filepath.Join(dir, keep)); err != nil {
			t.Fatalf("%s should survive: %v", keep, err)
		}
	}
}

func TestReconciler(t *testing.T) {
	dir, probe := setup(t)
	r := NewReconciler(ReconcilerConfig{Dir: dir, Probe: probe, Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(filepath.Join(dir, "xwin.sock")); os.IsNotExist(err) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("stale socket not removed by background loop")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if removed := r.ReconcileNow(); len(removed) != 0 {
		t.Fatalf("second pass removed %v", removed)
	}
}
