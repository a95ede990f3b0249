package displayenv

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestResolve_UsesExistingEnv(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return ":99", "/tmp/should-not-be-used" },
		func(string) string { return ":88" },
	)
	defer restore()

	env := []string{
		"HOME=" + t.TempDir(),
		"DISPLAY=:7",
		"XAUTHORITY=/tmp/xauth-existing",
	}
	got, err := Resolve(env, Env{Display: ":1", XAuthority: "/tmp/cfg"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Display != ":7" || got.XAuthority != "/tmp/xauth-existing" {
		t.Fatalf("Resolve = %+v, want existing env", got)
	}
}

func TestResolve_UsesConfigAndFallsBackToHomeXAuthority(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return "", "" },
		func(string) string { return "" },
	)
	defer restore()

	home := t.TempDir()
	xauth := filepath.Join(home, ".Xauthority")
	if err := os.WriteFile(xauth, []byte("cookie"), 0600); err != nil {
		t.Fatalf("write xauthority: %v", err)
	}

	got, err := Resolve([]string{"HOME=" + home}, Env{Display: ":1"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Display != ":1" || got.XAuthority != xauth {
		t.Fatalf("Resolve = %+v, want :1 and %q", got, xauth)
	}
}

func TestResolve_UsesDetectedValues(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return ":5", "/tmp/xauth-detected" },
		func(string) string { return "" },
	)
	defer restore()

	got, err := Resolve([]string{"HOME=" + t.TempDir()}, Env{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Display != ":5" || got.XAuthority != "/tmp/xauth-detected" {
		t.Fatalf("Resolve = %+v", got)
	}
}

func TestResolve_FallsBackToSocketScan(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return "", "" },
		func(string) string { return ":3" },
	)
	defer restore()

	got, err := Resolve([]string{"HOME=" + t.TempDir()}, Env{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Display != ":3" {
		t.Fatalf("Display = %q, want :3", got.Display)
	}
}

func TestResolve_ReturnsClearErrorWhenDisplayUnavailable(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return "", "" },
		func(string) string { return "" },
	)
	defer restore()

	_, err := Resolve([]string{"HOME=" + t.TempDir()}, Env{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no X display found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPrepareCommand_SetsXdgRuntimeDirAndDisplay(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return "", "" },
		func(string) string { return "" },
	)
	defer restore()

	xdg := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", xdg)

	cmd := exec.Command("sh", "-c", "true")
	cmd.Env = []string{"HOME=" + t.TempDir()}
	if err := PrepareCommand(cmd, Env{Display: ":1"}); err != nil {
		t.Fatalf("PrepareCommand returned error: %v", err)
	}
	if got := Lookup(cmd.Env, "XDG_RUNTIME_DIR"); got != xdg {
		t.Fatalf("XDG_RUNTIME_DIR = %q, want %q", got, xdg)
	}
	if got := Lookup(cmd.Env, "DISPLAY"); got != ":1" {
		t.Fatalf("DISPLAY = %q, want :1", got)
	}
}

func TestDetectSessionX11Env_ReadsLeaderEnviron(t *testing.T) {
	origRun, origRead := runCommandOutputFn, readFileFn
	defer func() { runCommandOutputFn, readFileFn = origRun, origRead }()

	uid := os.Getuid()
	runCommandOutputFn = func(name string, args ...string) (string, error) {
		switch strings.Join(args, " ") {
		case "list-sessions --no-legend":
			return "4 " + strconv.Itoa(uid) + " user seat0\n", nil
		case "show-session 4 -p Display --value":
			return ":0\n", nil
		case "show-session 4 -p Leader --value":
			return "1234\n", nil
		}
		return "", errors.New("unexpected loginctl call")
	}
	readFileFn = func(path string) ([]byte, error) {
		if path != "/proc/1234/environ" {
			return nil, errors.New("unexpected path " + path)
		}
		return []byte("DISPLAY=:1\x00XAUTHORITY=/run/user/xauth\x00"), nil
	}

	display, xauth := detectSessionX11Env()
	if display != ":1" || xauth != "/run/user/xauth" {
		t.Fatalf("detectSessionX11Env = %q, %q", display, xauth)
	}
}

func TestDetectDisplayFromSockets(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"X0", "X2", "not-a-display"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if got := detectDisplayFromSockets(dir); got != ":2" {
		t.Fatalf("detectDisplayFromSockets = %q, want %q", got, ":2")
	}
}

func TestParseLoginctlSessions(t *testing.T) {
	out := strings.Join([]string{
		"1 1000 george seat0",
		"2 1001 alice seat0",
		"3 1000 george seat1",
		"",
	}, "\n")
	got := parseLoginctlSessions(out, "1000")
	if len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("parseLoginctlSessions = %v, want [1 3]", got)
	}
}

func stubDetectFns(
	detectSession func() (string, string),
	detectSocket func(string) string,
) func() {
	origSession := detectSessionX11EnvFn
	origSocket := detectDisplayFromSocketFn
	detectSessionX11EnvFn = detectSession
	detectDisplayFromSocketFn = detectSocket
	return func() {
		detectSessionX11EnvFn = origSession
		detectDisplayFromSocketFn = origSocket
	}
}
