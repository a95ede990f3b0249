package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the runtime directory used for xwin control sockets. Priority:
// 1) XDG_RUNTIME_DIR (if set)
// 2) /run/user/<uid> (if present)
// 3) /tmp/xwin-runtime-<uid> (created)
func Dir() (string, error) {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return runtimeDir, nil
	}

	uid := os.Getuid()
	runUserDir := fmt.Sprintf("/run/user/%d", uid)
	if info, err := os.Stat(runUserDir); err == nil && info.IsDir() {
		return runUserDir, nil
	}

	tmpDir := fmt.Sprintf("/tmp/xwin-runtime-%d", uid)
	if err := os.MkdirAll(tmpDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return tmpDir, nil
}

// SocketPath returns the control socket path of the default window.
func SocketPath() (string, error) {
	return InstanceSocketPath("")
}

// InstanceSocketPath returns the control socket path of a named window, so
// several windows can run side by side. An empty name is the default window.
func InstanceSocketPath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid instance name %q", name)
	}
	runtimeDir, err := Dir()
	if err != nil {
		return "", err
	}
	if name == "" {
		return filepath.Join(runtimeDir, "xwin.sock"), nil
	}
	return filepath.Join(runtimeDir, "xwin-"+name+".sock"), nil
}
