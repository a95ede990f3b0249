// Package instances finds the xwin windows running for this user by their
// control sockets in the runtime directory.
package instances

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/1broseidon/xwin/internal/ipc"
)

// Instance is one control socket and what answered on it.
type Instance struct {
	// Name is the --name the window was started with; empty for the
	// default window.
	Name   string          `json:"name"`
	Socket string          `json:"socket"`
	Alive  bool            `json:"alive"`
	Status *ipc.StatusData `json:"status,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Prober asks the window behind socket for its status.
type Prober func(socket string) (*ipc.StatusData, error)

// ProbeSocket is the Prober that speaks the IPC protocol.
func ProbeSocket(socket string) (*ipc.StatusData, error) {
	return ipc.NewClientWithSocket(socket).GetStatus()
}

// NameFromSocket reports the instance name encoded in a socket file name.
func NameFromSocket(file string) (string, bool) {
	base := filepath.Base(file)
	if base == "xwin.sock" {
		return "", true
	}
	if strings.HasPrefix(base, "xwin-") && strings.HasSuffix(base, ".sock") {
		name := strings.TrimSuffix(strings.TrimPrefix(base, "xwin-"), ".sock")
		return name, name != ""
	}
	return "", false
}

// IsStale reports whether a probe error means nobody listens on the socket
// any more, as opposed to a slow or busy window.
func IsStale(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENOENT)
}

// Scan probes every xwin socket in dir, sorted by name.
func Scan(dir string, probe Prober) ([]Instance, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []Instance
	for _, entry := range entries {
		if entry.IsDir() || entry.Type()&os.ModeSocket == 0 {
			continue
		}
		name, ok := NameFromSocket(entry.Name())
		if !ok {
			continue
		}
		inst := Instance{Name: name, Socket: filepath.Join(dir, entry.Name())}
		status, err := probe(inst.Socket)
		if err != nil {
			inst.Error = err.Error()
		} else {
			inst.Alive = true
			inst.Status = status
		}
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Prune removes the sockets of dead windows in dir and returns their paths.
func Prune(dir string, probe Prober) ([]string, error) {
	found, err := Scan(dir, probe)
	if err != nil {
		return nil, err
	}
	var removed []string
	for _, inst := range found {
		if inst.Alive {
			continue
		}
		// Re-probe so the error is inspected, not its string.
		if _, err := probe(inst.Socket); err == nil || !IsStale(err) {
			continue
		}
		if err := os.Remove(inst.Socket); err != nil && !os.IsNotExist(err) {
			return removed, err
		}
		removed = append(removed, inst.Socket)
	}
	return removed, nil
}
