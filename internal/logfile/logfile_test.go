package logfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestWriterAppendsWithoutRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "xwin.log")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("old\n"), 0600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w, err := Open(path, 0, 3)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := w.Write([]byte("new\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := readFile(t, path); got != "old\nnew\n" {
		t.Fatalf("content=%q", got)
	}
	if _, err := w.Write([]byte("late")); err == nil {
		t.Fatalf("expected error writing after Close")
	}
}

func TestWriterRotatesAndKeepsMaxFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xwin.log")
	w, err := Open(path, 1, 2)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer w.Close()

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	for i, marker := range []string{"a", "b", "c", "d"} {
		record := append([]byte(marker), chunk...)
		if _, err := w.Write(record); err != nil {
			t.Fatalf("Write %d: %v", i, err)
		}
	}

	// Each record overflows the 1 MiB limit together with its predecessor,
	// so every write after the first rotates.
	want := map[string]string{path: "d", path + ".1": "c", path + ".2": "b"}
	for p, marker := range want {
		if got := readFile(t, p); got[:1] != marker {
			t.Fatalf("%s starts with %q, want %q", filepath.Base(p), got[:1], marker)
		}
	}
	if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
		t.Fatalf("expected no third rotated file, stat err=%v", err)
	}
}

func TestWriterRotationWithoutBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xwin.log")
	w, err := Open(path, 1, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer w.Close()

	big := bytes.Repeat([]byte("y"), 900*1024)
	if _, err := w.Write(big); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := w.Write([]byte("z" + string(big))); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := readFile(t, path); got[:1] != "z" {
		t.Fatalf("expected fresh file, got prefix %q", got[:1])
	}
	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Fatalf("expected no rotated file, stat err=%v", err)
	}
}
