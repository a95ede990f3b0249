package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestKeysymToRune(t *testing.T) {
	tests := []struct {
		sym  xproto.Keysym
		want rune
		ok   bool
	}{
		{0x61, 'a', true},
		{0x41, 'A', true},
		{0x20, ' ', true},
		{0xe9, 'é', true},
		{0x010020ac, '€', true},
		{0xffb7, '7', true},
		{0xff0d, '\r', true},
		{0xff1b, 0x1b, true},
		{0xffff, 0x7f, true},
		{0xffe1, 0, false}, // Shift_L
		{0xffbe, 0, false}, // F1
		{0xff51, 0, false}, // Left
	}
	for _, tt := range tests {
		got, ok := KeysymToRune(tt.sym)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KeysymToRune(%#x) = (%q, %v), want (%q, %v)", tt.sym, got, ok, tt.want, tt.ok)
		}
	}
}

func TestScancode(t *testing.T) {
	if got := Scancode(9); got != 1 {
		t.Errorf("Scancode(9) = %d, want 1", got)
	}
	if got := Scancode(3); got != 0 {
		t.Errorf("Scancode(3) = %d, want 0", got)
	}
}

func TestParseURIList(t *testing.T) {
	data := "# comment\r\nfile:///home/user/a%20b.png\r\n\r\nhttp://example.com/x\r\nfile:///tmp/c.txt\x00"
	got := ParseURIList(data)
	want := []string{"/home/user/a b.png", "/tmp/c.txt"}
	if len(got) != len(want) {
		t.Fatalf("ParseURIList = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %d = %q, want %q", i, got[i], want[i])
		}
	}
}
