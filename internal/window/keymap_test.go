package window

import (
	"testing"

	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/platform"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		code platform.VirtualKeyCode
		want input.Key
	}{
		{platform.KeyEscape, input.KeyEscape},
		{platform.KeyA, input.KeyA},
		{platform.KeyZ, input.KeyZ},
		{platform.Key0, input.KeyD0},
		{platform.Key9, input.KeyD9},
		{platform.KeyF24, input.KeyF24},
		{platform.KeyBack, input.KeyBackspace},
		{platform.KeyReturn, input.KeyReturn},
		{platform.KeySnapshot, input.KeyPrintScreen},
		{platform.KeyNumlock, input.KeyNumLockClear},
		{platform.KeyNumpadComma, input.KeyNumPadDecimal},
		{platform.KeyAdd, input.KeyNumPadPlus},
		{platform.KeySubtract, input.KeyNumPadMinus},
		{platform.KeyLWin, input.KeyLGui},
		{platform.KeyRControl, input.KeyRCtrl},
		{platform.KeyNone, input.KeyUnknown},
		{platform.KeyMail, input.KeyUnknown},
		{platform.KeyCopy, input.KeyUnknown},
		{platform.VirtualKeyCode(0xffff), input.KeyUnknown},
	}
	for _, tt := range tests {
		if got := MapKey(tt.code); got != tt.want {
			t.Fatalf("MapKey(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestMapKey_DistinctTargets(t *testing.T) {
	seen := map[input.Key]platform.VirtualKeyCode{}
	for _, code := range platform.AllKeyCodes() {
		key := MapKey(code)
		if key == input.KeyUnknown {
			continue
		}
		if prev, ok := seen[key]; ok {
			t.Fatalf("%v and %v both map to %v", prev, code, key)
		}
		seen[key] = code
	}
	if len(seen) < 100 {
		t.Fatalf("expected at least 100 mapped keys, got %d", len(seen))
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		button platform.MouseButton
		want   input.MouseButton
	}{
		{platform.MouseButton{Kind: platform.ButtonLeft}, input.MouseLeft},
		{platform.MouseButton{Kind: platform.ButtonRight}, input.MouseRight},
		{platform.MouseButton{Kind: platform.ButtonMiddle}, input.MouseMiddle},
		{platform.OtherButton(0), input.MouseX1},
		{platform.OtherButton(1), input.MouseX2},
		{platform.OtherButton(2), input.MouseButton6},
		{platform.OtherButton(3), input.MouseButton7},
		{platform.OtherButton(4), input.MouseButton8},
		{platform.OtherButton(5), input.MouseUnknown},
		{platform.OtherButton(200), input.MouseUnknown},
	}
	for _, tt := range tests {
		if got := MapMouse(tt.button); got != tt.want {
			t.Fatalf("MapMouse(%+v) = %v, want %v", tt.button, got, tt.want)
		}
	}
}
