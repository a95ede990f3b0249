//go:build linux

package platform

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestConvertButton(t *testing.T) {
	tests := []struct {
		detail xproto.Button
		want   RawEvent
	}{
		{1, MouseInput{State: Pressed, Button: MouseButton{Kind: ButtonLeft}}},
		{2, MouseInput{State: Pressed, Button: MouseButton{Kind: ButtonMiddle}}},
		{3, MouseInput{State: Pressed, Button: MouseButton{Kind: ButtonRight}}},
		{4, MouseWheel{Kind: LineDelta, Y: 1}},
		{5, MouseWheel{Kind: LineDelta, Y: -1}},
		{6, MouseWheel{Kind: LineDelta, X: 1}},
		{7, MouseWheel{Kind: LineDelta, X: -1}},
		{8, MouseInput{State: Pressed, Button: OtherButton(0)}},
		{12, MouseInput{State: Pressed, Button: OtherButton(4)}},
		{0, Unrecognized{Name: "Button0"}},
	}
	for _, tt := range tests {
		if got := convertButton(Pressed, tt.detail); got != tt.want {
			t.Errorf("convertButton(%d) = %#v, want %#v", tt.detail, got, tt.want)
		}
	}
}

func TestIsWheelButton(t *testing.T) {
	for detail := xproto.Button(0); detail < 10; detail++ {
		want := detail >= 4 && detail <= 7
		if got := isWheelButton(detail); got != want {
			t.Errorf("isWheelButton(%d) = %v, want %v", detail, got, want)
		}
	}
}

func TestKeysymToKeyCode(t *testing.T) {
	tests := []struct {
		sym  xproto.Keysym
		want VirtualKeyCode
	}{
		{0x61, KeyA},
		{0x7a, KeyZ},
		{0x30, Key0},
		{0xff1b, KeyEscape},
		{0xffbe, KeyF1},
		{0xffd5, KeyF24},
		{0xff8d, KeyNumpadEnter},
		{0xff96, KeyLeft},
		{0xffe3, KeyLControl},
		{0x1008ff12, KeyMute},
		{0x41, KeyNone}, // shifted 'A' is never a base keysym
		{0xfd01, KeyNone},
	}
	for _, tt := range tests {
		if got := KeysymToKeyCode(tt.sym); got != tt.want {
			t.Errorf("KeysymToKeyCode(%#x) = %v, want %v", tt.sym, got, tt.want)
		}
	}
}

func drain(q *Queue) []RawEvent {
	var out []RawEvent
	for {
		ev, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestConvertConfigureNotifyOnlyReportsSizeChanges(t *testing.T) {
	b := &LinuxBackend{scaleOverride: 1, size: PhysicalSize{Width: 640, Height: 480}}
	q := &Queue{}

	b.convert(xproto.ConfigureNotifyEvent{X: 10, Y: 20, Width: 640, Height: 480}, q)
	b.convert(xproto.ConfigureNotifyEvent{X: 30, Y: 40, Width: 640, Height: 480}, q)
	b.convert(xproto.ConfigureNotifyEvent{X: 30, Y: 40, Width: 800, Height: 600}, q)
	b.convert(xproto.ConfigureNotifyEvent{X: 50, Y: 40, Width: 800, Height: 600}, q)

	got := drain(q)
	want := []RawEvent{
		Unrecognized{Name: "ConfigureNotify"},
		Unrecognized{Name: "ConfigureNotify"},
		Resized{Size: PhysicalSize{Width: 800, Height: 600}},
		Unrecognized{Name: "ConfigureNotify"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestConvertEnterNotifyReportsPositionAsMove(t *testing.T) {
	b := &LinuxBackend{scaleOverride: 1}
	q := &Queue{}

	b.convert(xproto.EnterNotifyEvent{EventX: 5, EventY: 6, Mode: xproto.NotifyModeNormal}, q)

	got := drain(q)
	want := []RawEvent{CursorEntered{}, CursorMoved{Position: PhysicalPosition{X: 5, Y: 6}}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
