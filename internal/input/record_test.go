package input

import "testing"

func TestDescribe(t *testing.T) {
	sc := int32(9)
	tests := []struct {
		name   string
		ev     Event
		kind   string
		detail string
	}{
		{"resize", Resize{WindowSize: [2]float64{640, 480}, DrawSize: [2]float64{1280, 960}}, "resize", ""},
		{"text", Text("a"), "text", ""},
		{"focus", Focus(true), "focus", ""},
		{"cursor", Cursor(false), "cursor", ""},
		{"close", Close{}, "close", ""},
		{"key", ButtonArgs{State: Press, Button: KeyboardButton(KeyEscape), Scancode: &sc}, "button", "key:Escape"},
		{"mouse", ButtonArgs{State: Release, Button: MouseButtonOf(MouseX2)}, "button", "mouse:X2"},
		{"cursor move", MouseCursor(1, 2), "move", "MouseCursor"},
		{"relative", MouseRelative(3, 8), "move", "MouseRelative"},
		{"scroll", MouseScroll(0, -1), "move", "MouseScroll"},
		{"touch", TouchMotion(TouchArgs{ID: 4, Pressure: 1, Phase: TouchEnd}), "move", "Touch"},
		{"drop", FileDrag{Kind: FileDrop, Path: "/tmp/a.png"}, "file_drag", "Drop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Describe(tt.ev)
			if rec.Kind != tt.kind {
				t.Errorf("Describe(%v).Kind = %q, want %q", tt.ev, rec.Kind, tt.kind)
			}
			if rec.Detail != tt.detail {
				t.Errorf("Describe(%v).Detail = %q, want %q", tt.ev, rec.Detail, tt.detail)
			}
		})
	}
}

func TestDescribe_MoveCoordinates(t *testing.T) {
	rec := Describe(MouseRelative(3, 8))
	if rec.X == nil || rec.Y == nil || *rec.X != 3 || *rec.Y != 8 {
		t.Fatalf("expected x=3 y=8, got %+v", rec)
	}
}

func TestKeyString(t *testing.T) {
	if got := KeyNumPad5.String(); got != "NumPad5" {
		t.Errorf("KeyNumPad5.String() = %q", got)
	}
	if got := Key(-1).String(); got != "Unknown" {
		t.Errorf("Key(-1).String() = %q", got)
	}
	if got := Key(100000).String(); got != "Unknown" {
		t.Errorf("out-of-range key String() = %q", got)
	}
}

func TestButtonArgsString(t *testing.T) {
	sc := int32(1)
	got := ButtonArgs{State: Press, Button: KeyboardButton(KeyEscape), Scancode: &sc}.String()
	if got != "Button(Press Keyboard(Escape) scancode=1)" {
		t.Errorf("unexpected String(): %q", got)
	}
}
