package x11

import "testing"

func TestScaleFromMonitor(t *testing.T) {
	tests := []struct {
		name string
		mon  Monitor
		want float64
	}{
		{"unknown physical size", Monitor{Width: 1920, Height: 1080}, 1},
		// 1920px over 508mm is ~96 DPI.
		{"96 dpi", Monitor{Width: 1920, Height: 1080, MmWidth: 508, MmHeight: 286}, 1},
		// 3840px over 344mm is ~283 DPI, just under 3x.
		{"hidpi laptop", Monitor{Width: 3840, Height: 2160, MmWidth: 344, MmHeight: 194}, 2.9},
		{"zero pixels", Monitor{MmWidth: 300, MmHeight: 200}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleFromMonitor(tt.mon); got != tt.want {
				t.Errorf("ScaleFromMonitor(%+v) = %v, want %v", tt.mon, got, tt.want)
			}
		})
	}
}

func TestMonitorAt(t *testing.T) {
	monitors := []Monitor{
		{ID: 0, X: 0, Y: 0, Width: 1920, Height: 1080},
		{ID: 1, X: 1920, Y: 0, Width: 2560, Height: 1440},
	}
	if m := monitorAt(monitors, 2000, 100); m == nil || m.ID != 1 {
		t.Fatalf("expected monitor 1, got %+v", m)
	}
	if m := monitorAt(monitors, 1919, 1079); m == nil || m.ID != 0 {
		t.Fatalf("expected monitor 0, got %+v", m)
	}
	if m := monitorAt(monitors, -5, 0); m != nil {
		t.Fatalf("expected no monitor, got %+v", m)
	}
}
