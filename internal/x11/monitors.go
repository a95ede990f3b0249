package x11

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
	// MmWidth and MmHeight are the physical dimensions reported by the
	// output; zero when unknown (projectors, some virtual outputs).
	MmWidth  int
	MmHeight int
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		mon := Monitor{
			ID:     i,
			Name:   fmt.Sprintf("Monitor%d", i),
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		}
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			mon.Name = string(outputInfo.Name)
			mon.MmWidth = int(outputInfo.MmWidth)
			mon.MmHeight = int(outputInfo.MmHeight)
		}
		monitors = append(monitors, mon)
	}

	return monitors, nil
}

// ScaleFactor returns the DPI scale factor of the monitor containing the
// centre of wid. It falls back to 1 when RandR or the physical size is
// unavailable.
func (c *Connection) ScaleFactor(wid xproto.Window) float64 {
	monitors, err := c.GetMonitors()
	if err != nil || len(monitors) == 0 {
		return 1
	}
	mon := &monitors[0]
	if x, y, err := c.OuterPosition(wid); err == nil {
		w, h, _ := c.InnerSize(wid)
		if found := monitorAt(monitors, x+w/2, y+h/2); found != nil {
			mon = found
		}
	}
	return ScaleFromMonitor(*mon)
}

// ScaleFromMonitor derives a scale factor from pixel density, relative to
// 96 DPI and rounded to one decimal.
func ScaleFromMonitor(m Monitor) float64 {
	if m.MmWidth <= 0 || m.MmHeight <= 0 || m.Width <= 0 || m.Height <= 0 {
		return 1
	}
	ppmm := math.Sqrt(float64(m.Width*m.Height) / float64(m.MmWidth*m.MmHeight))
	scale := math.Round(ppmm*(25.4/96.0)*10) / 10
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 1
	}
	return scale
}

func monitorAt(monitors []Monitor, x, y int) *Monitor {
	for i := range monitors {
		m := &monitors[i]
		if x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height {
			return m
		}
	}
	return nil
}
