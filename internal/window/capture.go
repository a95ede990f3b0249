package window

import (
	"github.com/1broseidon/xwin/internal/platform"
)

type point struct {
	X float64
	Y float64
}

// cursorState tracks the pointer for fake capture. Positions are logical.
type cursorState struct {
	capturing bool
	last      point
	hasLast   bool
}

func (c *cursorState) set(p point) {
	c.last = p
	c.hasLast = true
}

// SetCaptureCursor turns fake relative-mouse capture on or off.
//
// The pointer is never grabbed. While capturing, the system cursor is
// hidden and warped back to the window centre after every move, and moves
// are reported as MouseRelative deltas instead of absolute positions.
func (w *Window) SetCaptureCursor(capture bool) {
	w.cursor.capturing = capture
	if err := w.backend.SetCursorVisible(!capture); err != nil {
		w.logger.Debug("set cursor visibility failed", "visible", !capture, "err", err)
	}
	if capture {
		w.recenter()
	}
}

// CursorCaptured reports whether fake capture is on.
func (w *Window) CursorCaptured() bool {
	return w.cursor.capturing
}

// recenter warps the pointer to the window centre if it is elsewhere. On
// failure the last known position is kept and the next move tries again.
//
// The centre is a whole physical pixel so the motion the warp itself
// generates lands exactly on the recorded position.
func (w *Window) recenter() {
	if !w.cursor.hasLast {
		return
	}
	phys := w.backend.InnerSize()
	target := platform.PhysicalPosition{X: float64(phys.Width / 2), Y: float64(phys.Height / 2)}
	center := w.logicalPosition(target)
	if w.cursor.last == center {
		return
	}

	if err := w.backend.SetCursorPosition(target); err != nil {
		w.logger.Debug("cursor recenter failed", "x", target.X, "y", target.Y, "err", err)
		return
	}
	w.cursor.set(center)
}

// logicalPosition converts a physical pointer position.
func (w *Window) logicalPosition(p platform.PhysicalPosition) point {
	scale := w.scale()
	return point{X: p.X / scale, Y: p.Y / scale}
}
