package window

import (
	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/platform"
)

// translate converts one raw event. recognized is false for raw events the
// window does not understand; ev may be nil for recognized events that
// produce nothing, such as an absorbed zero-length relative move.
func (w *Window) translate(raw platform.RawEvent) (ev input.Event, recognized bool) {
	switch e := raw.(type) {
	case platform.Resized:
		draw := w.DrawSize()
		return input.Resize{
			WindowSize: [2]float64{float64(e.Size.Width), float64(e.Size.Height)},
			DrawSize:   [2]float64{draw.Width, draw.Height},
		}, true

	case platform.ReceivedCharacter:
		if isControlChar(e.Char) {
			return input.Text(""), true
		}
		return input.Text(string(e.Char)), true

	case platform.Focused:
		return input.Focus(e.Focused), true

	case platform.KeyboardInput:
		if e.Key == platform.KeyNone {
			return nil, false
		}
		return w.translateKey(e), true

	case platform.Touch:
		return input.TouchMotion(input.TouchArgs{
			ID:       int64(e.ID),
			Position: [2]float64{e.Location.X, e.Location.Y},
			Pressure: 1,
			Phase:    mapTouchPhase(e.Phase),
		}), true

	case platform.CursorMoved:
		return w.cursorMoved(w.logicalPosition(e.Position)), true

	case platform.CursorEntered:
		return input.Cursor(true), true
	case platform.CursorLeft:
		return input.Cursor(false), true

	case platform.MouseWheel:
		return input.MouseScroll(e.X, e.Y), true

	case platform.MouseInput:
		return input.ButtonArgs{
			State:  mapState(e.State),
			Button: input.MouseButtonOf(MapMouse(e.Button)),
		}, true

	case platform.HoveredFile:
		return input.FileDrag{Kind: input.FileHover, Path: e.Path}, true
	case platform.DroppedFile:
		return input.FileDrag{Kind: input.FileDrop, Path: e.Path}, true
	case platform.HoveredFileCancelled:
		return input.FileDrag{Kind: input.FileCancel}, true

	case platform.CloseRequested:
		if w.automaticClose {
			w.shouldClose = true
		}
		return input.Close{}, true
	}
	return nil, false
}

func (w *Window) translateKey(e platform.KeyboardInput) input.Event {
	key := MapKey(e.Key)
	scancode := int32(e.Scancode)
	state := mapState(e.State)

	if state == input.Press {
		w.logger.Debug("key press", "key", key.String(), "native", e.Key.String(), "scancode", scancode)
		if w.exitOnEsc && key == input.KeyEscape {
			w.shouldClose = true
		}
	}
	return input.ButtonArgs{
		State:    state,
		Button:   input.KeyboardButton(key),
		Scancode: &scancode,
	}
}

// cursorMoved applies one logical pointer position. While capturing, the
// move becomes a delta from the previous position and the pointer is pulled
// back to the centre; otherwise the absolute position is reported.
func (w *Window) cursorMoved(pos point) input.Event {
	if w.cursor.capturing {
		if !w.cursor.hasLast {
			w.cursor.set(pos)
			return nil
		}
		dx, dy := pos.X-w.cursor.last.X, pos.Y-w.cursor.last.Y
		w.cursor.set(pos)
		w.recenter()
		if dx == 0 && dy == 0 {
			return nil
		}
		return input.MouseRelative(dx, dy)
	}

	w.cursor.set(pos)
	return input.MouseCursor(pos.X, pos.Y)
}

func isControlChar(r rune) bool {
	switch r {
	case 0x7f, 0x1b, 0x08, '\r', '\n', '\t':
		return true
	}
	return false
}

func mapState(s platform.ElementState) input.ButtonState {
	if s == platform.Pressed {
		return input.Press
	}
	return input.Release
}

func mapTouchPhase(p platform.TouchPhase) input.TouchPhase {
	switch p {
	case platform.TouchStarted:
		return input.TouchStart
	case platform.TouchMoved:
		return input.TouchMove
	case platform.TouchEnded:
		return input.TouchEnd
	default:
		return input.TouchCancel
	}
}
