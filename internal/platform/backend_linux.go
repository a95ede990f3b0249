//go:build linux

package platform

import (
	"fmt"
	"math"

	"github.com/1broseidon/xwin/internal/x11"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend drives one X11 window behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
	win  xproto.Window

	// scaleOverride replaces the RandR-derived scale factor when > 0.
	scaleOverride float64
	scale         float64

	// size is the last inner size reported; ConfigureNotify also fires for
	// moves and restacking.
	size PhysicalSize

	dnd dndState
}

// dndState tracks one XDND session.
type dndState struct {
	source      xproto.Window
	paths       []string
	requested   bool
	hovered     bool
	dropPending bool
}

var _ Backend = (*LinuxBackend)(nil)

// LinuxOptions configures NewLinuxBackend.
type LinuxOptions struct {
	// Display is the X display name; empty uses $DISPLAY.
	Display string
	// ScaleFactor overrides DPI detection when > 0.
	ScaleFactor float64
}

// NewLinuxBackend connects to the X server and creates the window. The
// configured logical size is converted to physical pixels with the scale
// factor of the monitor the window lands on.
func NewLinuxBackend(cfg WindowConfig, opts LinuxOptions) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(opts.Display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	b := &LinuxBackend{conn: conn, scaleOverride: opts.ScaleFactor}

	scale := opts.ScaleFactor
	if scale <= 0 {
		scale = 1
		if monitors, err := conn.GetMonitors(); err == nil && len(monitors) > 0 {
			scale = x11.ScaleFromMonitor(monitors[0])
		}
	}

	width := int(math.Round(cfg.Width * scale))
	height := int(math.Round(cfg.Height * scale))
	win, err := conn.CreateWindow(cfg.Title, width, height)
	if err != nil {
		conn.Close()
		return nil, err
	}
	b.win = win
	b.size = PhysicalSize{Width: uint32(width), Height: uint32(height)}
	b.refreshScale()
	return b, nil
}

// Window returns the X11 window id.
func (b *LinuxBackend) Window() xproto.Window {
	return b.win
}

// Pump converts every buffered X event into raw events.
func (b *LinuxBackend) Pump(q *Queue) {
	for {
		ev, ok := b.conn.NextEvent()
		if !ok {
			return
		}
		b.convert(ev, q)
	}
}

// Wake is signalled by the connection's reader goroutine.
func (b *LinuxBackend) Wake() <-chan struct{} {
	return b.conn.Wake()
}

// InnerSize returns the current inner size in physical pixels.
func (b *LinuxBackend) InnerSize() PhysicalSize {
	w, h, err := b.conn.InnerSize(b.win)
	if err != nil {
		return PhysicalSize{}
	}
	return PhysicalSize{Width: uint32(w), Height: uint32(h)}
}

// ScaleFactor returns the cached DPI scale factor. It is refreshed when the
// window is moved or resized.
func (b *LinuxBackend) ScaleFactor() float64 {
	return b.scale
}

// OuterPosition returns the frame position in physical root coordinates.
func (b *LinuxBackend) OuterPosition() (Position, error) {
	x, y, err := b.conn.OuterPosition(b.win)
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y}, nil
}

func (b *LinuxBackend) SetTitle(title string) error {
	return b.conn.SetTitle(b.win, title)
}

func (b *LinuxBackend) SetVisible(visible bool) error {
	return b.conn.SetMapped(b.win, visible)
}

func (b *LinuxBackend) SetOuterPosition(pos Position) error {
	return b.conn.MoveWindow(b.win, pos.X, pos.Y)
}

func (b *LinuxBackend) SetInnerSize(size PhysicalSize) error {
	return b.conn.ResizeWindow(b.win, int(size.Width), int(size.Height))
}

func (b *LinuxBackend) SetCursorVisible(visible bool) error {
	if visible {
		return b.conn.ShowCursor(b.win)
	}
	return b.conn.HideCursor(b.win)
}

func (b *LinuxBackend) SetCursorPosition(pos PhysicalPosition) error {
	return b.conn.WarpPointer(b.win, int(math.Round(pos.X)), int(math.Round(pos.Y)))
}

// Close destroys the window and disconnects.
func (b *LinuxBackend) Close() error {
	if b == nil || b.conn == nil {
		return nil
	}
	b.conn.DestroyWindow(b.win)
	b.conn.Close()
	b.conn = nil
	return nil
}

func (b *LinuxBackend) refreshScale() {
	if b.scaleOverride > 0 {
		b.scale = b.scaleOverride
		return
	}
	b.scale = b.conn.ScaleFactor(b.win)
}

// convert translates one X event into zero or more raw events.
func (b *LinuxBackend) convert(ev xgb.Event, q *Queue) {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		b.convertKey(Pressed, e.Detail, e.State, q)
	case xproto.KeyReleaseEvent:
		b.convertKey(Released, e.Detail, e.State, q)

	case xproto.ButtonPressEvent:
		q.Push(convertButton(Pressed, e.Detail))
	case xproto.ButtonReleaseEvent:
		// Wheel buttons produce a press/release pair; only the press scrolls.
		if isWheelButton(e.Detail) {
			q.Push(Unrecognized{Name: "WheelRelease"})
			return
		}
		q.Push(convertButton(Released, e.Detail))

	case xproto.MotionNotifyEvent:
		q.Push(CursorMoved{Position: PhysicalPosition{X: float64(e.EventX), Y: float64(e.EventY)}})

	case xproto.EnterNotifyEvent:
		q.Push(CursorEntered{})
		q.Push(CursorMoved{Position: PhysicalPosition{X: float64(e.EventX), Y: float64(e.EventY)}})
	case xproto.LeaveNotifyEvent:
		// Grab/ungrab crossings do not move the pointer out of the window.
		if e.Mode != xproto.NotifyModeNormal {
			q.Push(Unrecognized{Name: "LeaveNotifyGrab"})
			return
		}
		q.Push(CursorLeft{})

	case xproto.FocusInEvent:
		q.Push(Focused{Focused: true})
	case xproto.FocusOutEvent:
		q.Push(Focused{Focused: false})

	case xproto.ConfigureNotifyEvent:
		// The scale is read again at translation time, so moves already
		// queued before a monitor change are converted with the new one.
		b.refreshScale()
		size := PhysicalSize{Width: uint32(e.Width), Height: uint32(e.Height)}
		if size == b.size {
			q.Push(Unrecognized{Name: "ConfigureNotify"})
			return
		}
		b.size = size
		q.Push(Resized{Size: size})

	case xproto.ClientMessageEvent:
		b.convertClientMessage(e, q)
	case xproto.SelectionNotifyEvent:
		b.convertSelection(e, q)

	default:
		q.Push(Unrecognized{Name: fmt.Sprintf("%T", ev)})
	}
}

func (b *LinuxBackend) convertKey(state ElementState, code xproto.Keycode, mods uint16, q *Queue) {
	base, text := b.conn.LookupKeysym(code, mods)
	q.Push(KeyboardInput{
		State:    state,
		Scancode: x11.Scancode(code),
		Key:      KeysymToKeyCode(base),
	})
	if state != Pressed {
		return
	}
	if r, ok := x11.KeysymToRune(text); ok {
		q.Push(ReceivedCharacter{Char: r})
	}
}

func isWheelButton(detail xproto.Button) bool {
	return detail >= 4 && detail <= 7
}

// convertButton maps X core buttons: 1-3 are left/middle/right, 4-7 are the
// wheel, 8 and up are extra buttons numbered from zero.
func convertButton(state ElementState, detail xproto.Button) RawEvent {
	switch detail {
	case 1:
		return MouseInput{State: state, Button: MouseButton{Kind: ButtonLeft}}
	case 2:
		return MouseInput{State: state, Button: MouseButton{Kind: ButtonMiddle}}
	case 3:
		return MouseInput{State: state, Button: MouseButton{Kind: ButtonRight}}
	case 4:
		return MouseWheel{Kind: LineDelta, X: 0, Y: 1}
	case 5:
		return MouseWheel{Kind: LineDelta, X: 0, Y: -1}
	case 6:
		return MouseWheel{Kind: LineDelta, X: 1, Y: 0}
	case 7:
		return MouseWheel{Kind: LineDelta, X: -1, Y: 0}
	}
	if detail < 8 {
		return Unrecognized{Name: "Button0"}
	}
	return MouseInput{State: state, Button: OtherButton(uint16(detail) - 8)}
}

func (b *LinuxBackend) convertClientMessage(e xproto.ClientMessageEvent, q *Queue) {
	if b.conn.IsDeleteWindow(e) {
		q.Push(CloseRequested{})
		return
	}

	msg := b.conn.DecodeDnd(e)
	switch msg.Kind {
	case x11.DndEnter:
		b.dnd = dndState{source: msg.Source}
		q.Push(Unrecognized{Name: "XdndEnter"})

	case x11.DndPosition:
		b.dnd.source = msg.Source
		if b.dnd.paths == nil && !b.dnd.requested {
			b.dnd.requested = b.conn.RequestDndData(b.win, msg.Time) == nil
		}
		_ = b.conn.SendDndStatus(b.win, msg.Source, true)
		q.Push(Unrecognized{Name: "XdndPosition"})

	case x11.DndDrop:
		b.dnd.source = msg.Source
		if b.dnd.paths != nil {
			b.finishDrop(q)
			return
		}
		b.dnd.dropPending = true
		if !b.dnd.requested {
			b.dnd.requested = b.conn.RequestDndData(b.win, msg.Time) == nil
		}
		if !b.dnd.requested {
			_ = b.conn.SendDndFinished(b.win, msg.Source, false)
			b.dnd = dndState{}
		}
		q.Push(Unrecognized{Name: "XdndDrop"})

	case x11.DndLeave:
		hovered := b.dnd.hovered
		b.dnd = dndState{}
		if hovered {
			q.Push(HoveredFileCancelled{})
			return
		}
		q.Push(Unrecognized{Name: "XdndLeave"})

	default:
		q.Push(Unrecognized{Name: "ClientMessage"})
	}
}

func (b *LinuxBackend) convertSelection(e xproto.SelectionNotifyEvent, q *Queue) {
	if !b.conn.IsDndData(e) {
		q.Push(Unrecognized{Name: "SelectionNotify"})
		return
	}
	paths, err := b.conn.ReadDndData(b.win)
	if err != nil {
		paths = []string{}
	}
	b.dnd.paths = paths

	if b.dnd.dropPending {
		b.finishDrop(q)
		return
	}
	for _, p := range paths {
		q.Push(HoveredFile{Path: p})
	}
	b.dnd.hovered = len(paths) > 0
	if !b.dnd.hovered {
		q.Push(Unrecognized{Name: "XdndEmpty"})
	}
}

func (b *LinuxBackend) finishDrop(q *Queue) {
	paths := b.dnd.paths
	source := b.dnd.source
	b.dnd = dndState{}

	for _, p := range paths {
		q.Push(DroppedFile{Path: p})
	}
	_ = b.conn.SendDndFinished(b.win, source, len(paths) > 0)
	if len(paths) == 0 {
		q.Push(Unrecognized{Name: "XdndEmptyDrop"})
	}
}
