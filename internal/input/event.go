package input

import "fmt"

// Event is a normalized input event. The set of implementations is closed:
// Resize, Text, Focus, ButtonArgs, Move, Cursor, FileDrag and Close.
type Event interface {
	isEvent()
	fmt.Stringer
}

// Size is a width/height pair in logical or physical units depending on context.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Resize reports a new window size. WindowSize is the size the backend
// reported and DrawSize the current inner size, both in physical pixels.
type Resize struct {
	WindowSize [2]float64
	DrawSize   [2]float64
}

// Text is character input. Control characters arrive as an empty string.
type Text string

// Focus reports whether the window gained (true) or lost (false) focus.
type Focus bool

// Cursor reports whether the pointer entered (true) or left (false) the window.
type Cursor bool

// Close is emitted when the user asks the window to close.
type Close struct{}

// ButtonState is press or release.
type ButtonState int

const (
	Press ButtonState = iota
	Release
)

func (s ButtonState) String() string {
	if s == Release {
		return "Release"
	}
	return "Press"
}

// Button is either a keyboard key or a mouse button. Exactly one of the
// two is meaningful, selected by IsMouse.
type Button struct {
	IsMouse  bool
	Keyboard Key
	Mouse    MouseButton
}

// KeyboardButton wraps a key as a Button.
func KeyboardButton(k Key) Button { return Button{Keyboard: k} }

// MouseButtonOf wraps a mouse button as a Button.
func MouseButtonOf(b MouseButton) Button { return Button{IsMouse: true, Mouse: b} }

func (b Button) String() string {
	if b.IsMouse {
		return "Mouse(" + b.Mouse.String() + ")"
	}
	return "Keyboard(" + b.Keyboard.String() + ")"
}

// ButtonArgs is a press or release of a Button. Scancode is nil for mouse
// buttons and for backends that do not report one.
type ButtonArgs struct {
	State    ButtonState
	Button   Button
	Scancode *int32
}

// MotionKind selects the meaning of a Move event.
type MotionKind int

const (
	MotionMouseCursor MotionKind = iota
	MotionMouseRelative
	MotionMouseScroll
	MotionTouch
)

func (k MotionKind) String() string {
	switch k {
	case MotionMouseCursor:
		return "MouseCursor"
	case MotionMouseRelative:
		return "MouseRelative"
	case MotionMouseScroll:
		return "MouseScroll"
	case MotionTouch:
		return "Touch"
	default:
		return "Unknown"
	}
}

// TouchPhase is the lifecycle stage of a touch point.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "Start"
	case TouchMove:
		return "Move"
	case TouchEnd:
		return "End"
	default:
		return "Cancel"
	}
}

// TouchArgs describes one touch point.
type TouchArgs struct {
	Device   int64      `json:"device"`
	ID       int64      `json:"id"`
	Position [2]float64 `json:"position"`
	Pressure float64    `json:"pressure"`
	Phase    TouchPhase `json:"phase"`
}

// Move is pointer, scroll or touch motion. XY holds the cursor position,
// the relative delta or the scroll delta depending on Kind; Touch is set
// only for MotionTouch.
type Move struct {
	Kind  MotionKind
	XY    [2]float64
	Touch TouchArgs
}

// MouseCursor builds an absolute cursor motion.
func MouseCursor(x, y float64) Move { return Move{Kind: MotionMouseCursor, XY: [2]float64{x, y}} }

// MouseRelative builds a relative cursor motion.
func MouseRelative(dx, dy float64) Move {
	return Move{Kind: MotionMouseRelative, XY: [2]float64{dx, dy}}
}

// MouseScroll builds a scroll motion.
func MouseScroll(dx, dy float64) Move { return Move{Kind: MotionMouseScroll, XY: [2]float64{dx, dy}} }

// TouchMotion builds a touch motion.
func TouchMotion(t TouchArgs) Move { return Move{Kind: MotionTouch, Touch: t} }

// FileDragKind selects hover, drop or cancel.
type FileDragKind int

const (
	FileHover FileDragKind = iota
	FileDrop
	FileCancel
)

func (k FileDragKind) String() string {
	switch k {
	case FileHover:
		return "Hover"
	case FileDrop:
		return "Drop"
	default:
		return "Cancel"
	}
}

// FileDrag reports a file being dragged over, dropped on, or dragged away
// from the window. Path is empty for FileCancel.
type FileDrag struct {
	Kind FileDragKind
	Path string
}

func (Resize) isEvent()     {}
func (Text) isEvent()       {}
func (Focus) isEvent()      {}
func (Cursor) isEvent()     {}
func (Close) isEvent()      {}
func (ButtonArgs) isEvent() {}
func (Move) isEvent()       {}
func (FileDrag) isEvent()   {}

func (r Resize) String() string {
	return fmt.Sprintf("Resize(window=%gx%g draw=%gx%g)", r.WindowSize[0], r.WindowSize[1], r.DrawSize[0], r.DrawSize[1])
}

func (t Text) String() string { return fmt.Sprintf("Text(%q)", string(t)) }

func (f Focus) String() string { return fmt.Sprintf("Focus(%t)", bool(f)) }

func (c Cursor) String() string { return fmt.Sprintf("Cursor(%t)", bool(c)) }

func (Close) String() string { return "Close" }

func (b ButtonArgs) String() string {
	if b.Scancode != nil {
		return fmt.Sprintf("Button(%s %s scancode=%d)", b.State, b.Button, *b.Scancode)
	}
	return fmt.Sprintf("Button(%s %s)", b.State, b.Button)
}

func (m Move) String() string {
	if m.Kind == MotionTouch {
		return fmt.Sprintf("Move(Touch %s id=%d at %g,%g)", m.Touch.Phase, m.Touch.ID, m.Touch.Position[0], m.Touch.Position[1])
	}
	return fmt.Sprintf("Move(%s %g,%g)", m.Kind, m.XY[0], m.XY[1])
}

func (f FileDrag) String() string {
	if f.Kind == FileCancel {
		return "FileDrag(Cancel)"
	}
	return fmt.Sprintf("FileDrag(%s %s)", f.Kind, f.Path)
}
