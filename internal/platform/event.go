package platform

// RawEvent is one native window event as produced by a Backend. The set of
// implementations is closed; anything a backend cannot express with the
// other variants is delivered as Unrecognized.
type RawEvent interface {
	isRawEvent()
}

// ElementState is the pressed/released state of a key or button.
type ElementState uint8

const (
	Pressed ElementState = iota
	Released
)

// TouchPhase is the native touch lifecycle stage.
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// PhysicalPosition is a position in physical pixels.
type PhysicalPosition struct {
	X float64
	Y float64
}

// PhysicalSize is a size in physical pixels.
type PhysicalSize struct {
	Width  uint32
	Height uint32
}

// Resized reports a new inner size in physical pixels.
type Resized struct {
	Size PhysicalSize
}

// ReceivedCharacter carries one character of text input.
type ReceivedCharacter struct {
	Char rune
}

// Focused reports a focus change.
type Focused struct {
	Focused bool
}

// KeyboardInput is a key press or release. Key is KeyNone when the backend
// could not resolve a virtual key; such events are not recognized.
type KeyboardInput struct {
	State    ElementState
	Scancode uint32
	Key      VirtualKeyCode
}

// Touch is a single touch point update.
type Touch struct {
	Phase    TouchPhase
	Location PhysicalPosition
	ID       uint64
}

// CursorMoved reports the pointer position relative to the window's
// top-left corner in physical pixels.
type CursorMoved struct {
	Position PhysicalPosition
}

// CursorEntered reports the pointer entering the window. Backends that know
// the entry position follow it with a CursorMoved.
type CursorEntered struct{}

// CursorLeft reports the pointer leaving the window.
type CursorLeft struct{}

// ScrollDeltaKind selects the unit of a MouseWheel delta.
type ScrollDeltaKind uint8

const (
	LineDelta ScrollDeltaKind = iota
	PixelDelta
)

// MouseWheel is a scroll in lines or pixels.
type MouseWheel struct {
	Kind ScrollDeltaKind
	X    float64
	Y    float64
}

// MouseInput is a mouse button press or release.
type MouseInput struct {
	State  ElementState
	Button MouseButton
}

// HoveredFile reports a file dragged over the window.
type HoveredFile struct {
	Path string
}

// DroppedFile reports a file dropped on the window.
type DroppedFile struct {
	Path string
}

// HoveredFileCancelled reports that a hovered file left without a drop.
type HoveredFileCancelled struct{}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// Unrecognized is a native event with no portable meaning. Name is a short
// label for diagnostics.
type Unrecognized struct {
	Name string
}

func (Resized) isRawEvent()              {}
func (ReceivedCharacter) isRawEvent()    {}
func (Focused) isRawEvent()              {}
func (KeyboardInput) isRawEvent()        {}
func (Touch) isRawEvent()                {}
func (CursorMoved) isRawEvent()          {}
func (CursorEntered) isRawEvent()        {}
func (CursorLeft) isRawEvent()           {}
func (MouseWheel) isRawEvent()           {}
func (MouseInput) isRawEvent()           {}
func (HoveredFile) isRawEvent()          {}
func (DroppedFile) isRawEvent()          {}
func (HoveredFileCancelled) isRawEvent() {}
func (CloseRequested) isRawEvent()       {}
func (Unrecognized) isRawEvent()         {}
