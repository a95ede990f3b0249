package platform

import "errors"

// ErrUnsupported is returned by backends that cannot perform an operation,
// e.g. report the outer window position.
var ErrUnsupported = errors.New("operation not supported by backend")

// Position is an outer window position in physical pixels.
type Position struct {
	X int
	Y int
}

// WindowConfig is what a backend needs to create its window.
type WindowConfig struct {
	Title string
	// Width and Height are the logical inner size.
	Width  float64
	Height float64
}

// Backend abstracts one native window and its event source.
//
// All methods except Wake are called from the goroutine that owns the
// window. Mutators are best-effort: an error means the native request was
// not applied and the caller leaves its own state unchanged.
type Backend interface {
	// Pump moves every native event that is ready into q without blocking.
	Pump(q *Queue)
	// Wake returns a channel that receives a value when native events may be
	// ready. It may be nil for backends that never have pending events.
	Wake() <-chan struct{}

	InnerSize() PhysicalSize
	ScaleFactor() float64
	OuterPosition() (Position, error)

	SetTitle(title string) error
	SetVisible(visible bool) error
	SetOuterPosition(pos Position) error
	SetInnerSize(size PhysicalSize) error
	SetCursorVisible(visible bool) error
	SetCursorPosition(pos PhysicalPosition) error

	// Close destroys the native window and releases the connection.
	Close() error
}
