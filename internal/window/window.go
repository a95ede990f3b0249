// Package window adapts a native platform.Backend to normalized input
// events. A Window is owned by one goroutine: every method, including Poll,
// must be called from it.
package window

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/platform"
)

// Window is the facade over one backend window.
type Window struct {
	backend platform.Backend
	logger  *slog.Logger

	title          string
	exitOnEsc      bool
	shouldClose    bool
	automaticClose bool

	cursor  cursorState
	raw     *platform.Queue
	pending pendingQueue
	notify  chan struct{}
}

// Option configures a Window.
type Option func(*Window)

// WithLogger routes diagnostics (key presses, skipped events, failed
// best-effort requests) to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Window) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// BackendFactory creates the native window for a configuration.
type BackendFactory func(platform.WindowConfig) (platform.Backend, error)

// Open validates settings, creates the native window and wraps it. Backend
// construction failure is the only error a Window ever surfaces.
func Open(settings Settings, factory BackendFactory, opts ...Option) (*Window, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	backend, err := factory(settings.backendConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	return New(backend, settings, opts...), nil
}

// New wraps an existing backend window.
func New(backend platform.Backend, settings Settings, opts ...Option) *Window {
	w := &Window{
		backend:        backend,
		logger:         slog.New(slog.DiscardHandler),
		title:          settings.Title,
		exitOnEsc:      settings.ExitOnEsc,
		automaticClose: settings.AutomaticClose,
		raw:            &platform.Queue{},
		notify:         make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Window) scale() float64 {
	s := w.backend.ScaleFactor()
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	return s
}

// ScaleFactor returns the backend's DPI scale factor.
func (w *Window) ScaleFactor() float64 {
	return w.scale()
}

// Size returns the inner size in logical units.
func (w *Window) Size() input.Size {
	phys := w.backend.InnerSize()
	scale := w.scale()
	return input.Size{
		Width:  float64(phys.Width) / scale,
		Height: float64(phys.Height) / scale,
	}
}

// DrawSize returns the inner size in physical pixels.
func (w *Window) DrawSize() input.Size {
	phys := w.backend.InnerSize()
	return input.Size{Width: float64(phys.Width), Height: float64(phys.Height)}
}

// SetSize resizes the inner area to a logical size.
func (w *Window) SetSize(size input.Size) {
	scale := w.scale()
	phys := platform.PhysicalSize{
		Width:  toPixels(size.Width * scale),
		Height: toPixels(size.Height * scale),
	}
	if err := w.backend.SetInnerSize(phys); err != nil {
		w.logger.Debug("set size failed", "width", phys.Width, "height", phys.Height, "err", err)
	}
}

func toPixels(v float64) uint32 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(math.Round(v))
}

// Title returns the last title set on the window.
func (w *Window) Title() string {
	return w.title
}

// SetTitle sets the native title and remembers it.
func (w *Window) SetTitle(title string) {
	if err := w.backend.SetTitle(title); err != nil {
		w.logger.Debug("set title failed", "err", err)
	}
	w.title = title
}

// Position returns the outer position in physical pixels. ok is false when
// the backend cannot report it.
func (w *Window) Position() (pos platform.Position, ok bool) {
	pos, err := w.backend.OuterPosition()
	if err != nil {
		return platform.Position{}, false
	}
	return pos, true
}

// SetPosition moves the window frame to a physical position.
func (w *Window) SetPosition(pos platform.Position) {
	if err := w.backend.SetOuterPosition(pos); err != nil {
		w.logger.Debug("set position failed", "x", pos.X, "y", pos.Y, "err", err)
	}
}

func (w *Window) Show() { w.setVisible(true) }
func (w *Window) Hide() { w.setVisible(false) }

func (w *Window) setVisible(visible bool) {
	if err := w.backend.SetVisible(visible); err != nil {
		w.logger.Debug("set visibility failed", "visible", visible, "err", err)
	}
}

func (w *Window) ExitOnEsc() bool        { return w.exitOnEsc }
func (w *Window) SetExitOnEsc(exit bool) { w.exitOnEsc = exit }
func (w *Window) ShouldClose() bool      { return w.shouldClose }
func (w *Window) SetShouldClose(v bool)  { w.shouldClose = v }

// AutomaticClose always reports false and SetAutomaticClose does nothing.
// The value given in Settings still decides whether a close request sets
// ShouldClose.
func (w *Window) AutomaticClose() bool   { return false }
func (w *Window) SetAutomaticClose(bool) {}

// Close destroys the native window.
func (w *Window) Close() error {
	return w.backend.Close()
}
