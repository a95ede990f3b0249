package platform

import (
	"math"
	"sync"
)

// MemoryBackend is a headless Backend. Injected events are delivered on the
// next Pump. Failing operations can be switched on to exercise best-effort
// paths.
type MemoryBackend struct {
	mu sync.Mutex

	title    string
	visible  bool
	size     PhysicalSize
	scale    float64
	position Position
	closed   bool

	cursorVisible bool
	cursor        PhysicalPosition
	warps         []PhysicalPosition

	// NoPosition makes OuterPosition fail like backends that cannot report it.
	NoPosition bool
	// FailWarp makes SetCursorPosition fail.
	FailWarp bool

	pending []RawEvent
	wake    chan struct{}
}

var _ Backend = (*MemoryBackend)(nil)

// NewMemoryBackend creates a visible window of the configured logical size
// at the given scale factor.
func NewMemoryBackend(cfg WindowConfig, scale float64) *MemoryBackend {
	if scale <= 0 {
		scale = 1
	}
	return &MemoryBackend{
		title:   cfg.Title,
		visible: true,
		size: PhysicalSize{
			Width:  uint32(math.Round(cfg.Width * scale)),
			Height: uint32(math.Round(cfg.Height * scale)),
		},
		scale:         scale,
		cursorVisible: true,
		wake:          make(chan struct{}, 1),
	}
}

// Inject queues events for the next Pump. It is safe to call from any
// goroutine.
func (m *MemoryBackend) Inject(events ...RawEvent) {
	m.mu.Lock()
	m.pending = append(m.pending, events...)
	m.mu.Unlock()
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *MemoryBackend) Pump(q *Queue) {
	m.mu.Lock()
	events := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, ev := range events {
		q.Push(ev)
	}
}

func (m *MemoryBackend) Wake() <-chan struct{} {
	return m.wake
}

func (m *MemoryBackend) InnerSize() PhysicalSize {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

func (m *MemoryBackend) ScaleFactor() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scale
}

// SetScaleFactor simulates moving the window to a monitor with another DPI.
func (m *MemoryBackend) SetScaleFactor(scale float64) {
	m.mu.Lock()
	m.scale = scale
	m.mu.Unlock()
}

func (m *MemoryBackend) OuterPosition() (Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.NoPosition {
		return Position{}, ErrUnsupported
	}
	return m.position, nil
}

func (m *MemoryBackend) SetTitle(title string) error {
	m.mu.Lock()
	m.title = title
	m.mu.Unlock()
	return nil
}

// NativeTitle returns the title the backend was last given.
func (m *MemoryBackend) NativeTitle() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.title
}

func (m *MemoryBackend) SetVisible(visible bool) error {
	m.mu.Lock()
	m.visible = visible
	m.mu.Unlock()
	return nil
}

// Visible reports whether the window is shown.
func (m *MemoryBackend) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

func (m *MemoryBackend) SetOuterPosition(pos Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.NoPosition {
		return ErrUnsupported
	}
	m.position = pos
	return nil
}

func (m *MemoryBackend) SetInnerSize(size PhysicalSize) error {
	m.mu.Lock()
	m.size = size
	m.mu.Unlock()
	return nil
}

func (m *MemoryBackend) SetCursorVisible(visible bool) error {
	m.mu.Lock()
	m.cursorVisible = visible
	m.mu.Unlock()
	return nil
}

// CursorVisible reports whether the system cursor is shown.
func (m *MemoryBackend) CursorVisible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorVisible
}

func (m *MemoryBackend) SetCursorPosition(pos PhysicalPosition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWarp {
		return ErrUnsupported
	}
	m.cursor = pos
	m.warps = append(m.warps, pos)
	return nil
}

// Warps returns every successful cursor warp in order.
func (m *MemoryBackend) Warps() []PhysicalPosition {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PhysicalPosition(nil), m.warps...)
}

func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

// Closed reports whether Close was called.
func (m *MemoryBackend) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
