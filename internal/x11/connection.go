package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// eventBuffer bounds how many X events the reader goroutine may hold before
// it blocks waiting for the window to drain them.
const eventBuffer = 256

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	events chan xgb.Event
	wake   chan struct{}
	done   chan struct{}

	blank xproto.Cursor
}

// NewConnection connects to the X server named by display ("" uses $DISPLAY)
// and starts the event reader.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server %q: %w", display, err)
	}

	// Keysym lookups need the keyboard mapping loaded.
	keybind.Initialize(xu)

	c := &Connection{
		XUtil:  xu,
		Root:   xu.RootWin(),
		events: make(chan xgb.Event, eventBuffer),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go c.readEvents()
	return c, nil
}

// readEvents is the single producer of X events. It hands every event to the
// owning goroutine through c.events and exits when the connection closes.
func (c *Connection) readEvents() {
	defer close(c.events)
	for {
		ev, xerr := c.XUtil.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			// Async request errors carry no event; best-effort requests
			// already decided not to care.
			continue
		}
		select {
		case c.events <- ev:
		case <-c.done:
			return
		}
		select {
		case c.wake <- struct{}{}:
		default:
		}
	}
}

// NextEvent returns a buffered X event without blocking.
func (c *Connection) NextEvent() (xgb.Event, bool) {
	select {
	case ev, ok := <-c.events:
		return ev, ok && ev != nil
	default:
		return nil, false
	}
}

// Wake is signalled after the reader buffers an event.
func (c *Connection) Wake() <-chan struct{} {
	return c.wake
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	select {
	case <-c.done:
		return
	default:
		close(c.done)
	}
	c.XUtil.Conn().Close()
}
