package window

import (
	"context"
	"fmt"
	"time"

	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/platform"
)

// pendingQueue holds events synthesized by the translator. It is drained
// before the raw queue and holds at most one event per raw event.
type pendingQueue struct {
	events []input.Event
	armed  bool
}

func (p *pendingQueue) arm(ev input.Event) {
	if p.armed {
		return
	}
	p.armed = true
	p.events = append(p.events, ev)
}

// next starts a new raw event.
func (p *pendingQueue) next() {
	p.armed = false
}

func (p *pendingQueue) pop() (input.Event, bool) {
	if len(p.events) == 0 {
		return nil, false
	}
	ev := p.events[0]
	p.events[0] = nil
	p.events = p.events[1:]
	if len(p.events) == 0 {
		p.events = nil
	}
	return ev, true
}

func (p *pendingQueue) len() int {
	return len(p.events)
}

// Push appends a raw event as if the backend had produced it.
func (w *Window) Push(ev platform.RawEvent) {
	w.raw.Push(ev)
	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// Poll returns the next input event without blocking. It returns false when
// nothing is ready.
func (w *Window) Poll() (input.Event, bool) {
	if ev, ok := w.pending.pop(); ok {
		return ev, true
	}

	for {
		raw, ok := w.popRaw()
		if !ok {
			return nil, false
		}

		// The first move after capture starts only seeds the position.
		if w.cursor.capturing && !w.cursor.hasLast {
			if m, isMove := raw.(platform.CursorMoved); isMove {
				w.cursor.set(w.logicalPosition(m.Position))
				continue
			}
		}

		w.pending.next()
		ev, recognized := w.translate(raw)
		if !recognized {
			w.logger.Debug("skipping unrecognized event", "event", rawName(raw))
			continue
		}
		if ev != nil {
			return ev, true
		}
		if ev, ok := w.pending.pop(); ok {
			return ev, true
		}
	}
}

// Wait polls until an event is ready or ctx ends. Between attempts it parks
// on the backend's wake channel.
func (w *Window) Wait(ctx context.Context) (input.Event, error) {
	for {
		if ev, ok := w.Poll(); ok {
			return ev, nil
		}
		backend, pushed := w.Ready()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-backend:
		case <-pushed:
		}
	}
}

// Ready returns the channels signalled when Poll may have something new:
// the backend's wake channel (nil if it has none) and the one Push signals.
// Callers that multiplex other work select on both before polling again.
func (w *Window) Ready() (backend, pushed <-chan struct{}) {
	return w.backend.Wake(), w.notify
}

// WaitTimeout is a single Poll. The timeout is not honoured.
func (w *Window) WaitTimeout(_ time.Duration) (input.Event, bool) {
	return w.Poll()
}

// popRaw pops the oldest raw event, pumping the backend first when the
// queue is empty.
func (w *Window) popRaw() (platform.RawEvent, bool) {
	if w.raw.Len() == 0 {
		w.backend.Pump(w.raw)
	}
	return w.raw.Pop()
}

func rawName(ev platform.RawEvent) string {
	if u, ok := ev.(platform.Unrecognized); ok && u.Name != "" {
		return u.Name
	}
	return fmt.Sprintf("%T", ev)
}
