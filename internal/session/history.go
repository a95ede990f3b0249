package session

import (
	"sync"
	"time"

	"github.com/1broseidon/xwin/internal/input"
)

// Entry is one recorded input event.
type Entry struct {
	Seq  uint64    `json:"seq"`
	Time time.Time `json:"time"`
	input.Record
}

// History is a bounded ring of the most recent events. It is safe for
// concurrent use; the session goroutine writes and control clients read.
type History struct {
	mu    sync.Mutex
	buf   []Entry
	next  int
	full  bool
	total uint64
}

// NewHistory keeps up to capacity entries. A capacity of zero records only
// the running total.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{buf: make([]Entry, capacity)}
}

// Add records ev and returns its sequence number, starting at 1.
func (h *History) Add(ev input.Event, at time.Time) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.total++
	if len(h.buf) == 0 {
		return h.total
	}
	h.buf[h.next] = Entry{Seq: h.total, Time: at, Record: input.Describe(ev)}
	h.next = (h.next + 1) % len(h.buf)
	if h.next == 0 {
		h.full = true
	}
	return h.total
}

// Total returns how many events were ever recorded.
func (h *History) Total() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}

// Recent returns up to n entries, oldest first. n <= 0 returns everything
// retained.
func (h *History) Recent(n int) []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	count := h.next
	if h.full {
		count = len(h.buf)
	}
	if n <= 0 || n > count {
		n = count
	}

	out := make([]Entry, 0, n)
	start := h.next - n
	if start < 0 {
		start += len(h.buf)
	}
	for i := 0; i < n; i++ {
		out = append(out, h.buf[(start+i)%len(h.buf)])
	}
	return out
}

// Since returns retained entries with a sequence number greater than seq.
func (h *History) Since(seq uint64) []Entry {
	all := h.Recent(0)
	for i, e := range all {
		if e.Seq > seq {
			return all[i:]
		}
	}
	return nil
}
