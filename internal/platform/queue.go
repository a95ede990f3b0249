package platform

import "sync"

// Queue is a FIFO of raw events. It is the handoff point between the
// backend pump and the window that drains it; Push and Pop may be called
// from different goroutines.
type Queue struct {
	mu     sync.Mutex
	events []RawEvent
	head   int
}

// Push appends ev to the back of the queue.
func (q *Queue) Push(ev RawEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Pop removes and returns the oldest event. ok is false when the queue is
// empty.
func (q *Queue) Pop() (ev RawEvent, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head >= len(q.events) {
		return nil, false
	}
	ev = q.events[q.head]
	q.events[q.head] = nil
	q.head++

	// Reclaim the backing array once drained.
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	}
	return ev, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events) - q.head
}
