package platform

import (
	"sync"
	"testing"
)

func TestQueue_FIFO(t *testing.T) {
	var q Queue
	q.Push(Focused{Focused: true})
	q.Push(CursorLeft{})
	q.Push(CloseRequested{})

	want := []RawEvent{Focused{Focused: true}, CursorLeft{}, CloseRequested{}}
	for i, w := range want {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if got != w {
			t.Fatalf("pop %d: got %#v, want %#v", i, got, w)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("expected empty queue")
	}
	if q.Len() != 0 {
		t.Fatalf("expected Len 0, got %d", q.Len())
	}
}

func TestQueue_ReuseAfterDrain(t *testing.T) {
	var q Queue
	q.Push(CursorLeft{})
	q.Pop()
	q.Push(ReceivedCharacter{Char: 'x'})
	if q.Len() != 1 {
		t.Fatalf("expected Len 1, got %d", q.Len())
	}
	got, _ := q.Pop()
	if got != (ReceivedCharacter{Char: 'x'}) {
		t.Fatalf("got %#v", got)
	}
}

func TestQueue_ConcurrentProducerKeepsOrder(t *testing.T) {
	var q Queue
	const n = 500

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(Touch{ID: uint64(i)})
		}
	}()

	next := uint64(0)
	for next < n {
		ev, ok := q.Pop()
		if !ok {
			continue
		}
		touch := ev.(Touch)
		if touch.ID != next {
			t.Fatalf("out of order: got %d, want %d", touch.ID, next)
		}
		next++
	}
	wg.Wait()
}

func TestAllKeyCodes(t *testing.T) {
	codes := AllKeyCodes()
	if len(codes) != int(keyCodeCount)-1 {
		t.Fatalf("expected %d codes, got %d", keyCodeCount-1, len(codes))
	}
	if codes[0] != Key1 {
		t.Fatalf("expected first code Key1, got %v", codes[0])
	}
	if KeyEscape.String() != "Escape" {
		t.Fatalf("unexpected name %q", KeyEscape.String())
	}
	if keyCodeCount.String() != "Invalid" {
		t.Fatalf("expected Invalid for out-of-range code")
	}
}

func TestParseKeyCode(t *testing.T) {
	tests := []struct {
		name string
		want VirtualKeyCode
		ok   bool
	}{
		{"Escape", KeyEscape, true},
		{"escape", KeyEscape, true},
		{"Key1", Key1, true},
		{"F12", KeyF12, true},
		{"None", KeyNone, false},
		{"NoSuchKey", KeyNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseKeyCode(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseKeyCode(%q) = %v, %t; want %v, %t", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
