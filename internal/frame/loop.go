// Package frame provides the host primitives an animation needs: a
// next-frame scheduler with cancelable handles and a resize notifier.
// Both are single-threaded and expect to be driven from the game loop.
package frame

// ID identifies a requested frame callback. The zero ID is never issued.
type ID uint64

type request struct {
	id ID
	fn func()
}

// Loop schedules callbacks to run on the next Advance, in request order.
type Loop struct {
	nextID  ID
	pending []request
	// batch being run by Advance, so CancelFrame can reach it
	inFlight []request
}

func NewLoop() *Loop {
	return &Loop{}
}

// RequestFrame schedules fn for the next Advance.
func (l *Loop) RequestFrame(fn func()) ID {
	l.nextID++
	l.pending = append(l.pending, request{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelFrame drops a pending callback. Unknown or already run IDs are ignored.
func (l *Loop) CancelFrame(id ID) {
	for i, r := range l.pending {
		if r.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	for i := range l.inFlight {
		if l.inFlight[i].id == id {
			l.inFlight[i].fn = nil
			return
		}
	}
}

// Advance runs every callback pending at call time. Callbacks requested
// while advancing wait for the next Advance. It returns how many ran.
func (l *Loop) Advance() int {
	l.inFlight = l.pending
	l.pending = nil
	defer func() { l.inFlight = nil }()

	ran := 0
	for i := range l.inFlight {
		fn := l.inFlight[i].fn
		if fn == nil {
			continue
		}
		l.inFlight[i].fn = nil
		fn()
		ran++
	}
	return ran
}

func (l *Loop) Pending() int {
	return len(l.pending)
}
