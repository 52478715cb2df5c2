package frame

// ResizeNotifier fans viewport size changes out to subscribers.
type ResizeNotifier struct {
	nextID   uint64
	handlers map[uint64]func(width, height int)
	order    []uint64

	width, height int
}

func NewResizeNotifier() *ResizeNotifier {
	return &ResizeNotifier{handlers: map[uint64]func(int, int){}}
}

// OnResize subscribes fn. The returned func removes exactly this
// subscription and is safe to call more than once.
func (n *ResizeNotifier) OnResize(fn func(width, height int)) (unsubscribe func()) {
	n.nextID++
	id := n.nextID
	n.handlers[id] = fn
	n.order = append(n.order, id)

	return func() {
		if _, ok := n.handlers[id]; !ok {
			return
		}
		delete(n.handlers, id)
		for i, o := range n.order {
			if o == id {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
}

// Notify records the current size and, if it differs from the last one,
// calls every subscriber in subscription order. It reports whether the
// size changed.
func (n *ResizeNotifier) Notify(width, height int) bool {
	if width == n.width && height == n.height {
		return false
	}
	n.width, n.height = width, height

	// copy so handlers may unsubscribe while being notified
	ids := append([]uint64(nil), n.order...)
	for _, id := range ids {
		if fn, ok := n.handlers[id]; ok {
			fn(width, height)
		}
	}
	return true
}

// Size is the last notified size.
func (n *ResizeNotifier) Size() (int, int) {
	return n.width, n.height
}

func (n *ResizeNotifier) Len() int {
	return len(n.handlers)
}
