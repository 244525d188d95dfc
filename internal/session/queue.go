package session

import "github.com/vovakirdan/tui-shooter/internal/core"

// DefaultQueueSize is the input queue capacity used when none is configured.
const DefaultQueueSize = 8

// InputQueue buffers gameplay actions between ticks in arrival order.
// When full, new actions are dropped.
type InputQueue struct {
	buf  []core.Action
	size int
}

// NewInputQueue creates a queue holding at most size actions.
func NewInputQueue(size int) *InputQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &InputQueue{
		buf:  make([]core.Action, 0, size),
		size: size,
	}
}

// Push appends an action. Returns false if the queue is full.
func (q *InputQueue) Push(a core.Action) bool {
	if len(q.buf) >= q.size {
		return false
	}
	q.buf = append(q.buf, a)
	return true
}

// Pop removes and returns the oldest action.
func (q *InputQueue) Pop() (core.Action, bool) {
	if len(q.buf) == 0 {
		return core.ActionNone, false
	}
	a := q.buf[0]
	copy(q.buf, q.buf[1:])
	q.buf = q.buf[:len(q.buf)-1]
	return a, true
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.buf)
}

// Clear drops all pending actions.
func (q *InputQueue) Clear() {
	q.buf = q.buf[:0]
}
