// Package history provides bounded undo/redo stacks of state snapshots.
package history

// DefaultDepth is the number of snapshots kept per stack when none is given.
const DefaultDepth = 20

// History keeps undo and redo stacks of at most depth snapshots each.
// When a stack is full the oldest snapshot is dropped.
type History[T any] struct {
	depth int
	undo  []T
	redo  []T
}

// New creates an empty history. A depth below 1 selects DefaultDepth.
func New[T any](depth int) *History[T] {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &History[T]{depth: depth}
}

// Depth returns the maximum number of snapshots per stack.
func (h *History[T]) Depth() int {
	return h.depth
}

// Push records the state before a new change and discards the redo stack.
func (h *History[T]) Push(state T) {
	h.undo = push(h.undo, state, h.depth)
	h.redo = nil
}

// Undo returns the state to restore. current is saved for Redo.
// The bool is false when there is nothing to undo.
func (h *History[T]) Undo(current T) (T, bool) {
	var zero T
	if len(h.undo) == 0 {
		return zero, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = push(h.redo, current, h.depth)
	return prev, true
}

// Redo returns the state to re-apply. current is saved for Undo.
// The bool is false when there is nothing to redo.
func (h *History[T]) Redo(current T) (T, bool) {
	var zero T
	if len(h.redo) == 0 {
		return zero, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = push(h.undo, current, h.depth)
	return next, true
}

// CanUndo reports whether Undo would succeed.
func (h *History[T]) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History[T]) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the sizes of the undo and redo stacks.
func (h *History[T]) Len() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Reset empties both stacks.
func (h *History[T]) Reset() {
	h.undo = nil
	h.redo = nil
}

func push[T any](stack []T, state T, depth int) []T {
	if len(stack) >= depth {
		// drop oldest; copy so the backing array does not grow without bound
		stack = append(stack[:0:0], stack[len(stack)-depth+1:]...)
	}
	return append(stack, state)
}
