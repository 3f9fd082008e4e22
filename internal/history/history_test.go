package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_UndoRedo(t *testing.T) {
	h := New[string](5)

	h.Push("a")
	h.Push("b")

	prev, ok := h.Undo("c")
	assert.True(t, ok)
	assert.Equal(t, "b", prev)

	next, ok := h.Redo("b")
	assert.True(t, ok)
	assert.Equal(t, "c", next)

	undo, redo := h.Len()
	assert.Equal(t, 2, undo)
	assert.Equal(t, 0, redo)
}

func TestHistory_Empty(t *testing.T) {
	h := New[int](3)

	_, ok := h.Undo(1)
	assert.False(t, ok)
	_, ok = h.Redo(1)
	assert.False(t, ok)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_PushClearsRedo(t *testing.T) {
	h := New[int](3)
	h.Push(1)
	_, _ = h.Undo(2)
	assert.True(t, h.CanRedo())

	h.Push(3)
	assert.False(t, h.CanRedo())
}

func TestHistory_DropsOldest(t *testing.T) {
	h := New[int](3)
	for i := 1; i <= 5; i++ {
		h.Push(i)
	}

	undo, _ := h.Len()
	assert.Equal(t, 3, undo)

	var got []int
	for h.CanUndo() {
		v, _ := h.Undo(0)
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 4, 3}, got)

	// Redo stack is bounded too.
	_, redo := h.Len()
	assert.Equal(t, 3, redo)
}

func TestHistory_DefaultDepth(t *testing.T) {
	assert.Equal(t, DefaultDepth, New[int](0).Depth())
	assert.Equal(t, 7, New[int](7).Depth())
}

func TestHistory_Reset(t *testing.T) {
	h := New[int](3)
	h.Push(1)
	_, _ = h.Undo(2)
	h.Reset()

	undo, redo := h.Len()
	assert.Zero(t, undo)
	assert.Zero(t, redo)
}
