package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack[int](4)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 4, s.Cap())

	s.Push(10)
	s.Push(20)
	s.Push(30)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 30, s.Peek())
	assert.Equal(t, 30, s.Pop())
	assert.Equal(t, 20, s.Pop())
	assert.Equal(t, 1, s.Len())
}

func TestStackAtAndItems(t *testing.T) {
	s := NewStack[string](3)
	s.Push("a")
	s.Push("b")
	assert.Equal(t, "a", s.At(0))
	assert.Equal(t, "b", s.At(1))
	assert.Equal(t, []string{"a", "b"}, s.Items())
}

func TestStackClear(t *testing.T) {
	s := NewStack[int](2)
	s.Push(1)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	s.Push(2)
	assert.Equal(t, 2, s.Pop())
}

func TestStackOverflowPanics(t *testing.T) {
	s := NewStack[int](1)
	s.Push(1)
	assert.Panics(t, func() { s.Push(2) })
}

func TestStackUnderflowPanics(t *testing.T) {
	s := NewStack[int](1)
	assert.Panics(t, func() { s.Pop() })
	assert.Panics(t, func() { s.Peek() })
	assert.Panics(t, func() { s.At(0) })
}

func TestStackOverBackingSlice(t *testing.T) {
	backing := make([]int, 2)
	s := NewStackOver(backing)
	s.Push(7)
	s.Push(8)
	assert.Equal(t, []int{7, 8}, backing)
	assert.Panics(t, func() { s.Push(9) })
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int](3)
	q.Push(1)
	q.Push(2)
	q.Push(3)
	require.Equal(t, 3, q.Len())
	assert.Equal(t, 1, q.Pop())
	assert.Equal(t, 2, q.Pop())
	assert.Equal(t, 3, q.Pop())
	assert.Equal(t, 0, q.Len())
}

func TestQueueWrapsAround(t *testing.T) {
	q := NewQueue[int](3)
	for round := 0; round < 10; round++ {
		q.Push(round)
		q.Push(round + 100)
		assert.Equal(t, round, q.Pop())
		assert.Equal(t, round+100, q.Pop())
	}
}

func TestQueueOverflowAndUnderflowPanic(t *testing.T) {
	q := NewQueue[int](1)
	assert.Panics(t, func() { q.Pop() })
	q.Push(1)
	assert.Panics(t, func() { q.Push(2) })
}

func TestQueueClear(t *testing.T) {
	q := NewQueue[int](2)
	q.Push(1)
	q.Pop()
	q.Push(2)
	q.Clear()
	assert.Equal(t, 0, q.Len())
	q.Push(3)
	q.Push(4)
	assert.Equal(t, 3, q.Pop())
	assert.Equal(t, 4, q.Pop())
}
