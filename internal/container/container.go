// Package container provides the fixed-capacity containers used on the
// solver's hot paths: a stack and a ring-buffer queue. Neither grows;
// overflowing one is a bug in the caller and panics.
package container

// Stack is a fixed-capacity LIFO.
type Stack[T any] struct {
	items []T
	n     int
}

// NewStack creates a stack holding up to capacity values.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, capacity)}
}

// NewStackOver creates a stack over a caller-provided backing slice.
func NewStackOver[T any](backing []T) *Stack[T] {
	return &Stack[T]{items: backing}
}

// Push appends a value.
func (s *Stack[T]) Push(v T) {
	if s.n == len(s.items) {
		panic("container: stack overflow")
	}
	s.items[s.n] = v
	s.n++
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() T {
	if s.n == 0 {
		panic("container: stack underflow")
	}
	s.n--
	return s.items[s.n]
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() T {
	if s.n == 0 {
		panic("container: stack underflow")
	}
	return s.items[s.n-1]
}

// At returns the value at index i, counting from the bottom.
func (s *Stack[T]) At(i int) T {
	if i < 0 || i >= s.n {
		panic("container: stack index out of range")
	}
	return s.items[i]
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.n
}

// Cap returns the stack's capacity.
func (s *Stack[T]) Cap() int {
	return len(s.items)
}

// Clear empties the stack without releasing its backing memory.
func (s *Stack[T]) Clear() {
	s.n = 0
}

// Items returns a view of the current contents, bottom first. The slice
// aliases the stack's backing memory and is invalidated by Push.
func (s *Stack[T]) Items() []T {
	return s.items[:s.n]
}

// Queue is a fixed-capacity FIFO over a ring buffer.
type Queue[T any] struct {
	items []T
	head  int
	n     int
}

// NewQueue creates a queue holding up to capacity values.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, capacity)}
}

// NewQueueOver creates a queue over a caller-provided backing slice.
func NewQueueOver[T any](backing []T) *Queue[T] {
	return &Queue[T]{items: backing}
}

// Push appends a value at the tail.
func (q *Queue[T]) Push(v T) {
	if q.n == len(q.items) {
		panic("container: queue overflow")
	}
	q.items[(q.head+q.n)%len(q.items)] = v
	q.n++
}

// Pop removes and returns the value at the head.
func (q *Queue[T]) Pop() T {
	if q.n == 0 {
		panic("container: queue underflow")
	}
	v := q.items[q.head]
	q.head = (q.head + 1) % len(q.items)
	q.n--
	return v
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return q.n
}

// Cap returns the queue's capacity.
func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// Clear empties the queue without releasing its backing memory.
func (q *Queue[T]) Clear() {
	q.head = 0
	q.n = 0
}
