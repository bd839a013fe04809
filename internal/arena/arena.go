// Package arena provides a bump allocator over a fixed backing buffer.
// The solver allocates its scratch memory (BFS visited table, frontier
// queue, move log backing) from one arena per solve and releases it all
// with a single Reset. There is no individual free.
package arena

import "unsafe"

// Arena is a bump allocator. The zero value is unusable; create one with
// New.
type Arena struct {
	buf []byte
	off int
}

// New creates an arena with the given capacity in bytes.
func New(size int) *Arena {
	return &Arena{buf: make([]byte, size)}
}

// Alloc returns a zeroed slice of n bytes aligned to align, which must be
// a power of two. Exhausting the arena panics; callers size it up front.
func (a *Arena) Alloc(n, align int) []byte {
	if align <= 0 || align&(align-1) != 0 {
		panic("arena: alignment must be a power of two")
	}
	off := (a.off + align - 1) &^ (align - 1)
	if off+n > len(a.buf) {
		panic("arena: out of memory")
	}
	a.off = off + n
	b := a.buf[off : off+n : off+n]
	// memory may hold stale data from before the last Reset
	clear(b)
	return b
}

// Reset releases everything allocated since the arena was created.
// Previously returned slices must not be used afterwards.
func (a *Arena) Reset() {
	a.off = 0
}

// Used returns the number of bytes currently allocated, including
// alignment padding.
func (a *Arena) Used() int {
	return a.off
}

// Cap returns the arena's total capacity in bytes.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Make allocates a zeroed slice of n values of T from the arena.
func Make[T any](a *Arena, n int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	b := a.Alloc(n*size, int(unsafe.Alignof(zero)))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}
