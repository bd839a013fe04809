package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocReturnsZeroedMemory(t *testing.T) {
	a := New(64)
	b := a.Alloc(16, 1)
	require.Len(t, b, 16)
	for _, v := range b {
		assert.Zero(t, v)
	}
}

func TestAllocZeroesAfterReset(t *testing.T) {
	a := New(64)
	b := a.Alloc(16, 1)
	for i := range b {
		b[i] = 0xFF
	}
	a.Reset()
	assert.Equal(t, 0, a.Used())

	b = a.Alloc(16, 1)
	for _, v := range b {
		assert.Zero(t, v)
	}
}

func TestAllocAligns(t *testing.T) {
	a := New(64)
	a.Alloc(1, 1)
	assert.Equal(t, 1, a.Used())
	a.Alloc(8, 8)
	assert.Equal(t, 16, a.Used())
}

func TestAllocOutOfMemoryPanics(t *testing.T) {
	a := New(8)
	a.Alloc(8, 1)
	assert.Panics(t, func() { a.Alloc(1, 1) })
}

func TestAllocBadAlignmentPanics(t *testing.T) {
	a := New(8)
	assert.Panics(t, func() { a.Alloc(1, 3) })
	assert.Panics(t, func() { a.Alloc(1, 0) })
}

func TestMakeTypedSlices(t *testing.T) {
	a := New(1024)
	xs := Make[uint32](a, 10)
	require.Len(t, xs, 10)
	for i := range xs {
		xs[i] = uint32(i)
	}
	ys := Make[uint64](a, 4)
	require.Len(t, ys, 4)
	for _, y := range ys {
		assert.Zero(t, y)
	}
	// earlier allocation is untouched
	for i, x := range xs {
		assert.Equal(t, uint32(i), x)
	}
	assert.Equal(t, 1024, a.Cap())
}

func TestMakeEmpty(t *testing.T) {
	a := New(8)
	assert.Nil(t, Make[byte](a, 0))
}

func TestAllocationsDoNotOverlap(t *testing.T) {
	a := New(64)
	b1 := a.Alloc(8, 1)
	b2 := a.Alloc(8, 1)
	for i := range b1 {
		b1[i] = 1
	}
	for _, v := range b2 {
		assert.Zero(t, v)
	}
}
