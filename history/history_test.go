package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Find must be called with a candidate hash before it is pushed: the
// stack at call time holds only the candidate's ancestors.

func TestFindMatchesSameSidePly(t *testing.T) {
	h := New()
	h.Push(100) // ply 0, side A
	h.Push(200) // ply 1, side B

	// Candidate ply 2 (side A again) repeats ply 0's hash.
	ply, found := h.Find(100)
	assert.True(t, found)
	assert.Equal(t, 0, ply)
	h.Push(100)
}

func TestFindSkipsOppositeSideTopOfStack(t *testing.T) {
	h := New()
	h.Push(200) // ply 0, side A
	h.Push(100) // ply 1, side B

	// The candidate (ply 2, side A) must not match ply 1's hash even
	// though it's on top of the stack, since ply 1 is the opposite side.
	_, found := h.Find(100)
	assert.False(t, found)
}

func TestFindMissReturnsFalse(t *testing.T) {
	h := New()
	h.Push(1)
	h.Push(2)
	_, found := h.Find(999)
	assert.False(t, found)
}

func TestPushPopRoundTrip(t *testing.T) {
	h := New()
	h.Push(42)
	h.Push(43)
	assert.Equal(t, 2, h.Len())
	h.Pop()
	assert.Equal(t, 1, h.Len())
}

func TestClearResetsState(t *testing.T) {
	h := New()
	h.Push(1)
	h.Push(2)
	h.Clear(10)
	assert.Equal(t, 0, h.Len())
	_, found := h.Find(1)
	assert.False(t, found)
}

func TestBloomFilterShortCircuitsAbsentHash(t *testing.T) {
	h := New()
	for i := uint64(0); i < 50; i++ {
		h.Push(i * 7919)
	}
	_, found := h.Find(0xDEADBEEF)
	assert.False(t, found)
}
