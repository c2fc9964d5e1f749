package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnightMoveBitboardFromD4(t *testing.T) {
	bb := MoveBitboard(Knight, MakeSquare("d4"))
	want := []string{"c2", "e2", "b3", "f3", "b5", "f5", "c6", "e6"}
	assert.Equal(t, len(want), bb.PopCount())
	for _, s := range want {
		assert.True(t, bb.Has(MakeSquare(s)), "expected %s set", s)
	}
}

func TestWazirMoveBitboardIsFourOrthogonalSteps(t *testing.T) {
	bb := MoveBitboard(Wazir, MakeSquare("d4"))
	want := []string{"d3", "d5", "c4", "e4"}
	assert.Equal(t, len(want), bb.PopCount())
	for _, s := range want {
		assert.True(t, bb.Has(MakeSquare(s)))
	}
}

func TestAlfilCornerHasFewerMoves(t *testing.T) {
	bb := MoveBitboard(Alfil, MakeSquare("a1"))
	assert.Equal(t, 1, bb.PopCount())
	assert.True(t, bb.Has(MakeSquare("c3")))
}
