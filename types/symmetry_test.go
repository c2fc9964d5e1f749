package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedSquareInTriangle(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		norm := NormalizedSquare(sq)
		assert.LessOrEqual(t, int(norm.FileOf()), 3)
		assert.LessOrEqual(t, int(norm.RankOf()), 3)
		assert.LessOrEqual(t, norm.FileOf(), File(norm.RankOf()))
	}
}

func TestNormalizedSquareCount(t *testing.T) {
	seen := map[Square]bool{}
	for sq := Square(0); sq < SqLength; sq++ {
		seen[NormalizedSquare(sq)] = true
	}
	assert.Len(t, seen, NormalizedSquareCount)
}

func TestSymmetryApplyMatchesNormalize(t *testing.T) {
	for sq := Square(0); sq < SqLength; sq++ {
		sym := NormalizingSymmetry(sq)
		assert.Equal(t, NormalizedSquare(sq), sym.Apply(sq))
	}
}

func TestPointOfView(t *testing.T) {
	assert.Equal(t, Identity, PointOfView(Red))
	assert.Equal(t, Rotate180, PointOfView(Blue))
	a1 := MakeSquare("a1")
	assert.Equal(t, MakeSquare("h8"), PointOfView(Blue).Apply(a1))
}
