package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialCounts(t *testing.T) {
	total := 0
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		total += pk.InitialCount()
	}
	assert.Equal(t, SetupSize, total)
}

func TestColoredPieceRoundTrip(t *testing.T) {
	for c := Red; c <= Blue; c++ {
		for pk := PieceKind(0); pk < PieceKindLength; pk++ {
			cp := MakeColoredPiece(c, pk)
			parsed, ok := ColoredPieceFromChar(cp.Char())
			assert.True(t, ok)
			assert.Equal(t, cp, parsed)
			assert.Equal(t, c, parsed.ColorOf())
			assert.Equal(t, pk, parsed.KindOf())
		}
	}
}

func TestColoredPieceCase(t *testing.T) {
	red := MakeColoredPiece(Red, Wazir)
	blue := MakeColoredPiece(Blue, Wazir)
	assert.Equal(t, byte('W'), red.Char())
	assert.Equal(t, byte('w'), blue.Char())
}
