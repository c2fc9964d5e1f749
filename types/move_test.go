package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegularMoveLongStringDrop(t *testing.T) {
	m := RegularMove{Piece: MakeColoredPiece(Red, Alfil), From: SqNone, To: MakeSquare("d4")}
	assert.Equal(t, "A@d4", m.LongString())
}

func TestRegularMoveLongStringQuiet(t *testing.T) {
	m := RegularMove{Piece: MakeColoredPiece(Red, Wazir), From: MakeSquare("a2"), To: MakeSquare("a3")}
	assert.Equal(t, "Wa2-a3", m.LongString())
}

func TestRegularMoveLongStringCapture(t *testing.T) {
	m := RegularMove{
		Piece: MakeColoredPiece(Red, Wazir), From: MakeSquare("a2"),
		Captured: Alfil, HasCapture: true, To: MakeSquare("b2"),
	}
	assert.Equal(t, "Wa2xab2", m.LongString())
}

func TestSetupMoveString(t *testing.T) {
	var pieces [SetupSize]PieceKind
	for i := 0; i < 8; i++ {
		pieces[i] = Alfil
	}
	for i := 8; i < 12; i++ {
		pieces[i] = Dabbaba
	}
	pieces[12], pieces[13] = Ferz, Ferz
	pieces[14] = Knight
	pieces[15] = Wazir
	m := SetupMove{Color: Red, Pieces: pieces}
	assert.True(t, m.ValidatePieceCounts())
	assert.Len(t, m.String(), SetupSize)
}

func TestShortMoveString(t *testing.T) {
	sm := NewRegularShortMove(ShortMoveFromSquare(MakeSquare("a2")), MakeSquare("a3"))
	assert.Equal(t, "a2a3", sm.String())

	drop := NewRegularShortMove(ShortMoveFromReserve(MakeColoredPiece(Red, Alfil)), MakeSquare("d4"))
	assert.Equal(t, "Ad4", drop.String())
}
