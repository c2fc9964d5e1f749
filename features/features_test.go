package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

func fullSetupFor(c Color) SetupMove {
	var pieces [SetupSize]PieceKind
	i := 0
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		for n := 0; n < pk.InitialCount(); n++ {
			pieces[i] = pk
			i++
		}
	}
	return SetupMove{Color: c, Pieces: pieces}
}

func setupBothSides(t *testing.T) position.Position {
	t.Helper()
	p := position.Initial()
	p, err := p.MakeSetupMove(fullSetupFor(Red))
	assert.NoError(t, err)
	p, err = p.MakeSetupMove(fullSetupFor(Blue))
	assert.NoError(t, err)
	return p
}

func TestCapturedOffsetTableEndsAtNumCapturedIndexes(t *testing.T) {
	assert.Equal(t, NumCapturedIndexes, capturedOffsetTable[Wazir])
}

func TestCapturedOffsetTableIsCumulative(t *testing.T) {
	sum := 0
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		assert.Equal(t, sum, capturedOffsetTable[pk])
		sum += int(ColorLength) * pk.InitialCount()
	}
}
