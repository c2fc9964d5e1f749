package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tczajka/wazir-drop-sub000/movegen"
	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

func TestWPSAllReturnsNilBeforeOwnWazirPlaced(t *testing.T) {
	p := position.Initial()
	wps := WPS{}
	assert.Nil(t, wps.All(p, Red))
}

func TestWPSAllAfterBothSetupsHasNonzeroFeatures(t *testing.T) {
	p := setupBothSides(t)
	wps := WPS{}
	feats := wps.All(p, Red)
	assert.True(t, len(feats) > 0)
	for _, f := range feats {
		assert.True(t, f >= 0 && f < wps.Count())
	}
}

func TestWPSDiffRegularMatchesRebuiltAllForNonWazirMove(t *testing.T) {
	p := setupBothSides(t)
	wps := WPS{}

	moves := movegen.RegularPseudomoves(p, Red)
	var mov RegularMove
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Piece.KindOf() != Wazir {
			mov = m
			found = true
			break
		}
	}
	assert.True(t, found)

	p2, err := p.MakeRegularMove(mov)
	assert.NoError(t, err)

	beforeRed := wps.All(p, Red)
	added, removed, ok := wps.DiffRegular(mov, p2, Red)
	assert.True(t, ok)
	assert.Equal(t, sorted(wps.All(p2, Red)), sorted(applyDiff(beforeRed, added, removed)))

	beforeBlue := wps.All(p, Blue)
	addedB, removedB, ok := wps.DiffRegular(mov, p2, Blue)
	assert.True(t, ok)
	assert.Equal(t, sorted(wps.All(p2, Blue)), sorted(applyDiff(beforeBlue, addedB, removedB)))
}

func TestWPSDiffRegularDeclinesOnOwnWazirMove(t *testing.T) {
	p := setupBothSides(t)
	wps := WPS{}

	moves := movegen.RegularPseudomoves(p, Red)
	var mov RegularMove
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Piece.KindOf() == Wazir && !m.HasCapture {
			mov = m
			found = true
			break
		}
	}
	if !found {
		t.Skip("no quiet Wazir move available from this setup")
	}

	p2, err := p.MakeRegularMove(mov)
	assert.NoError(t, err)

	_, _, ok := wps.DiffRegular(mov, p2, Red)
	assert.False(t, ok)
}
