package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tczajka/wazir-drop-sub000/movegen"
	"github.com/tczajka/wazir-drop-sub000/position"
)

func TestRandomPlayerCompletesSetupForBothSides(t *testing.T) {
	rp := NewRandomPlayer(1)

	m, err := rp.MakeMove(time.Time{})
	require.NoError(t, err)
	require.True(t, m.IsSetup())
	assert.True(t, m.Setup().ValidatePieceCounts())

	opp, err := rp.MakeMove(time.Time{})
	require.NoError(t, err)
	require.True(t, opp.IsSetup())
	assert.Equal(t, position.Regular, rp.pos.Stage())
}

func TestRandomPlayerRegularMoveIsPseudolegal(t *testing.T) {
	rp := NewRandomPlayer(2)
	_, err := rp.MakeMove(time.Time{})
	require.NoError(t, err)
	_, err = rp.MakeMove(time.Time{})
	require.NoError(t, err)
	require.Equal(t, position.Regular, rp.pos.Stage())

	before := rp.pos
	legal := movegen.RegularPseudomoves(before, before.SideToMove()).ToSlice()

	m, err := rp.MakeMove(time.Time{})
	require.NoError(t, err)
	require.False(t, m.IsSetup())

	found := false
	for _, lm := range legal {
		if lm == m.Regular() {
			found = true
			break
		}
	}
	assert.True(t, found, "random move %v not among pseudomoves", m)
}

// TestRandomPlayerAvoidsImmediateLossWhenPossible exercises the
// supplemented-feature filter: across many seeds, randomRegular should
// never pick a move leaving the mover in check when a safe alternative
// exists (spec.md's supplemented moverand.rs enrichment).
func TestRandomPlayerAvoidsImmediateLossWhenPossible(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rp := NewRandomPlayer(seed)
		_, err := rp.MakeMove(time.Time{})
		require.NoError(t, err)
		_, err = rp.MakeMove(time.Time{})
		require.NoError(t, err)

		mov := rp.randomRegular()
		next, err := rp.pos.MakeRegularMove(mov)
		require.NoError(t, err)
		if next.Stage() == position.End {
			continue
		}
		color := rp.pos.SideToMove()
		if movegen.InCheck(next, color) {
			// Only acceptable when truly no safe move existed.
			moves := movegen.RegularPseudomoves(rp.pos, color).ToSlice()
			anySafe := false
			for _, cand := range moves {
				n2, err := rp.pos.MakeRegularMove(cand)
				if err != nil {
					continue
				}
				if n2.Stage() == position.End || !movegen.InCheck(n2, color) {
					anySafe = true
					break
				}
			}
			assert.False(t, anySafe, "seed %d: picked a move leaving check though a safe one existed", seed)
		}
	}
}
