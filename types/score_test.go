package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinLoseIn(t *testing.T) {
	assert.Equal(t, ImmediateWin, WinIn(0))
	assert.True(t, WinIn(1) < WinIn(0))
	assert.Equal(t, -WinIn(3), LoseIn(3))
}

func TestBackForwardInverse(t *testing.T) {
	scores := []Score{ScoreDraw, Eval(150), Eval(-300), WinIn(2), LoseIn(5)}
	for _, s := range scores {
		assert.Equal(t, s, s.Back().Forward())
	}
}

func TestBackNegatesAndPushesMateAway(t *testing.T) {
	win3 := WinIn(3)
	back := win3.Back()
	assert.True(t, back.IsLoss())
	assert.Equal(t, LoseIn(4), back)
}

func TestEvalClamped(t *testing.T) {
	huge := Eval(int32(MinWin) + 1000)
	assert.True(t, huge < MinWin)
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "150", Eval(150).String())
	assert.Contains(t, WinIn(2).String(), "#")
}
