package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tczajka/wazir-drop-sub000/config"
	"github.com/tczajka/wazir-drop-sub000/evaluator"
	"github.com/tczajka/wazir-drop-sub000/history"
	"github.com/tczajka/wazir-drop-sub000/movegen"
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
	require.NoError(t, err)
	p, err = p.MakeSetupMove(fullSetupFor(Blue))
	require.NoError(t, err)
	return p
}

// withSearchSettings temporarily overrides the global search configuration
// for the duration of a test, restoring it on cleanup (tests run against
// the package-level config.Settings singleton the same way the engine
// binary does).
func withSearchSettings(t *testing.T, mutate func()) {
	t.Helper()
	saved := config.Settings.Search
	t.Cleanup(func() { config.Settings.Search = saved })
	mutate()
}

func TestDepth1PicksBestMoveUnderStaticEval(t *testing.T) {
	withSearchSettings(t, func() {})
	p := setupBothSides(t)
	ev := evaluator.NewDefaultLinearPSEvaluator(0, 100)
	s := New[int32](DefaultHyperparameters(), ev)

	result := s.Run(p, history.New(), Limits{MaxDepth: 1})
	require.NotEqual(t, ScoreNA, result.Score)

	ep := evaluator.NewEvaluatedPosition[int32](p, ev)
	moves := movegen.RegularPseudomoves(p, p.SideToMove())
	var best Score = ScoreNA
	for _, m := range moves.ToSlice() {
		ep2, err := ep.MakeMove(NewRegularAnyMove(m))
		require.NoError(t, err)
		v := -ep2.Evaluate()
		if v > best {
			best = v
		}
	}
	assert.Equal(t, best, result.Score)
}

// naiveNegamax is a plain fixed-depth negamax with no transposition
// table, no move ordering and no quiescence extension, used as an
// oracle to check Search's exact-value agreement at small depths
// (spec.md §8: "with TT disabled, search returns exact minimax values
// equal to a naive negamax for small depths").
func naiveNegamax[A any](ep *evaluator.EvaluatedPosition[A], depth int) Score {
	p := ep.Position()
	if p.Stage() == position.End {
		return LoseIn(0)
	}
	if depth <= 0 {
		return ep.Evaluate()
	}
	moves := movegen.RegularPseudomoves(p, p.SideToMove())
	if moves.Len() == 0 {
		return LoseIn(0)
	}
	best := ScoreNA
	for _, m := range moves.ToSlice() {
		ep2, err := ep.MakeMove(NewRegularAnyMove(m))
		if err != nil {
			continue
		}
		v := naiveNegamax(ep2, depth-1).Back()
		if v > best {
			best = v
		}
	}
	return best
}

func TestMatchesNaiveNegamaxWithTTDisabled(t *testing.T) {
	withSearchSettings(t, func() {
		config.Settings.Search.UseTT = false
		config.Settings.Search.UsePVTable = false
		config.Settings.Search.UseQuiescence = false
	})
	p := setupBothSides(t)
	ev := evaluator.NewDefaultLinearPSEvaluator(0, 100)

	for depth := 1; depth <= 3; depth++ {
		s := New[int32](DefaultHyperparameters(), ev)
		result := s.Run(p, history.New(), Limits{MaxDepth: depth})

		ep := evaluator.NewEvaluatedPosition[int32](p, ev)
		want := naiveNegamax[int32](ep, depth)
		assert.Equal(t, want, result.Score, "depth %d", depth)
	}
}

func TestImmediateDeadlineCompletesOneIteration(t *testing.T) {
	withSearchSettings(t, func() {
		// Check every node rather than every 2047, so the second
		// iteration aborts at its very first node instead of possibly
		// running to completion on a shallow, already-passed position.
		config.Settings.Search.CheckTimeoutNodes = 1
	})
	p := setupBothSides(t)
	ev := evaluator.NewDefaultLinearPSEvaluator(0, 100)
	s := New[int32](DefaultHyperparameters(), ev)

	start := time.Now()
	result := s.Run(p, history.New(), Limits{Deadline: time.Now()})
	elapsed := time.Since(start)

	assert.Equal(t, 1, result.Depth)
	assert.NotEqual(t, ScoreNA, result.Score)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestForcedWazirCaptureFoundAtDepth1(t *testing.T) {
	withSearchSettings(t, func() {})
	s := "regular\nred\n\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"...w....\n" +
		"...W....\n" +
		"........\n" +
		"........\n"
	p, err := position.Parse(s)
	require.NoError(t, err)
	require.True(t, movegen.InCheck(p, Red))

	ev := evaluator.NewDefaultLinearPSEvaluator(0, 100)
	srch := New[int32](DefaultHyperparameters(), ev)
	result := srch.Run(p, history.New(), Limits{MaxDepth: 1})

	assert.Equal(t, Wazir, result.BestMove.Captured)
	assert.Equal(t, p.WazirSquare(Blue), result.BestMove.To)
	assert.Equal(t, WinIn(1), result.Score)
}

func TestSearchTopVariationsRankedBestFirst(t *testing.T) {
	withSearchSettings(t, func() {})
	p := setupBothSides(t)
	ev := evaluator.NewDefaultLinearPSEvaluator(0, 100)
	s := New[int32](DefaultHyperparameters(), ev)

	variations := s.SearchTopVariations(p, history.New(), 1, 3)
	require.True(t, len(variations) > 0)
	assert.LessOrEqual(t, len(variations), 3)
	for i := 1; i < len(variations); i++ {
		assert.GreaterOrEqual(t, variations[i-1].Score, variations[i].Score)
	}
}

func TestStopReturnsAResult(t *testing.T) {
	withSearchSettings(t, func() {})
	p := setupBothSides(t)
	ev := evaluator.NewDefaultLinearPSEvaluator(0, 100)
	s := New[int32](DefaultHyperparameters(), ev)

	// A depth-1 search over the starting position finishes in well under
	// this grace period, so Stop() below observes a settled result rather
	// than racing an in-flight iteration.
	s.StartSearch(p, history.New(), Limits{MaxDepth: 1})
	time.Sleep(50 * time.Millisecond)
	result := s.Stop()
	assert.False(t, s.IsSearching())
	assert.NotEqual(t, ScoreNA, result.Score)
}
