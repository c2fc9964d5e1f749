// Package search implements the engine's iterative-deepening alpha-beta
// search with quiescence (spec.md §4.5), grounded on FrankyGo's
// search/search.go async start/stop guard and internal/search/alphabeta.go's
// negamax shape, simplified to the moves the spec actually asks for: no
// PVS, null-move or mate-distance pruning, since the original engine this
// spec distils never implemented those either (src/search.rs's own
// qsearch is a one-ply stand-pat stub).
package search

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/tczajka/wazir-drop-sub000/config"
	"github.com/tczajka/wazir-drop-sub000/evaluator"
	"github.com/tczajka/wazir-drop-sub000/history"
	"github.com/tczajka/wazir-drop-sub000/logging"
	"github.com/tczajka/wazir-drop-sub000/movegen"
	"github.com/tczajka/wazir-drop-sub000/position"
	"github.com/tczajka/wazir-drop-sub000/transpositiontable"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

var log = logging.GetSearchLog()

// Hyperparameters is the core's exported search configuration surface
// (spec.md §6: "the core exports its Hyperparameters: transposition-table
// byte size; time-allocation decay constant"). TimeDecay is carried here
// for that contract even though Search itself never reads it: time
// budgeting is the caller's job (clock.AllocateMoveTime), Search only
// ever receives an already-computed deadline.
type Hyperparameters struct {
	TTSizeMb      int
	PVTableSizeMb int
	TimeDecay     float64
}

// DefaultHyperparameters reads Hyperparameters from config.Settings.
func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		TTSizeMb:      config.Settings.Search.TtSizeMb,
		PVTableSizeMb: config.Settings.Search.PvTableSizeMb,
		TimeDecay:     config.Settings.Search.TimeDecay,
	}
}

// Limits bounds one Search call: an optional depth cap (0 means "use the
// configured MaxSearchDepth") and an optional absolute deadline (zero
// value means "no deadline").
type Limits struct {
	MaxDepth int
	Deadline time.Time
}

// Search is a single-root alpha-beta searcher generic over the evaluator
// accumulator type A, grounded on FrankyGo's search.Search struct (a
// capability-table evaluator, a transposition table, and an async
// start/stop guard built from golang.org/x/sync/semaphore rather than
// channels, matching FrankyGo's own initSemaphore/isRunning pair). Every
// Search owns its own tables: no parallel search within a single root
// position (spec.md §1 Non-goals).
type Search[A any] struct {
	hp   Hyperparameters
	eval evaluator.Evaluator[A]

	tt      *transpositiontable.Table
	pvTable *transpositiontable.PVTable

	isRunning *semaphore.Weighted
	stopFlag  bool

	nodes       int64
	deadline    time.Time
	hasDeadline bool

	lastResult Result
}

// New creates a Search over eval, sized by hp. Tables are allocated only
// if config.Settings.Search enables them (spec.md §8's "with TT disabled"
// testable property requires being able to turn the TT off entirely).
func New[A any](hp Hyperparameters, eval evaluator.Evaluator[A]) *Search[A] {
	s := &Search[A]{
		hp:        hp,
		eval:      eval,
		isRunning: semaphore.NewWeighted(1),
	}
	if config.Settings.Search.UseTT {
		s.tt = transpositiontable.New("tt", hp.TTSizeMb)
	}
	if config.Settings.Search.UsePVTable {
		s.pvTable = transpositiontable.NewPVTable(hp.PVTableSizeMb)
	}
	return s
}

// IsSearching reports whether a search started by StartSearch is still
// running.
func (s *Search[A]) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// Wait blocks until any running search has finished and returns its
// result.
func (s *Search[A]) Wait() Result {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
	return s.lastResult
}

// Stop requests early termination of a running search and waits for it
// to finish. A no-op if no search is running.
func (s *Search[A]) Stop() Result {
	s.stopFlag = true
	return s.Wait()
}

// StartSearch runs the iterative-deepening search on p in the background;
// Wait or Stop retrieves the result. hist is the game's repetition
// history up to (not including) p; Search pushes/pops onto it as it
// explores and restores it fully before returning.
func (s *Search[A]) StartSearch(p position.Position, hist *history.History, limits Limits) {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.stopFlag = false
	go func() {
		defer s.isRunning.Release(1)
		s.lastResult = s.run(p, hist, limits)
	}()
}

// Run performs a search synchronously and returns its result directly
// (spec.md §4.5's `search(position, max_depth?, deadline?) -> SearchResult`
// contract, for callers that do not need the async start/stop split).
func (s *Search[A]) Run(p position.Position, hist *history.History, limits Limits) Result {
	s.StartSearch(p, hist, limits)
	return s.Wait()
}

func (s *Search[A]) run(p position.Position, hist *history.History, limits Limits) Result {
	start := time.Now()
	s.nodes = 0
	s.deadline = limits.Deadline
	s.hasDeadline = !limits.Deadline.IsZero()

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 || maxDepth > config.Settings.Search.MaxSearchDepth {
		maxDepth = config.Settings.Search.MaxSearchDepth
	}

	if s.tt != nil {
		s.tt.NewEpoch()
	}
	if s.pvTable != nil {
		s.pvTable.NewEpoch()
	}

	ep := evaluator.NewEvaluatedPosition[A](p, s.eval)

	// hist is documented as covering p's ancestors only; push p itself for
	// the duration of this search so a grandchild that returns to the root
	// position is caught by childScore's hist.Find the same way any other
	// repetition is, then restore hist exactly before returning.
	hist.Push(uint64(p.Hash()))
	defer hist.Pop()

	var last Result
	for depth := 1; depth <= maxDepth; depth++ {
		// The first iteration always runs to completion regardless of the
		// deadline (spec.md §8: "a search with an immediate deadline
		// returns within at most one full iterative-deepening iteration"),
		// so there is always at least one completed result to fall back
		// to; only Stop() can cut depth 1 short.
		savedHasDeadline := s.hasDeadline
		if depth == 1 {
			s.hasDeadline = false
		}
		result, completed := s.rootSearch(ep, hist, depth)
		s.hasDeadline = savedHasDeadline
		if !completed {
			break
		}
		result.SearchTime = time.Since(start)
		last = result
		log.Debugf("depth %d: score %s, best %s, nodes %d", depth, result.Score, result.BestMove, result.Nodes)
		if result.Score.IsMate() || s.stopFlag {
			break
		}
	}
	last.SearchTime = time.Since(start)
	last.Nodes = s.nodes
	return last
}

// shouldStop polls the deadline every CheckTimeoutNodes nodes (spec.md
// §4.5's "node budget & deadline" contract) and remembers the answer so
// later callers in the same search don't need to re-check the clock.
func (s *Search[A]) shouldStop() bool {
	if s.stopFlag {
		return true
	}
	if s.hasDeadline && s.nodes%config.Settings.Search.CheckTimeoutNodes == 0 && !time.Now().Before(s.deadline) {
		s.stopFlag = true
	}
	return s.stopFlag
}

// rootSearch walks regular_pseudomoves(position) at the root, ordering by
// PV move, TT move, MVV/LVA captures, then remainder (spec.md §4.5),
// returning false if the iteration was aborted by a deadline before every
// root move was searched (the driver then keeps the previous iteration's
// result, per spec.md §4.5's node-budget contract).
func (s *Search[A]) rootSearch(ep *evaluator.EvaluatedPosition[A], hist *history.History, depth int) (Result, bool) {
	p := ep.Position()
	hash := p.Hash()

	moves := movegen.RegularPseudomoves(p, p.SideToMove())
	if moves.Len() == 0 {
		return Result{Score: LoseIn(0), Depth: depth, Nodes: s.nodes}, true
	}

	var pvMove, ttMove RegularMove
	hasPV, hasTT := false, false
	if s.pvTable != nil {
		if cont := s.pvTable.Get(hash); len(cont) > 0 {
			pvMove, hasPV = cont[0], true
		}
	}
	if s.tt != nil {
		if e := s.tt.Probe(hash); e != nil {
			ttMove, hasTT = e.Move, true
		}
	}
	ordered := orderMoves(moves, pvMove, hasPV, ttMove, hasTT)

	alpha, beta := -ImmediateWin, ImmediateWin
	best := ScoreNA
	var bestMove RegularMove
	var bestPV []RegularMove

	for _, mov := range ordered {
		ep2, err := ep.MakeMove(NewRegularAnyMove(mov))
		if err != nil {
			continue
		}
		value := s.childScore(ep2, hist, depth-1, 1, -beta, -alpha).Back()
		if s.stopFlag {
			return Result{}, false
		}
		if value > best {
			best = value
			bestMove = mov
			if value > alpha {
				alpha = value
			}
			var cont []RegularMove
			if s.pvTable != nil {
				cont = s.pvTable.Get(ep2.Position().Hash())
			}
			bestPV = append([]RegularMove{mov}, cont...)
		}
	}

	if s.pvTable != nil {
		s.pvTable.Put(hash, bestPV, int8(depth))
	}
	if s.tt != nil {
		s.tt.Put(hash, bestMove, best, int8(depth), transpositiontable.Exact)
	}

	return Result{BestMove: bestMove, Score: best, Depth: depth, Nodes: s.nodes, PV: bestPV}, true
}

// SearchTopVariations evaluates every root move to depth and returns up to
// cutoff of them ranked best-first (spec.md §4.5's
// `search_top_variations(position, depth, cutoff) -> Vec<TopVariation>`,
// used by self-play to sample among strong moves rather than always
// playing the single best one). Unlike Run, it does not honour a
// deadline: depth is assumed small enough for a one-shot evaluation.
func (s *Search[A]) SearchTopVariations(p position.Position, hist *history.History, depth, cutoff int) []TopVariation {
	s.stopFlag = false
	s.hasDeadline = false
	ep := evaluator.NewEvaluatedPosition[A](p, s.eval)
	moves := movegen.RegularPseudomoves(p, p.SideToMove())

	variations := make([]TopVariation, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		mov := moves.At(i)
		ep2, err := ep.MakeMove(NewRegularAnyMove(mov))
		if err != nil {
			continue
		}
		value := s.childScore(ep2, hist, depth-1, 1, -ImmediateWin, ImmediateWin).Back()
		var cont []RegularMove
		if s.pvTable != nil {
			cont = s.pvTable.Get(ep2.Position().Hash())
		}
		variations = append(variations, TopVariation{Move: mov, Score: value, PV: append([]RegularMove{mov}, cont...)})
	}

	sort.SliceStable(variations, func(i, j int) bool { return variations[i].Score > variations[j].Score })
	if cutoff > 0 && cutoff < len(variations) {
		variations = variations[:cutoff]
	}
	return variations
}
