package player

import (
	"errors"
	"time"

	"github.com/tczajka/wazir-drop-sub000/clock"
	"github.com/tczajka/wazir-drop-sub000/evaluator"
	"github.com/tczajka/wazir-drop-sub000/history"
	"github.com/tczajka/wazir-drop-sub000/logging"
	"github.com/tczajka/wazir-drop-sub000/movegen"
	"github.com/tczajka/wazir-drop-sub000/position"
	"github.com/tczajka/wazir-drop-sub000/search"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

var log = logging.GetLog("player")

// EnginePlayer is the Player backed by the core search (spec.md §1, §6):
// a single Search[A] instance reused across the whole game, its own
// position/history pair advanced by every move either side makes.
// Grounded on FrankyGo's internal/uci handler, which likewise owns one
// long-lived Position plus the engine's search.Search across a game
// rather than recreating either per move.
type EnginePlayer[A any] struct {
	search *search.Search[A]
	pos    position.Position
	hist   *history.History
	timer  *clock.Timer
	decay  float64
}

// NewEnginePlayer builds an EnginePlayer over eval, starting from the
// initial position with timer governing its own remaining time budget
// (spec.md §6's "Time <ms>" command feeds timer.SetRemaining).
func NewEnginePlayer[A any](eval evaluator.Evaluator[A], timer *clock.Timer) *EnginePlayer[A] {
	hp := search.DefaultHyperparameters()
	return &EnginePlayer[A]{
		search: search.New[A](hp, eval),
		pos:    position.Initial(),
		hist:   history.New(),
		timer:  timer,
		decay:  hp.TimeDecay,
	}
}

// Stop asks an in-progress MakeMove's search to return early with
// whatever iteration it last completed (player.Stoppable).
func (e *EnginePlayer[A]) Stop() {
	e.search.Stop()
}

func (e *EnginePlayer[A]) OpponentMove(sm ShortMove) error {
	m, err := e.pos.MoveFromShortMove(sm)
	if err != nil {
		return err
	}
	next, err := e.pos.MakeMove(m)
	if err != nil {
		return err
	}
	e.pos = next
	e.hist.Push(uint64(e.pos.Hash()))
	return nil
}

// MakeMove produces this player's next move (spec.md §6): during Setup
// stage it plays the canonical first setup permutation, since search
// only operates over RegularPseudomoves (the Setup stage's combinatorics
// are a movegen/enumeration concern, not a search one, per spec.md §4.2
// vs §4.5); during Regular stage it runs an iterative-deepening search
// bounded by deadline or, when deadline is the zero value, by a budget
// allocated from the time remaining on its timer.
func (e *EnginePlayer[A]) MakeMove(deadline time.Time) (AnyMove, error) {
	var m AnyMove
	if e.pos.Stage() == position.Setup {
		sm, ok := movegen.NewSetupMoveIterator(e.pos.SideToMove()).Next()
		if !ok {
			return AnyMove{}, errors.New("player: no setup move available")
		}
		m = NewSetupAnyMove(sm)
	} else {
		limits := search.Limits{Deadline: deadline}
		if deadline.IsZero() {
			budget := clock.AllocateMoveTime(e.timer.Get(), e.decay)
			limits.Deadline = time.Now().Add(budget)
		}
		result := e.search.Run(e.pos, e.hist, limits)
		log.Debugf("engine move: depth %d score %s nodes %d", result.Depth, result.Score, result.Nodes)
		m = NewRegularAnyMove(result.BestMove)
	}

	next, err := e.pos.MakeMove(m)
	if err != nil {
		return AnyMove{}, err
	}
	e.pos = next
	e.hist.Push(uint64(e.pos.Hash()))
	return m, nil
}
