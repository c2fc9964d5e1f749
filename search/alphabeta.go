package search

import (
	"github.com/tczajka/wazir-drop-sub000/config"
	"github.com/tczajka/wazir-drop-sub000/evaluator"
	"github.com/tczajka/wazir-drop-sub000/history"
	"github.com/tczajka/wazir-drop-sub000/movegen"
	"github.com/tczajka/wazir-drop-sub000/position"
	"github.com/tczajka/wazir-drop-sub000/transpositiontable"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// childScore evaluates the position reached by one move, from the point of
// view of the side that answers it (callers apply Back()): LoseIn(0) if
// the move just captured the opponent's Wazir (position.End), so the
// mover's Back() value is a win at that ply (WinIn(1) for a root move),
// Eval(0) if hist shows the position has occurred
// before (spec.md §4.7: "the search treats a repeated position as
// Eval(0)"), otherwise a normal recursive search. hist.Find must be
// called before the hash is pushed (history.History's own contract), so
// the repetition check happens here rather than inside negamax/qsearch.
func (s *Search[A]) childScore(ep *evaluator.EvaluatedPosition[A], hist *history.History, depth, ply int, alpha, beta Score) Score {
	p := ep.Position()
	if p.Stage() == position.End {
		return LoseIn(0)
	}
	hash := p.Hash()
	if _, found := hist.Find(uint64(hash)); found {
		return ScoreDraw
	}
	hist.Push(uint64(hash))
	defer hist.Pop()
	if depth <= 0 || ply >= config.Settings.Search.MaxSearchDepth*2 {
		return s.qsearch(ep, hist, ply, alpha, beta)
	}
	return s.negamax(ep, hist, depth, ply, alpha, beta)
}

// negamax is the main search: alpha-beta over regular_pseudomoves ordered
// per spec.md §4.5, with transposition-table cutoffs and PV-table move
// ordering, grounded on FrankyGo's internal/search/alphabeta.go `search`
// function, trimmed of PVS/null-move/mate-distance pruning (not asked for
// by spec.md and absent from the original engine's own unfinished
// search.rs).
func (s *Search[A]) negamax(ep *evaluator.EvaluatedPosition[A], hist *history.History, depth, ply int, alpha, beta Score) Score {
	s.nodes++
	if s.shouldStop() {
		return ScoreNA
	}

	p := ep.Position()
	hash := p.Hash()

	if s.tt != nil {
		if e := s.tt.Probe(hash); e != nil && int(e.Depth) >= depth {
			switch e.Kind {
			case transpositiontable.Exact:
				return e.Score
			case transpositiontable.LowerBound:
				if e.Score > alpha {
					alpha = e.Score
				}
			case transpositiontable.UpperBound:
				if e.Score < beta {
					beta = e.Score
				}
			}
			if alpha >= beta {
				return e.Score
			}
		}
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

	moves := movegen.RegularPseudomoves(p, p.SideToMove())
	if moves.Len() == 0 {
		return LoseIn(0)
	}
	ordered := orderMoves(moves, pvMove, hasPV, ttMove, hasTT)

	origAlpha := alpha
	best := ScoreNA
	var bestMove RegularMove
	for _, mov := range ordered {
		ep2, err := ep.MakeMove(NewRegularAnyMove(mov))
		if err != nil {
			continue
		}
		value := s.childScore(ep2, hist, depth-1, ply+1, -beta, -alpha).Back()
		if s.stopFlag {
			return ScoreNA
		}
		if value > best {
			best = value
			bestMove = mov
			if value > alpha {
				alpha = value
				if s.pvTable != nil {
					cont := s.pvTable.Get(ep2.Position().Hash())
					s.pvTable.Put(hash, append([]RegularMove{mov}, cont...), int8(depth))
				}
				if value >= beta {
					break
				}
			}
		}
	}

	if s.tt != nil {
		kind := transpositiontable.Exact
		switch {
		case best <= origAlpha:
			kind = transpositiontable.UpperBound
		case best >= beta:
			kind = transpositiontable.LowerBound
		}
		s.tt.Put(hash, bestMove, best, int8(depth), kind)
	}

	return best
}

// qsearch extends the search through captures and Wazir-captures until
// the position is quiet (spec.md §4.5). When the side to move's own
// Wazir is attacked, every pseudomove is searched rather than captures
// alone (a search extension, matching FrankyGo's qsearch "if in check,
// search all moves" idiom): a side in check that only considers captures
// could miss the one Wazir-saving jump.
func (s *Search[A]) qsearch(ep *evaluator.EvaluatedPosition[A], hist *history.History, ply int, alpha, beta Score) Score {
	s.nodes++
	if s.shouldStop() {
		return ScoreNA
	}
	if ply >= config.Settings.Search.MaxSearchDepth*2 {
		return ep.Evaluate()
	}

	p := ep.Position()
	if !config.Settings.Search.UseQuiescence {
		return ep.Evaluate()
	}

	inCheck := movegen.InCheck(p, p.SideToMove())

	var standPat Score
	if !inCheck {
		standPat = ep.Evaluate()
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	moves := NewRegularMoveList()
	if inCheck {
		*moves = movegen.RegularPseudomoves(p, p.SideToMove())
	} else {
		movegen.Captures(p, p.SideToMove(), moves)
	}

	if moves.Len() == 0 {
		if inCheck {
			return LoseIn(0)
		}
		return standPat
	}

	ordered := orderMoves(*moves, RegularMove{}, false, RegularMove{}, false)
	best := standPat
	if inCheck {
		best = ScoreNA
	}
	searchedAny := false
	for _, mov := range ordered {
		ep2, err := ep.MakeMove(NewRegularAnyMove(mov))
		if err != nil {
			continue
		}
		value := s.childScore(ep2, hist, 0, ply+1, -beta, -alpha).Back()
		if s.stopFlag {
			return ScoreNA
		}
		searchedAny = true
		if value > best {
			best = value
			if value > alpha {
				alpha = value
				if value >= beta {
					return best
				}
			}
		}
	}
	if inCheck && !searchedAny {
		return LoseIn(0)
	}
	return best
}
