// Package evaluator implements the search's leaf-position scoring: a
// capability interface over a per-colour accumulator type, plus the two
// concrete evaluators spec.md §4.4 names (linear, NNUE) and the
// incremental-update wrapper (EvaluatedPosition) that keeps accumulators
// in sync with a Position across a sequence of moves. No FrankyGo
// analogue exists for any of this (FrankyGo's evaluator/evaluator.go is
// a hand-written positional evaluator, not a trained accumulator); it is
// grounded instead on original_source/extra/src/{linear_eval,nnue,
// vector}.rs, reshaped from Rust's associated-type trait into a Go
// generic interface (spec.md §9 "polymorphic evaluator without
// inheritance" asks for a capability table, not virtual dispatch).
package evaluator

import (
	"github.com/tczajka/wazir-drop-sub000/features"
	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// Evaluator is a scoring strategy parameterized by its accumulator type
// A: a per-colour running summary of the active features, updated
// incrementally as moves are made.
type Evaluator[A any] interface {
	// Features is the feature encoding this evaluator's weights were
	// trained against.
	Features() features.Features

	// NewAccumulator returns a fresh, feature-less accumulator (e.g. a
	// bias-only value).
	NewAccumulator() A

	// AddFeature and RemoveFeature fold a single feature index into acc.
	AddFeature(acc *A, feature int)
	RemoveFeature(acc *A, feature int)

	// Evaluate scores the position from toMove's perspective given both
	// colours' accumulators.
	Evaluate(accs [2]A, toMove Color) Score

	// Scale is the divisor that maps Evaluate's result to a
	// win-probability logit for reporting.
	Scale() float32
}

// EvaluatedPosition pairs a Position with the accumulator pair an
// Evaluator needs to score it, keeping both in sync as moves are made.
type EvaluatedPosition[A any] struct {
	pos  position.Position
	eval Evaluator[A]
	accs [2]A
}

// NewEvaluatedPosition builds the initial accumulator pair for p from
// scratch via Features.All.
func NewEvaluatedPosition[A any](p position.Position, eval Evaluator[A]) *EvaluatedPosition[A] {
	ep := &EvaluatedPosition[A]{pos: p, eval: eval}
	feats := eval.Features()
	for _, c := range [2]Color{Red, Blue} {
		ep.accs[c] = eval.NewAccumulator()
		for _, f := range feats.All(p, c) {
			eval.AddFeature(&ep.accs[c], f)
		}
	}
	return ep
}

// Position returns the wrapped position.
func (ep *EvaluatedPosition[A]) Position() position.Position { return ep.pos }

// Evaluate scores the wrapped position from its own side to move.
func (ep *EvaluatedPosition[A]) Evaluate() Score {
	return ep.eval.Evaluate(ep.accs, ep.pos.SideToMove())
}

// MakeMove computes the successor EvaluatedPosition: the new Position,
// plus each colour's accumulator patched via Features.Diff*, falling
// back to a full Features.All rebuild whenever the diff declines
// (spec.md §4.4's "evaluate(incremental) == evaluate(fresh)" guarantee).
func (ep *EvaluatedPosition[A]) MakeMove(m AnyMove) (*EvaluatedPosition[A], error) {
	newPos, err := ep.pos.MakeMove(m)
	if err != nil {
		return nil, err
	}
	feats := ep.eval.Features()
	next := &EvaluatedPosition[A]{pos: newPos, eval: ep.eval, accs: ep.accs}
	for _, c := range [2]Color{Red, Blue} {
		var added, removed []int
		var ok bool
		if m.IsSetup() {
			added, removed, ok = feats.DiffSetup(m.Setup(), newPos, c)
		} else {
			added, removed, ok = feats.DiffRegular(m.Regular(), newPos, c)
		}
		if !ok {
			next.accs[c] = ep.eval.NewAccumulator()
			for _, f := range feats.All(newPos, c) {
				ep.eval.AddFeature(&next.accs[c], f)
			}
			continue
		}
		for _, f := range removed {
			ep.eval.RemoveFeature(&next.accs[c], f)
		}
		for _, f := range added {
			ep.eval.AddFeature(&next.accs[c], f)
		}
	}
	return next, nil
}
