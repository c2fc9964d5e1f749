package evaluator

import (
	"fmt"

	"github.com/tczajka/wazir-drop-sub000/features"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// LinearEvaluator is a single dot product against a per-feature weight
// table, ported from original_source/extra/src/linear_eval.rs's
// LinearEvaluator<F>. The accumulator is a plain running sum, so A is
// instantiated as int32 rather than a type parameter of LinearEvaluator
// itself.
type LinearEvaluator struct {
	feats          features.Features
	toMoveWeight   int32
	featureWeights []int32
	scale          float32
}

// NewLinearEvaluator builds a LinearEvaluator over feats, panicking if
// featureWeights is not exactly feats.Count() long (the same invariant
// the original asserts at construction).
func NewLinearEvaluator(feats features.Features, toMoveWeight int32, featureWeights []int32, scale float32) *LinearEvaluator {
	if len(featureWeights) != feats.Count() {
		panic(fmt.Sprintf("evaluator: %d feature weights, want %d", len(featureWeights), feats.Count()))
	}
	weights := make([]int32, len(featureWeights))
	copy(weights, featureWeights)
	return &LinearEvaluator{feats: feats, toMoveWeight: toMoveWeight, featureWeights: weights, scale: scale}
}

func (e *LinearEvaluator) Features() features.Features { return e.feats }

func (e *LinearEvaluator) NewAccumulator() int32 { return 0 }

func (e *LinearEvaluator) AddFeature(acc *int32, feature int) {
	*acc += e.featureWeights[feature]
}

func (e *LinearEvaluator) RemoveFeature(acc *int32, feature int) {
	*acc -= e.featureWeights[feature]
}

func (e *LinearEvaluator) Evaluate(accs [2]int32, toMove Color) Score {
	return Eval(accs[toMove] - accs[toMove.Opposite()] + e.toMoveWeight)
}

func (e *LinearEvaluator) Scale() float32 { return e.scale }

// defaultPieceValue is a plain material seed: the untrained default every
// fresh linear evaluator starts from before a trainer overwrites it
// (the trainer itself is an out-of-scope external collaborator, spec.md
// §1). Wazir carries no value: a Wazir is never held in reserve, and its
// own board feature is never a useful signal since its square is
// mandatory rather than chosen.
var defaultPieceValue = [PieceKindLength]int32{
	Alfil:   300,
	Dabbaba: 500,
	Ferz:    150,
	Knight:  350,
	Wazir:   0,
}

// NewDefaultLinearPSEvaluator builds the PS-feature linear evaluator this
// engine ships with when no trained weight file is configured: every
// board-feature and reserve-feature weight for a kind is that kind's
// material value, with no positional term.
func NewDefaultLinearPSEvaluator(toMoveWeight int32, scale float32) *LinearEvaluator {
	ps := features.PS{}
	weights := make([]int32, ps.Count())
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		for sq := 0; sq < NormalizedSquareCount; sq++ {
			weights[ps.BoardFeature(pk, sq)] = defaultPieceValue[pk]
		}
	}
	for pk := PieceKind(0); pk < Wazir; pk++ {
		maxReserve := int(ColorLength) * pk.InitialCount()
		for i := 0; i < maxReserve && ps.CapturedFeature(pk, i) < ps.Count(); i++ {
			weights[ps.CapturedFeature(pk, i)] = defaultPieceValue[pk]
		}
	}
	return NewLinearEvaluator(ps, toMoveWeight, weights, scale)
}
