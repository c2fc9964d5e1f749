// Package features turns a Position into the sparse integer feature
// vectors consumed by the evaluator package, grounded on the PS encoder
// in original_source/extra/src/ps_features.rs and the shared offset-table
// machinery in original_source/src/features.rs (that file's own
// PieceSquareFeatures impl is a stub -- "TODO: Implement" -- so the real
// logic is ported from the extra/ version instead).
package features

import (
	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// Features is the evaluator's view of a feature encoding: a fixed-size
// index space, a full enumeration for a from-scratch accumulator build,
// and an incremental update for a single move. Diff may decline (ok
// false) when the move is too disruptive to patch incrementally, asking
// the caller to fall back to All.
type Features interface {
	// Count is the size of the feature index space.
	Count() int

	// All returns every active feature index for color's accumulator in
	// position.
	All(p position.Position, color Color) []int

	// DiffSetup returns the features added and removed by mov, observed
	// in newPosition (the position just after mov), for color's
	// accumulator.
	DiffSetup(mov SetupMove, newPosition position.Position, color Color) (added, removed []int, ok bool)

	// DiffRegular is DiffSetup's regular-move counterpart.
	DiffRegular(mov RegularMove, newPosition position.Position, color Color) (added, removed []int, ok bool)
}

// NumCapturedIndexes is the width of the captured-piece index space, not
// counting Wazirs (a captured Wazir ends the game, so it is never held in
// reserve).
const NumCapturedIndexes = int(ColorLength) * (SetupSize - 1)

// capturedOffsetTable[pk] is the cumulative width, in captured-feature
// slots, of all piece kinds before pk. Each kind reserves
// ColorLength*InitialCount(pk) slots: generous headroom, since a capture
// recolors the captured piece and a later recapture can send the same
// physical piece back and forth between reserves, so a single side's
// count for one kind can in principle approach 2*InitialCount(pk).
var capturedOffsetTable [PieceKindLength]int

func init() {
	sum := 0
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		capturedOffsetTable[pk] = sum
		sum += int(ColorLength) * pk.InitialCount()
	}
	if capturedOffsetTable[Wazir] != NumCapturedIndexes {
		panic("features: capturedOffsetTable does not match NumCapturedIndexes")
	}
}

// capturedIndex is the dense feature index for the index-th captured
// piece of kind pk held in some side's reserve.
func capturedIndex(pk PieceKind, index int) int {
	return capturedOffsetTable[pk] + index
}
