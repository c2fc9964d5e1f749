package features

import (
	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// WPS is the Wazir-Piece-Square feature encoder: every other piece's
// square and reserve count, expressed relative to color's own Wazir
// square. The layout constants and the two board/captured index
// formulas are ported from original_source/src/wps_features.rs; that
// file's Features impl was left commented out ("not yet wired up"), so
// the All/DiffSetup/DiffRegular enumeration logic below is built fresh,
// following the same added/removed shape as PS.
//
// Because every index is relative to color's own Wazir square, a move of
// that Wazir invalidates the entire accumulator at once: DiffSetup and
// DiffRegular report ok=false whenever that happens, and the caller must
// rebuild via All instead (spec.md §4.3's discontinuity rule).
type WPS struct{}

const (
	// wpsCapturedOffset is the start of the captured-piece index block
	// within one Wazir-square bucket: PieceKindLength kinds, each
	// present from both this accumulator's own side (non-Wazir only)
	// and the opponent's side (all kinds, including their Wazir), minus
	// the slot shared between color's own absent-by-construction Wazir
	// board feature and the opponent's Alfil board feature at index 0.
	wpsCapturedOffset = (2*int(PieceKindLength) - 1) * SqLength

	// wpsCountPerWazir is the per-bucket width: the board-feature block,
	// plus two captured-index ranges (color's own reserve, then the
	// opponent's), each NumCapturedIndexes wide.
	wpsCountPerWazir = wpsCapturedOffset + 2*NumCapturedIndexes
)

// boardFeature indexes a piece at square relative to the bucket's Wazir,
// other selecting whether the piece belongs to the opponent rather than
// the bucket's own color.
func (WPS) boardFeature(wazirIndex int, other bool, pk PieceKind, sq Square) int {
	block := int(pk)
	if other {
		block += int(PieceKindLength) - 1
	}
	return wazirIndex*wpsCountPerWazir + block*SqLength + int(sq)
}

func (WPS) capturedFeature(wazirIndex int, other bool, pk PieceKind, index int) int {
	offset := wpsCapturedOffset
	if other {
		offset += NumCapturedIndexes
	}
	return wazirIndex*wpsCountPerWazir + offset + capturedIndex(pk, index)
}

// Count is the WPS index space: one wpsCountPerWazir-wide bucket per
// normalized Wazir square.
func (WPS) Count() int {
	return NormalizedSquareCount * wpsCountPerWazir
}

// bucket resolves color's own Wazir square to its normalizing symmetry
// and dense bucket index, or ok=false if color has no Wazir on the board
// yet (during its own setup stage).
func bucket(p position.Position, color Color) (sym Symmetry, wazirIndex int, ok bool) {
	sq := p.WazirSquare(color)
	if sq == SqNone {
		return 0, 0, false
	}
	return NormalizingSymmetry(sq), NormalizedIndex(sq), true
}

// All enumerates every WPS feature active in p for color: color's own
// non-Wazir pieces, the opponent's pieces (all kinds), and a
// thermometer-coded reserve count for each side's non-Wazir kinds, all
// transformed into the Wazir's normalizing orientation.
func (w WPS) All(p position.Position, color Color) []int {
	sym, wazirIndex, ok := bucket(p, color)
	if !ok {
		return nil
	}
	var out []int
	for pk := PieceKind(0); pk < Wazir; pk++ {
		bb := p.PieceBb(MakeColoredPiece(color, pk))
		for !bb.IsEmpty() {
			sq := bb.PopLsb()
			out = append(out, w.boardFeature(wazirIndex, false, pk, sym.Apply(sq)))
		}
	}
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		bb := p.PieceBb(MakeColoredPiece(color.Opposite(), pk))
		for !bb.IsEmpty() {
			sq := bb.PopLsb()
			out = append(out, w.boardFeature(wazirIndex, true, pk, sym.Apply(sq)))
		}
	}
	for pk := PieceKind(0); pk < Wazir; pk++ {
		n := p.NumCaptured(MakeColoredPiece(color, pk))
		for i := 0; i < n; i++ {
			out = append(out, w.capturedFeature(wazirIndex, false, pk, i))
		}
		n = p.NumCaptured(MakeColoredPiece(color.Opposite(), pk))
		for i := 0; i < n; i++ {
			out = append(out, w.capturedFeature(wazirIndex, true, pk, i))
		}
	}
	return out
}

// DiffSetup reports an incremental update when the opponent completes
// setup after color's own Wazir is already on the board: every placed
// opponent piece is added, relative to color's current Wazir bucket.
// color's own setup move always declines (its Wazir is only just being
// placed).
func (w WPS) DiffSetup(mov SetupMove, newPosition position.Position, color Color) (added, removed []int, ok bool) {
	if mov.Color == color {
		return nil, nil, false
	}
	sym, wazirIndex, ok := bucket(newPosition, color)
	if !ok {
		return nil, nil, false
	}
	added = make([]int, 0, SetupSize)
	for i := 0; i < SetupSize; i++ {
		added = append(added, w.boardFeature(wazirIndex, true, mov.Pieces[i], sym.Apply(mov.Square(i))))
	}
	return added, nil, true
}

// DiffRegular reports an incremental update for a regular move, or
// ok=false when the move moves color's own Wazir (the bucket itself
// changes) or ends the game by capturing a Wazir.
func (w WPS) DiffRegular(mov RegularMove, newPosition position.Position, color Color) (added, removed []int, ok bool) {
	if mov.HasCapture && mov.Captured == Wazir {
		return nil, nil, false
	}
	mover := mov.Piece.ColorOf()
	if mover == color && mov.Piece.KindOf() == Wazir {
		return nil, nil, false
	}
	sym, wazirIndex, ok := bucket(newPosition, color)
	if !ok {
		return nil, nil, false
	}
	pk := mov.Piece.KindOf()
	own := mover == color

	if mov.IsDrop() {
		removed = append(removed, w.capturedFeature(wazirIndex, !own, pk, newPosition.NumCaptured(mov.Piece)))
	} else {
		removed = append(removed, w.boardFeature(wazirIndex, !own, pk, sym.Apply(mov.From)))
	}
	added = append(added, w.boardFeature(wazirIndex, !own, pk, sym.Apply(mov.To)))

	if mov.HasCapture {
		if own {
			// mov.Captured was the opponent's board piece at mov.To; it
			// now joins color's own reserve.
			removed = append(removed, w.boardFeature(wazirIndex, true, mov.Captured, sym.Apply(mov.To)))
			newCount := newPosition.NumCaptured(MakeColoredPiece(color, mov.Captured))
			added = append(added, w.capturedFeature(wazirIndex, false, mov.Captured, newCount-1))
		} else {
			// mov.Captured was color's own board piece at mov.To; it now
			// joins the opponent's reserve.
			removed = append(removed, w.boardFeature(wazirIndex, false, mov.Captured, sym.Apply(mov.To)))
			newCount := newPosition.NumCaptured(MakeColoredPiece(mover, mov.Captured))
			added = append(added, w.capturedFeature(wazirIndex, true, mov.Captured, newCount-1))
		}
	}
	return added, removed, true
}
