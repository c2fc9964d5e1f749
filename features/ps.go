package features

import (
	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// PS is the Piece-Square feature encoder: one feature per (piece kind,
// normalized square) plus a thermometer-coded block per non-Wazir kind
// for that colour's own reserve count, grounded on
// original_source/extra/src/ps_features.rs.
type PS struct{}

// psCapturedOffset is the start of the captured-piece index block,
// following the board-feature block (PieceKindLength kinds x
// NormalizedSquareCount squares).
const psCapturedOffset = int(PieceKindLength) * NormalizedSquareCount

func (PS) BoardFeature(pk PieceKind, normalizedSquare int) int {
	return int(pk)*NormalizedSquareCount + normalizedSquare
}

func (ps PS) boardFeatureUnnormalized(pk PieceKind, sq Square) int {
	return ps.BoardFeature(pk, NormalizedIndex(sq))
}

func (PS) CapturedFeature(pk PieceKind, index int) int {
	return psCapturedOffset + capturedIndex(pk, index)
}

// Count is the PS index space: the board-feature block, plus the full
// captured-index range, so that every CapturedFeature index (including
// Knight's two-entry block at the end) is below Count.
func (PS) Count() int {
	return psCapturedOffset + NumCapturedIndexes
}

// All enumerates every PS feature active in p for color: color's own
// pieces by (kind, normalized square), then a thermometer run of 0..n for
// each non-Wazir kind's reserve count.
func (ps PS) All(p position.Position, color Color) []int {
	var out []int
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		bb := p.PieceBb(MakeColoredPiece(color, pk))
		for !bb.IsEmpty() {
			sq := bb.PopLsb()
			out = append(out, ps.boardFeatureUnnormalized(pk, sq))
		}
	}
	for pk := PieceKind(0); pk < Wazir; pk++ {
		offset := ps.CapturedFeature(pk, 0)
		n := p.NumCaptured(MakeColoredPiece(color, pk))
		for i := 0; i < n; i++ {
			out = append(out, offset+i)
		}
	}
	return out
}

// DiffSetup reports the features added by mov: every placed piece, if
// mov places color's own pieces, else nothing (a setup move never
// removes a PS feature, since nothing was ever placed on an empty
// board).
func (ps PS) DiffSetup(mov SetupMove, _ position.Position, color Color) (added, removed []int, ok bool) {
	if mov.Color == color {
		added = make([]int, 0, SetupSize)
		for i := 0; i < SetupSize; i++ {
			added = append(added, ps.boardFeatureUnnormalized(mov.Pieces[i], mov.Square(i)))
		}
	}
	return added, nil, true
}

// DiffRegular reports the features a regular move changes for color's
// accumulator: if color made the move, its source (board square or
// reserve slot) is removed and its destination added, plus a reserve
// feature for a captured non-Wazir piece; if the opponent made the move
// and captured one of color's pieces, that board feature is removed.
func (ps PS) DiffRegular(mov RegularMove, newPosition position.Position, color Color) (added, removed []int, ok bool) {
	if mov.Piece.ColorOf() == color {
		pk := mov.Piece.KindOf()
		if mov.IsDrop() {
			removed = append(removed, ps.CapturedFeature(pk, newPosition.NumCaptured(mov.Piece)))
		} else {
			removed = append(removed, ps.boardFeatureUnnormalized(pk, mov.From))
		}
		added = append(added, ps.boardFeatureUnnormalized(pk, mov.To))
		if mov.HasCapture && mov.Captured != Wazir {
			capturedColored := MakeColoredPiece(color, mov.Captured)
			added = append(added, ps.CapturedFeature(mov.Captured, newPosition.NumCaptured(capturedColored)-1))
		}
	} else if mov.HasCapture {
		removed = append(removed, ps.boardFeatureUnnormalized(mov.Captured, mov.To))
	}
	return added, removed, true
}
