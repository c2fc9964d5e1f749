package search

import (
	"sort"

	. "github.com/tczajka/wazir-drop-sub000/types"
)

// pieceOrderValue is a plain MVV/LVA ranking table, independent of
// whatever weights the configured evaluator actually carries: move
// ordering only needs a rough "which captures are probably good" signal,
// not a trained value. Grounded on FrankyGo's goodCapture heuristic
// (internal/search/alphabeta.go), simplified to the victim/attacker value
// difference chess engines have used for MVV/LVA since long before SEE.
var pieceOrderValue = [PieceKindLength]int{
	Alfil:   3,
	Dabbaba: 5,
	Ferz:    2,
	Knight:  3,
	Wazir:   100,
}

// orderMoves sorts moves for search: the stored PV move first, then the
// transposition-table move, then captures by MVV/LVA (highest-value
// victim, lowest-value attacker first), then the remaining pseudojumps
// and drops in generator order (spec.md §4.5: "principal-variation move
// first, then transposition-table move, then captures by MVV/LVA, then
// remainder").
func orderMoves(moves RegularMoveList, pvMove RegularMove, hasPV bool, ttMove RegularMove, hasTT bool) []RegularMove {
	slice := moves.ToSlice()
	tier := func(m RegularMove) (int, int) {
		switch {
		case hasPV && m == pvMove:
			return 3, 0
		case hasTT && m == ttMove:
			return 2, 0
		case m.HasCapture:
			return 1, pieceOrderValue[m.Captured]*16 - pieceOrderValue[m.Piece.KindOf()]
		default:
			return 0, 0
		}
	}
	sort.SliceStable(slice, func(i, j int) bool {
		ti, vi := tier(slice[i])
		tj, vj := tier(slice[j])
		if ti != tj {
			return ti > tj
		}
		return vi > vj
	})
	return slice
}
