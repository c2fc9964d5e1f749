package movegen

import (
	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// Captures appends to moves every capture available to color in p: for
// each destination occupied by an enemy piece, for each friendly piece
// whose move-mask covers that destination (spec.md §4.2). Destinations
// are visited in ascending square order; within a destination, attackers
// are visited by ascending piece kind, then ascending origin square.
func Captures(p position.Position, color Color, moves *RegularMoveList) {
	enemy := color.Opposite()
	enemyBb := p.OccupiedBy(enemy)
	for to := Square(0); to < SqLength; to++ {
		if !enemyBb.Has(to) {
			continue
		}
		captured := p.Square(to)
		for pk := PieceKind(0); pk < PieceKindLength; pk++ {
			cp := MakeColoredPiece(color, pk)
			fromBb := p.PieceBb(cp)
			for from := Square(0); from < SqLength; from++ {
				if !fromBb.Has(from) {
					continue
				}
				if CanJump(pk, from, to) {
					moves.PushBack(RegularMove{
						Piece: cp, From: from, Captured: captured.KindOf(), HasCapture: true, To: to,
					})
				}
			}
		}
	}
}

// Pseudojumps appends every non-capture jump available to color: origin
// holds a friendly piece, destination is empty and in that piece's
// move-mask (spec.md §4.2).
func Pseudojumps(p position.Position, color Color, moves *RegularMoveList) {
	empty := p.EmptySquares()
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		cp := MakeColoredPiece(color, pk)
		fromBb := p.PieceBb(cp)
		for from := Square(0); from < SqLength; from++ {
			if !fromBb.Has(from) {
				continue
			}
			dests := MoveBitboard(pk, from).And(empty)
			for to := Square(0); to < SqLength; to++ {
				if dests.Has(to) {
					moves.PushBack(RegularMove{Piece: cp, From: from, To: to})
				}
			}
		}
	}
}

// Drops appends, for each kind with a non-zero reserve and each empty
// square, a drop of that kind onto that square (spec.md §4.2).
func Drops(p position.Position, color Color, moves *RegularMoveList) {
	empty := p.EmptySquares()
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		cp := MakeColoredPiece(color, pk)
		if p.NumCaptured(cp) == 0 {
			continue
		}
		for to := Square(0); to < SqLength; to++ {
			if empty.Has(to) {
				moves.PushBack(RegularMove{Piece: cp, From: SqNone, To: to})
			}
		}
	}
}

// RegularPseudomoves returns captures, then pseudojumps, then drops, the
// full pseudomove stream for color in p (spec.md §4.2). These may leave
// color's own Wazir attacked; only the resulting position's evaluation,
// not legality filtering, accounts for that (spec.md §4.1).
func RegularPseudomoves(p position.Position, color Color) RegularMoveList {
	moves := NewRegularMoveList()
	Captures(p, color, moves)
	Pseudojumps(p, color, moves)
	Drops(p, color, moves)
	return *moves
}
