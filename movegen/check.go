package movegen

import (
	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// AttackedBy reports whether any of color's pieces can jump directly onto
// sq (spec.md §4.2).
func AttackedBy(p position.Position, sq Square, color Color) bool {
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		attackers := p.PieceBb(MakeColoredPiece(color, pk))
		if attackers.IsEmpty() {
			continue
		}
		// The move relation is symmetric for every piece kind here (every
		// jump vector is paired with its negation), so "does some square
		// in attackers jump onto sq" equals "does sq's move-mask for pk
		// intersect attackers".
		if MoveBitboard(pk, sq).And(attackers).PopCount() > 0 {
			return true
		}
	}
	return false
}

// InCheck reports whether color's Wazir is currently attacked by the
// opposing side. "In check" means the side's Wazir square is attacked by
// at least one enemy piece (spec.md §4.2).
func InCheck(p position.Position, color Color) bool {
	wazirSq := p.WazirSquare(color)
	if wazirSq == SqNone {
		return false
	}
	return AttackedBy(p, wazirSq, color.Opposite())
}

// WazirCaptures appends every move in p available to color that captures
// the opposing Wazir directly, i.e. the subset of Captures() landing on
// the enemy Wazir square.
func WazirCaptures(p position.Position, color Color, moves *RegularMoveList) {
	enemyWazirSq := p.WazirSquare(color.Opposite())
	if enemyWazirSq == SqNone {
		return
	}
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		cp := MakeColoredPiece(color, pk)
		fromBb := p.PieceBb(cp)
		for from := Square(0); from < SqLength; from++ {
			if fromBb.Has(from) && CanJump(pk, from, enemyWazirSq) {
				moves.PushBack(RegularMove{
					Piece: cp, From: from, Captured: Wazir, HasCapture: true, To: enemyWazirSq,
				})
			}
		}
	}
}

// CheckEvasionCaptures appends every capture available to color that
// removes the attacker(s) of color's own Wazir, when color is in check
// from exactly one square (spec.md §4.2). If color is not in check, or is
// attacked from more than one square (no single capture evades), it
// appends nothing.
func CheckEvasionCaptures(p position.Position, color Color, moves *RegularMoveList) {
	wazirSq := p.WazirSquare(color)
	if wazirSq == SqNone {
		return
	}
	attacker, ok := soleAttacker(p, wazirSq, color.Opposite())
	if !ok {
		return
	}
	attackerKind := p.Square(attacker).KindOf()
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		cp := MakeColoredPiece(color, pk)
		fromBb := p.PieceBb(cp)
		for from := Square(0); from < SqLength; from++ {
			if fromBb.Has(from) && CanJump(pk, from, attacker) {
				moves.PushBack(RegularMove{
					Piece: cp, From: from, Captured: attackerKind, HasCapture: true, To: attacker,
				})
			}
		}
	}
}

// CheckEvasionJumps appends every non-capture jump of color's own Wazir
// to a square not attacked by the opponent, when color is in check
// (spec.md §4.2). Since every piece here jumps rather than slides, moving
// any other piece out of the way never blocks an attack, so evading by
// jump is only ever the Wazir moving itself to safety.
func CheckEvasionJumps(p position.Position, color Color, moves *RegularMoveList) {
	wazirSq := p.WazirSquare(color)
	if wazirSq == SqNone || !InCheck(p, color) {
		return
	}
	empty := p.EmptySquares()
	dests := MoveBitboard(Wazir, wazirSq).And(empty)
	for to := Square(0); to < SqLength; to++ {
		if !dests.Has(to) {
			continue
		}
		if !AttackedBy(p, to, color.Opposite()) {
			moves.PushBack(RegularMove{Piece: MakeColoredPiece(color, Wazir), From: wazirSq, To: to})
		}
	}
}

// soleAttacker returns the unique enemy square attacking sq, and true,
// when sq is attacked by exactly one enemy piece; otherwise
// (SqNone, false).
func soleAttacker(p position.Position, sq Square, enemy Color) (Square, bool) {
	var found Square = SqNone
	count := 0
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		attackers := p.PieceBb(MakeColoredPiece(enemy, pk))
		candidates := MoveBitboard(pk, sq).And(attackers)
		for from := Square(0); from < SqLength; from++ {
			if candidates.Has(from) {
				found = from
				count++
			}
		}
	}
	if count == 1 {
		return found, true
	}
	return SqNone, false
}
