package types

// Move vectors for each piece kind (spec.md §3): all moves are jumps, so
// legality depends only on origin, destination and the destination's
// occupant. Grounded on the original engine's Piece::move_vectors table,
// which the spec.md Open Question §9 names as canonical.
var moveVectors = [PieceKindLength][]Direction{
	Alfil: {
		{-2, -2}, {2, -2}, {-2, 2}, {2, 2},
	},
	Dabbaba: {
		{0, -2}, {-2, 0}, {2, 0}, {0, 2},
	},
	Ferz: {
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	},
	Knight: {
		{-1, -2}, {1, -2}, {-2, -1}, {2, -1},
		{-2, 1}, {2, 1}, {-1, 2}, {1, 2},
	},
	Wazir: {
		{0, -1}, {-1, 0}, {1, 0}, {0, 1},
	},
}

// MoveVectors returns the fixed set of offset move-vectors for pk.
func MoveVectors(pk PieceKind) []Direction {
	return moveVectors[pk]
}

// moveBitboardTable[pk][sq] is the precomputed set of destination squares
// reachable by one jump of pk from sq.
var moveBitboardTable [PieceKindLength][SqLength]Bitboard

func init() {
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		for sq := Square(0); sq < SqLength; sq++ {
			var bb Bitboard
			for _, d := range moveVectors[pk] {
				if to := sq.To(d); to != SqNone {
					bb = bb.Push(to)
				}
			}
			moveBitboardTable[pk][sq] = bb
		}
	}
}

// MoveBitboard returns the bitboard of squares pk can jump to from sq.
func MoveBitboard(pk PieceKind, sq Square) Bitboard {
	return moveBitboardTable[pk][sq]
}

// CanJump reports whether pk can jump directly from `from` to `to`.
func CanJump(pk PieceKind, from, to Square) bool {
	return moveBitboardTable[pk][from].Has(to)
}
