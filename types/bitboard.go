package types

import (
	"math/bits"
	"strings"
)

// Bitboard packs one bit per square, bit i set means square i is occupied
// (or otherwise marked, depending on context).
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// SquareBb is the singleton bitboard for sq.
func SquareBb(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Push sets sq's bit.
func (b Bitboard) Push(sq Square) Bitboard { return b | SquareBb(sq) }

// Pop clears sq's bit.
func (b Bitboard) Pop(sq Square) Bitboard { return b &^ SquareBb(sq) }

// Has reports whether sq's bit is set.
func (b Bitboard) Has(sq Square) bool { return b&SquareBb(sq) != 0 }

// And is bitwise intersection.
func (b Bitboard) And(o Bitboard) Bitboard { return b & o }

// Or is bitwise union.
func (b Bitboard) Or(o Bitboard) Bitboard { return b | o }

// Not is bitwise complement (restricted to 64 bits).
func (b Bitboard) Not() Bitboard { return ^b }

// AndNot is set difference: squares in b that are not in o.
func (b Bitboard) AndNot(o Bitboard) Bitboard { return b &^ o }

// IsEmpty reports whether no bits are set.
func (b Bitboard) IsEmpty() bool { return b == BbZero }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// Lsb returns the lowest-indexed set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the lowest-indexed set square and clears it from *b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b = b.Pop(sq)
	}
	return sq
}

// String renders the bitboard as an 8x8 grid, rank 8 on top, for debug
// logging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := int(RankLength) - 1; r >= 0; r-- {
		for f := File(0); f < FileLength; f++ {
			sq := SquareOf(f, Rank(r))
			if b.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
