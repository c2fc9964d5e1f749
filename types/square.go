package types

import (
	"github.com/tczajka/wazir-drop-sub000/assert"
)

// Square is one of the 64 squares, indexed 0..64 row-major (a1=0, h1=7,
// a2=8, ... h8=63). SqNone (64) represents "no square".
type Square uint8

// File is a column a..h, 0-based.
type File uint8

// Rank is a row 1..8, 0-based.
type Rank uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileLength
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankLength
)

const (
	SqLength Square = 64
	SqNone   Square = 64
)

// IsValid reports whether f is a..h.
func (f File) IsValid() bool { return f < FileLength }

// IsValid reports whether r is 1..8.
func (r Rank) IsValid() bool { return r < RankLength }

// String renders a file as its letter.
func (f File) String() string { return string(rune('a' + f)) }

// String renders a rank as its digit.
func (r Rank) String() string { return string(rune('1' + r)) }

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool { return sq < SqLength }

// FileOf returns the file of sq.
func (sq Square) FileOf() File { return File(sq % 8) }

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank { return Rank(sq / 8) }

// SquareOf builds a square from a file and rank, or SqNone if either is
// out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)*8 + int(f))
}

// MakeSquare parses the printed form "<file><rank>" (e.g. "e5"). Returns
// SqNone for anything that does not parse to a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	return SquareOf(f, r)
}

// String renders the square's printed form "<file><rank>", or "-" if
// invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square reached by stepping d from sq, or SqNone if that
// would leave the board. Bounds-checking is done via the file/rank delta
// rather than raw index arithmetic so wrap-around at the board edges is
// caught.
func (sq Square) To(d Direction) Square {
	if assert.DEBUG {
		assert.Assert(sq.IsValid(), "To() called on invalid square")
	}
	f := int(sq.FileOf()) + int(d.Dx)
	r := int(sq.RankOf()) + int(d.Dy)
	if f < 0 || f >= int(FileLength) || r < 0 || r >= int(RankLength) {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}
