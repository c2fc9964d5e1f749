package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPop(t *testing.T) {
	var b Bitboard
	sq := MakeSquare("d4")
	b = b.Push(sq)
	assert.True(t, b.Has(sq))
	assert.Equal(t, 1, b.PopCount())
	b = b.Pop(sq)
	assert.True(t, b.IsEmpty())
}

func TestBitboardLsbPopLsb(t *testing.T) {
	b := SquareBb(MakeSquare("a1")).Or(SquareBb(MakeSquare("h8")))
	assert.Equal(t, MakeSquare("a1"), b.Lsb())
	first := b.PopLsb()
	assert.Equal(t, MakeSquare("a1"), first)
	assert.Equal(t, 1, b.PopCount())
}

func TestBitboardSetOps(t *testing.T) {
	a := SquareBb(MakeSquare("a1")).Or(SquareBb(MakeSquare("b1")))
	b := SquareBb(MakeSquare("b1")).Or(SquareBb(MakeSquare("c1")))
	assert.Equal(t, SquareBb(MakeSquare("b1")), a.And(b))
	assert.Equal(t, SquareBb(MakeSquare("a1")), a.AndNot(b))
}
