package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSquareAndString(t *testing.T) {
	tests := []struct {
		s  string
		sq Square
	}{
		{"a1", SquareOf(FileA, Rank1)},
		{"h8", SquareOf(FileH, Rank8)},
		{"e5", SquareOf(FileE, Rank5)},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got := MakeSquare(tt.s)
			assert.Equal(t, tt.sq, got)
			assert.Equal(t, tt.s, got.String())
		})
	}
}

func TestSquare_To(t *testing.T) {
	d4 := MakeSquare("d4")
	assert.Equal(t, MakeSquare("d5"), d4.To(North))
	assert.Equal(t, MakeSquare("d3"), d4.To(South))
	assert.Equal(t, MakeSquare("e4"), d4.To(East))
	assert.Equal(t, MakeSquare("c4"), d4.To(West))

	h4 := MakeSquare("h4")
	assert.Equal(t, SqNone, h4.To(East))
	a4 := MakeSquare("a4")
	assert.Equal(t, SqNone, a4.To(West))
}

func TestSquareInvalid(t *testing.T) {
	assert.Equal(t, "-", SqNone.String())
	assert.False(t, SqNone.IsValid())
}
