package types

import (
	"strings"

	"github.com/gammazero/deque"
)

// RegularMoveList is a bounded list of regular moves backed by a ring
// buffer (push/pop at both ends without reallocation on the hot path),
// used for the move generator's output streams, which the search orders
// and iterates (spec.md §9 "small-vector container").
type RegularMoveList struct {
	deque.Deque[RegularMove]
}

// NewRegularMoveList creates an empty move list.
func NewRegularMoveList() *RegularMoveList {
	return &RegularMoveList{}
}

func (ml *RegularMoveList) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < ml.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ml.At(i).String())
	}
	sb.WriteString("]")
	return sb.String()
}

// ToSlice copies the list's contents into a plain slice, in order.
func (ml *RegularMoveList) ToSlice() []RegularMove {
	out := make([]RegularMove, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		out[i] = ml.At(i)
	}
	return out
}
