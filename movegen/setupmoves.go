// Package movegen enumerates pseudomoves and setup moves over a
// position.Position, and provides the check-evasion and attack-detection
// helpers search/evaluation build on. Grounded on the original engine's
// movegen.rs streams, expressed as Go iterators in FrankyGo's
// MoveGenerator style (a stateful generator object with a Next-like
// method, rather than Rust's lazy Iterator trait).
package movegen

import (
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// setupOrder lists the 16 initial piece kinds in non-decreasing order:
// this is the starting point for lexicographic next-permutation
// enumeration and also IS the multiset setup_moves must permute.
var setupOrder = func() [SetupSize]PieceKind {
	var order [SetupSize]PieceKind
	i := 0
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		for n := 0; n < pk.InitialCount(); n++ {
			order[i] = pk
			i++
		}
	}
	return order
}()

// SetupMoveIterator lexicographically enumerates every distinct ordering
// of the 16-piece initial multiset, i.e. every SetupMove for a fixed
// colour (spec.md §4.2, §8): 16!/(8!4!2!1!1!) = 10_810_800 tuples, all
// distinct, in ascending order by PieceKind value.
type SetupMoveIterator struct {
	color   Color
	current [SetupSize]PieceKind
	done    bool
}

// NewSetupMoveIterator starts enumeration at the lexicographically first
// tuple (8 Alfil, then 4 Dabbaba, then 2 Ferz, 1 Knight, 1 Wazir).
func NewSetupMoveIterator(color Color) *SetupMoveIterator {
	it := &SetupMoveIterator{color: color, current: setupOrder}
	return it
}

// Next returns the next SetupMove in lexicographic order, or
// (SetupMove{}, false) once every permutation has been produced.
func (it *SetupMoveIterator) Next() (SetupMove, bool) {
	if it.done {
		return SetupMove{}, false
	}
	result := SetupMove{Color: it.color, Pieces: it.current}
	it.done = !nextPermutation(&it.current)
	return result, true
}

// nextPermutation rearranges a into the lexicographically next
// permutation of its elements in place, the standard
// std::next_permutation algorithm. Returns false (leaving a sorted
// ascending, the last permutation wrapped to the first) when a was
// already the final permutation.
func nextPermutation(a *[SetupSize]PieceKind) bool {
	n := len(a)
	i := n - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		reverse(a, 0, n-1)
		return false
	}
	j := n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	reverse(a, i+1, n-1)
	return true
}

func reverse(a *[SetupSize]PieceKind, i, j int) {
	for i < j {
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}

// CountSetupMoves exhausts a fresh iterator and reports how many distinct
// tuples it produced, used to check the 10_810_800 cardinality property
// (spec.md §8). Expensive; intended for tests, not hot paths.
func CountSetupMoves(color Color) int {
	it := NewSetupMoveIterator(color)
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		n++
	}
	return n
}
