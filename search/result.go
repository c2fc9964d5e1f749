package search

import (
	"time"

	. "github.com/tczajka/wazir-drop-sub000/types"
)

// Result is the outcome of one Search call: the best regular move found at
// the root, its score from the root's side to move, the depth completed,
// node count and the reconstructed principal variation (spec.md §4.5).
type Result struct {
	BestMove   RegularMove
	Score      Score
	Depth      int
	Nodes      int64
	PV         []RegularMove
	SearchTime time.Duration
}

// TopVariation is one entry of SearchTopVariations' ranked move list: a
// root move, its score, and the line that follows it.
type TopVariation struct {
	Move  RegularMove
	Score Score
	PV    []RegularMove
}
