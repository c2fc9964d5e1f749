package position

import (
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// Key is a 64-bit Zobrist hash, used for transposition/PV table lookups
// and repetition detection.
type Key uint64

// maxCapturedCount is one more than the largest possible reserve count for
// any single coloured piece kind, which is twice Alfil's initial count of
// 8 (InitialCount() in piecekind.go), the largest among the five kinds; it
// gives a key to every count from 0 to 16.
const maxCapturedCount = 2*8 + 1

// zobrist holds the random per-feature keys XOR-folded into a Position's
// incremental hash: one per (coloured piece, square), one per
// (coloured piece, captured count), and one toggled every ply for the
// side to move.
type zobrist struct {
	pieces       [int(ColorLength) * int(PieceKindLength)][SqLength]Key
	capturedStep [int(ColorLength) * int(PieceKindLength)][maxCapturedCount]Key // indexed by running count
	nextPlayer   Key
}

var zobristBase zobrist
var zobristInitialized = false

func initZobrist() {
	if zobristInitialized {
		return
	}
	r := newRandom(1070372)
	for cp := ColoredPiece(0); int(cp) < int(ColorLength)*int(PieceKindLength); cp++ {
		for sq := Square(0); sq < SqLength; sq++ {
			zobristBase.pieces[cp][sq] = Key(r.rand64())
		}
		for i := range zobristBase.capturedStep[cp] {
			zobristBase.capturedStep[cp][i] = Key(r.rand64())
		}
	}
	zobristBase.nextPlayer = Key(r.rand64())
	zobristInitialized = true
}

// pieceKey returns the XOR-fold key for placing/removing cp on sq.
func pieceKey(cp ColoredPiece, sq Square) Key {
	return zobristBase.pieces[cp][sq]
}

// capturedCountKey returns the key for cp's reserve holding exactly count
// pieces. Incrementing and decrementing both XOR out the key for the old
// count and XOR in the key for the new count, so the hash depends only on
// the current count, not on the path that reached it.
func capturedCountKey(cp ColoredPiece, count int) Key {
	return zobristBase.capturedStep[cp][count]
}
