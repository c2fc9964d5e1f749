package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

func TestPutAndProbeRoundTrip(t *testing.T) {
	tt := New("test", 1)
	key := position.Key(12345)
	mov := RegularMove{Piece: MakeColoredPiece(Red, Wazir), From: MakeSquare("d4"), To: MakeSquare("d5")}
	tt.Put(key, mov, Eval(42), 3, Exact)

	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, mov, e.Move)
	assert.Equal(t, Eval(42), e.Score)
	assert.Equal(t, int8(3), e.Depth)
	assert.Equal(t, Exact, e.Kind)
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := New("test", 1)
	assert.Nil(t, tt.Probe(position.Key(999)))
}

func TestZeroSizeTableNeverStores(t *testing.T) {
	tt := New("test", 0)
	tt.Put(position.Key(1), RegularMove{}, Eval(0), 1, Exact)
	assert.Nil(t, tt.Probe(position.Key(1)))
}

func TestPutDistinctBucketKeysAllProbeable(t *testing.T) {
	tt := New("test", 1)
	// Put several distinct keys that all land in different buckets with a
	// table this size; check they're all probeable.
	for i := 0; i < 10; i++ {
		key := position.Key(i * 7919)
		tt.Put(key, RegularMove{}, Eval(int32(i)), int8(i), Exact)
	}
	found := 0
	for i := 0; i < 10; i++ {
		if tt.Probe(position.Key(i*7919)) != nil {
			found++
		}
	}
	assert.Equal(t, 10, found)
}

func TestNewEpochWrapsPast255(t *testing.T) {
	tt := New("test", 1)
	tt.epoch = 255
	tt.NewEpoch()
	assert.Equal(t, uint8(1), tt.epoch)
}

func TestPVTablePutAndGet(t *testing.T) {
	pv := NewPVTable(1)
	key := position.Key(555)
	moves := []RegularMove{
		{Piece: MakeColoredPiece(Red, Wazir), From: MakeSquare("d4"), To: MakeSquare("d5")},
		{Piece: MakeColoredPiece(Blue, Ferz), From: MakeSquare("e5"), To: MakeSquare("d4"), HasCapture: true, Captured: Wazir},
	}
	pv.Put(key, moves, 5)
	got := pv.Get(key)
	assert.Equal(t, moves, got)
}

func TestPVTableTruncatesToMaxLength(t *testing.T) {
	pv := NewPVTable(1)
	key := position.Key(1)
	moves := make([]RegularMove, MaxPVLength+20)
	pv.Put(key, moves, 1)
	got := pv.Get(key)
	assert.Equal(t, MaxPVLength, len(got))
}
