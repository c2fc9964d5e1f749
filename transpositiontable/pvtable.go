package transpositiontable

import (
	"math"
	"math/bits"

	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// MaxPVLength caps a stored principal variation (spec.md §4.6).
const MaxPVLength = 100

// pvEntry is one PV-table slot: the best move and its truncated
// continuation found the last time this hash was searched.
type pvEntry struct {
	key   position.Key
	moves []RegularMove
	depth int8
	epoch uint8
}

func (e *pvEntry) isEmpty() bool { return e.moves == nil }

// PVTable shares the TT's bucket/epoch replacement machinery but stores
// a capped move list per entry instead of a single move, used for move
// ordering and for reconstructing SearchResult.pv without a re-search
// (spec.md §4.6).
type PVTable struct {
	data       []pvEntry
	numBuckets uint64
	bucketMask uint64
	epoch      uint8
	name       string
}

// NewPVTable creates a PVTable sized to fit within sizeInMByte.
func NewPVTable(sizeInMByte int) *PVTable {
	t := &PVTable{name: "pv"}
	t.Resize(sizeInMByte)
	return t
}

// Resize reallocates the table, clearing all entries. A PV entry's
// variable-length move slice makes the byte budget approximate: entries
// are sized for an average-length PV rather than the worst case.
func (t *PVTable) Resize(sizeInMByte int) {
	const avgPVEntrySize = 64 // Key + ~8 moves * sizeof(RegularMove) + overhead, approximate
	budget := uint64(sizeInMByte) * mb
	maxEntries := budget / avgPVEntrySize
	maxBuckets := maxEntries / BucketSize
	if maxBuckets == 0 {
		t.numBuckets = 0
	} else {
		t.numBuckets = uint64(1) << (63 - bits.LeadingZeros64(maxBuckets))
	}
	t.bucketMask = 0
	if t.numBuckets > 0 {
		t.bucketMask = t.numBuckets - 1
	}
	t.data = make([]pvEntry, t.numBuckets*BucketSize)
	log.Info(out.Sprintf("%s: size %d MB, %d buckets of %d entries",
		t.name, sizeInMByte, t.numBuckets, BucketSize))
}

// Clear empties every entry.
func (t *PVTable) Clear() {
	for i := range t.data {
		t.data[i] = pvEntry{}
	}
	t.epoch = 0
}

// NewEpoch advances the table's epoch counter, wrapping past
// math.MaxUint8 to 1.
func (t *PVTable) NewEpoch() {
	if t.epoch == math.MaxUint8 {
		t.epoch = 1
	} else {
		t.epoch++
	}
}

func (t *PVTable) bucketIndex(key position.Key) uint64 {
	return uint64(key) & t.bucketMask
}

// Get returns the stored continuation for key, or nil if absent.
func (t *PVTable) Get(key position.Key) []RegularMove {
	if t.numBuckets == 0 {
		return nil
	}
	base := t.bucketIndex(key) * BucketSize
	for i := uint64(0); i < BucketSize; i++ {
		e := &t.data[base+i]
		if !e.isEmpty() && e.key == key {
			e.epoch = t.epoch
			return e.moves
		}
	}
	return nil
}

// Put stores moves (truncated to MaxPVLength) for key, using the same
// hash-match-first, then stale-epoch, then shallowest-depth replacement
// rule as the main TT.
func (t *PVTable) Put(key position.Key, moves []RegularMove, depth int8) {
	if t.numBuckets == 0 {
		return
	}
	if len(moves) > MaxPVLength {
		moves = moves[:MaxPVLength]
	}
	stored := make([]RegularMove, len(moves))
	copy(stored, moves)

	base := t.bucketIndex(key) * BucketSize
	victim := base
	var victimP0, victimP1, victimP2 = -1, -1, -1
	for i := uint64(0); i < BucketSize; i++ {
		e := &t.data[base+i]
		if e.isEmpty() {
			victim = base + i
			break
		}
		matches := 0
		if e.key == key {
			matches = 1
		}
		fresh := 0
		if e.epoch == t.epoch {
			fresh = 1
		}
		p0, p1, p2 := matches, fresh, int(e.depth)
		if victimP0 == -1 || lessPriority(p0, p1, p2, victimP0, victimP1, victimP2) {
			victim = base + i
			victimP0, victimP1, victimP2 = p0, p1, p2
		}
	}
	t.data[victim] = pvEntry{key: key, moves: stored, depth: depth, epoch: t.epoch}
}
