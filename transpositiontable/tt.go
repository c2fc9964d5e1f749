// Package transpositiontable implements the search's transposition table
// and principal-variation table: fixed-size, power-of-two arrays of
// small buckets keyed by a Zobrist hash, grounded on FrankyGo's
// transpositiontable/tt.go (byte-budget sizing, power-of-two bucket-index
// masking, logging/stats idiom) generalized from FrankyGo's one-entry
// slots to the 4-entry buckets spec.md §4.6 requires, with epoch-based
// rather than per-slot age-decrement replacement.
package transpositiontable

import (
	"math"
	"math/bits"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tczajka/wazir-drop-sub000/logging"
	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog("tt")

const (
	// BucketSize is the number of entries sharing one hash bucket (TT and
	// PV table both use bucket size 4, spec.md §4.6).
	BucketSize = 4

	entrySize uint64 = 24 // Key(8) + RegularMove fields + Score(4) + Depth/Kind/Epoch, rounded

	mb uint64 = 1024 * 1024

	// MaxSizeInMB mirrors FrankyGo's sanity cap on requested table size.
	MaxSizeInMB = 65_536
)

// ScoreKind classifies a stored score relative to the alpha-beta window
// that produced it (spec.md §4.6).
type ScoreKind uint8

const (
	NoEntry ScoreKind = iota
	Exact
	LowerBound
	UpperBound
)

// Entry is one transposition-table slot.
type Entry struct {
	Key   position.Key
	Move  RegularMove
	Score Score
	Depth int8
	Kind  ScoreKind
	Epoch uint8
}

func (e *Entry) isEmpty() bool { return e.Kind == NoEntry }

// priority returns the tuple used to pick a replacement victim within a
// non-empty bucket slot: whether its key matches, whether its epoch is
// current, and its depth. lessPriority ranks a matching key as the most
// replaceable, then a stale epoch, then the shallowest depth.
func (e *Entry) priority(key position.Key, currentEpoch uint8) (int, int, int) {
	matches := 0
	if e.Key == key && !e.isEmpty() {
		matches = 1
	}
	fresh := 0
	if e.Epoch == currentEpoch {
		fresh = 1
	}
	return matches, fresh, int(e.Depth)
}

// Table is the bucketed transposition table. PVTable uses the same bucket
// layout and lessPriority replacement rule with its own entry type.
type Table struct {
	data        []Entry
	numBuckets  uint64
	bucketMask  uint64
	epoch       uint8
	sizeInBytes uint64
	name        string

	numPuts   uint64
	numProbes uint64
	numHits   uint64
}

// New creates a Table sized to fit within sizeInMByte, rounded down to a
// power-of-two number of buckets.
func New(name string, sizeInMByte int) *Table {
	t := &Table{name: name}
	t.Resize(sizeInMByte)
	return t
}

// Resize reallocates the table, clearing all entries.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Warning(out.Sprintf("%s: requested size %d MB reduced to max %d MB", t.name, sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	budget := uint64(sizeInMByte) * mb
	if budget < entrySize*BucketSize {
		t.numBuckets = 0
	} else {
		maxEntries := budget / entrySize
		maxBuckets := maxEntries / BucketSize
		if maxBuckets == 0 {
			t.numBuckets = 0
		} else {
			t.numBuckets = uint64(1) << (63 - bits.LeadingZeros64(maxBuckets))
		}
	}
	t.bucketMask = 0
	if t.numBuckets > 0 {
		t.bucketMask = t.numBuckets - 1
	}
	t.data = make([]Entry, t.numBuckets*BucketSize)
	t.sizeInBytes = uint64(len(t.data)) * entrySize
	log.Info(out.Sprintf("%s: size %d MB, %d buckets of %d entries (%d bytes)",
		t.name, t.sizeInBytes/mb, t.numBuckets, BucketSize, t.sizeInBytes))
}

// Clear empties every entry without changing the table's size.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.epoch = 0
	t.numPuts, t.numProbes, t.numHits = 0, 0, 0
}

// NewEpoch advances the process-wide epoch counter, wrapping past
// math.MaxUint8 to 1 (0 is reserved to mean "never touched"), aging every
// existing entry's relative freshness without a table scan (spec.md
// §4.6).
func (t *Table) NewEpoch() {
	if t.epoch == math.MaxUint8 {
		t.epoch = 1
	} else {
		t.epoch++
	}
}

func (t *Table) bucketIndex(key position.Key) uint64 {
	return uint64(key) & t.bucketMask
}

// Probe returns the matching entry for key within its bucket, or nil.
func (t *Table) Probe(key position.Key) *Entry {
	if t.numBuckets == 0 {
		return nil
	}
	t.numProbes++
	base := t.bucketIndex(key) * BucketSize
	for i := uint64(0); i < BucketSize; i++ {
		e := &t.data[base+i]
		if !e.isEmpty() && e.Key == key {
			e.Epoch = t.epoch
			t.numHits++
			return e
		}
	}
	return nil
}

// Put stores an entry for key, replacing the bucket slot with the lowest
// priority() tuple (spec.md §4.6: hash-match first so updates never
// evict themselves, then stale-epoch, then shallowest depth).
func (t *Table) Put(key position.Key, move RegularMove, score Score, depth int8, kind ScoreKind) {
	if t.numBuckets == 0 {
		return
	}
	t.numPuts++
	base := t.bucketIndex(key) * BucketSize
	victim := base
	var victimP0, victimP1, victimP2 = -1, -1, -1
	for i := uint64(0); i < BucketSize; i++ {
		e := &t.data[base+i]
		if e.isEmpty() {
			victim = base + i
			break
		}
		p0, p1, p2 := e.priority(key, t.epoch)
		if victimP0 == -1 || lessPriority(p0, p1, p2, victimP0, victimP1, victimP2) {
			victim = base + i
			victimP0, victimP1, victimP2 = p0, p1, p2
		}
	}
	t.data[victim] = Entry{Key: key, Move: move, Score: score, Depth: depth, Kind: kind, Epoch: t.epoch}
}

// lessPriority reports whether (p0,p1,p2) is a more replaceable slot than
// (q0,q1,q2): prefer evicting a hash match (it's being refreshed anyway),
// then a stale-epoch entry, then the shallowest depth.
func lessPriority(p0, p1, p2, q0, q1, q2 int) bool {
	if p0 != q0 {
		return p0 > q0 // a hash match (1) is MORE replaceable than a miss (0)
	}
	if p1 != q1 {
		return p1 < q1 // stale (0) is more replaceable than fresh (1)
	}
	return p2 < q2 // shallower depth is more replaceable
}

// Hashfull reports how full the table is, in permille, as a rough
// occupancy estimate sampled from the first 1000 buckets.
func (t *Table) Hashfull() int {
	if t.numBuckets == 0 {
		return 0
	}
	sample := t.numBuckets
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := uint64(0); i < sample*BucketSize; i++ {
		if !t.data[i].isEmpty() {
			used++
		}
	}
	return int(1000 * uint64(used) / (sample * BucketSize))
}

func (t *Table) String() string {
	return out.Sprintf("%s: size %d MB, %d buckets, puts %d probes %d hits %d (%d%%), hashfull %d",
		t.name, t.sizeInBytes/mb, t.numBuckets, t.numPuts, t.numProbes, t.numHits,
		(t.numHits*100)/(1+t.numProbes), t.Hashfull())
}
