// Package history tracks the Zobrist hashes of positions seen so far in
// the game for repetition detection, grounded on
// original_source/src/history.rs: an exact hash stack plus a counting
// Bloom filter that lets find() short-circuit without scanning the stack
// when a hash definitely has not occurred before.
package history

// bloomFilterLogSize and bloomFilterNumHashes size the counting Bloom
// filter. The original's constants.rs did not ship concrete values
// alongside HISTORY_BLOOM_FILTER_LOG_SIZE/HISTORY_BLOOM_FILTER_NUM_HASHES
// (see DESIGN.md's Open Question resolutions); 4096 slots and 3 hash
// slices keep the false-positive rate low for games bounded by
// MaxMovesInGame (config.Settings.Search.MaxMovesInGame, default 1000)
// while staying a small fixed array.
const (
	bloomFilterLogSize  = 12
	bloomFilterNumHashes = 3
	bloomFilterMask      = (1 << bloomFilterLogSize) - 1
)

// History is a stack of position hashes with a parallel counting Bloom
// filter for fast repetition lookups.
type History struct {
	rootPly     int
	hashes      []uint64
	bloomFilter [1 << bloomFilterLogSize]uint8
}

// New returns an empty History.
func New() *History {
	return &History{hashes: make([]uint64, 0, 128)}
}

// Clear resets the history to empty, recording rootPly as the ply number
// of the first hash that will be pushed.
func (h *History) Clear(rootPly int) {
	h.rootPly = rootPly
	h.hashes = h.hashes[:0]
	for i := range h.bloomFilter {
		h.bloomFilter[i] = 0
	}
}

func indices(hash uint64) [bloomFilterNumHashes]int {
	var idx [bloomFilterNumHashes]int
	for i := 0; i < bloomFilterNumHashes; i++ {
		idx[i] = int(hash & bloomFilterMask)
		hash >>= bloomFilterLogSize
	}
	return idx
}

// Push records hash as the most recently reached position.
func (h *History) Push(hash uint64) {
	h.hashes = append(h.hashes, hash)
	for _, idx := range indices(hash) {
		h.bloomFilter[idx]++
	}
}

// Pop removes the most recently pushed hash. Panics if History is empty,
// a caller-discipline bug rather than a recoverable error.
func (h *History) Pop() {
	n := len(h.hashes)
	hash := h.hashes[n-1]
	h.hashes = h.hashes[:n-1]
	for _, idx := range indices(hash) {
		h.bloomFilter[idx]--
	}
}

// Find returns the ply number of a prior occurrence of hash, or
// (0, false) if there is none. Find must be called with the candidate
// position's hash before that hash is Push'd: the stack at call time
// holds only its ancestors, and the top of stack is the opponent's last
// position (necessarily the opposite side to move), so the scan skips it
// and then checks every other entry going back, since only
// same-side-to-move plies can repeat a position (spec.md §4.7).
func (h *History) Find(hash uint64) (int, bool) {
	for _, idx := range indices(hash) {
		if h.bloomFilter[idx] == 0 {
			return 0, false
		}
	}
	n := len(h.hashes)
	for i := n - 2; i >= 0; i -= 2 {
		if h.hashes[i] == hash {
			return h.rootPly + i, true
		}
	}
	return 0, false
}

// Len reports how many hashes are currently pushed.
func (h *History) Len() int { return len(h.hashes) }
