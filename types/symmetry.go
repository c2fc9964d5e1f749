package types

// Symmetry is one element of the 8-element dihedral group of the square,
// the set of rigid transforms (rotations + reflections) that map an 8x8
// board onto itself.
type Symmetry uint8

const (
	Identity Symmetry = iota
	FlipX             // mirror across the vertical axis: file -> 7-file
	FlipY             // mirror across the horizontal axis: rank -> 7-rank
	Rotate180
	SwapXY // reflect across the main diagonal (transpose)
	RotateLeft
	RotateRight
	OtherDiagonal // reflect across the anti-diagonal
	SymmetryLength
)

// symTable[sym][sq] is the precomputed image of sq under sym.
var symTable [SymmetryLength][SqLength]Square

// normSquare[sq] / normSym[sq] are the precomputed canonical representative
// and the symmetry that reaches it, one per square.
var normSquare [SqLength]Square
var normSym [SqLength]Symmetry

func init() {
	for f := File(0); f < FileLength; f++ {
		for r := Rank(0); r < RankLength; r++ {
			sq := SquareOf(f, r)
			x, y := int(f), int(r)
			symTable[Identity][sq] = sq
			symTable[FlipX][sq] = SquareOf(File(7-x), Rank(y))
			symTable[FlipY][sq] = SquareOf(File(x), Rank(7-y))
			symTable[Rotate180][sq] = SquareOf(File(7-x), Rank(7-y))
			symTable[SwapXY][sq] = SquareOf(File(y), Rank(x))
			symTable[RotateLeft][sq] = SquareOf(File(y), Rank(7-x))
			symTable[RotateRight][sq] = SquareOf(File(7-y), Rank(x))
			symTable[OtherDiagonal][sq] = SquareOf(File(7-y), Rank(7-x))
		}
	}

	// Canonical fundamental domain: the ten-square upper-left triangle
	// file <= 3, rank <= 3, file <= rank. Every square's orbit under the
	// group intersects this region; pick the lowest-indexed symmetry that
	// lands there as "the" symmetry for that square.
	for sq := Square(0); sq < SqLength; sq++ {
		found := false
		for sym := Symmetry(0); sym < SymmetryLength; sym++ {
			img := symTable[sym][sq]
			if int(img.FileOf()) <= 3 && int(img.RankOf()) <= 3 && img.FileOf() <= File(img.RankOf()) {
				normSquare[sq] = img
				normSym[sq] = sym
				found = true
				break
			}
		}
		if !found {
			panic("symmetry: no canonical representative found for square")
		}
	}
}

// Apply returns the image of sq under sym.
func (sym Symmetry) Apply(sq Square) Square {
	return symTable[sym][sq]
}

// NormalizedSquare returns the canonical representative of sq's orbit
// under the board's symmetry group (one of the ten squares of the
// upper-left triangle).
func NormalizedSquare(sq Square) Square {
	return normSquare[sq]
}

// NormalizingSymmetry returns the symmetry that sends sq to its
// normalized square.
func NormalizingSymmetry(sq Square) Symmetry {
	return normSym[sq]
}

// NormalizedSquareCount is the number of distinct normalized squares (10).
const NormalizedSquareCount = 10

// normalizedIndex maps a normalized square to a dense 0..10 index, used by
// the feature encoders.
var normalizedIndex [SqLength]int8

func init() {
	idx := int8(0)
	seen := map[Square]int8{}
	for f := File(0); f <= 3; f++ {
		for r := Rank(f); r <= 3; r++ {
			sq := SquareOf(f, r)
			seen[sq] = idx
			idx++
		}
	}
	for sq := Square(0); sq < SqLength; sq++ {
		normalizedIndex[sq] = seen[normSquare[sq]]
	}
}

// NormalizedIndex returns the dense [0, NormalizedSquareCount) index for
// sq's normalized square, used directly as a feature-table index.
func NormalizedIndex(sq Square) int {
	return int(normalizedIndex[sq])
}

// PointOfView is the per-colour symmetry used to present the board from
// the mover's side when indexing features: identity for Red, 180-degree
// rotation for Blue.
func PointOfView(c Color) Symmetry {
	if c == Red {
		return Identity
	}
	return Rotate180
}
