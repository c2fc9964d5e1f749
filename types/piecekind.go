package types

// PieceKind is one of the five piece kinds. Wazir is the king-piece: its
// capture ends the game.
type PieceKind int8

const (
	Alfil PieceKind = iota
	Dabbaba
	Ferz
	Knight
	Wazir
	PieceKindLength
)

var pieceKindChar = [PieceKindLength]byte{'A', 'D', 'F', 'N', 'W'}
var pieceKindName = [PieceKindLength]string{"Alfil", "Dabbaba", "Ferz", "Knight", "Wazir"}

// Char returns the single uppercase letter for the kind (case is applied
// separately by colour when printing a ColoredPiece).
func (pk PieceKind) Char() byte { return pieceKindChar[pk] }

// String returns the full kind name.
func (pk PieceKind) String() string { return pieceKindName[pk] }

// IsValid reports whether pk is one of the five kinds.
func (pk PieceKind) IsValid() bool { return pk >= Alfil && pk < PieceKindLength }

// InitialCount is the number of pieces of this kind each side starts
// with: 8 Alfils, 4 Dabbabas, 2 Ferzes, 1 Knight, 1 Wazir -- 16 total.
var initialCount = [PieceKindLength]int{8, 4, 2, 1, 1}

// InitialCount returns the starting count of pk per side.
func (pk PieceKind) InitialCount() int { return initialCount[pk] }

// PieceKindFromChar parses a single uppercase letter into a PieceKind, or
// (-1, false) if it does not match any kind.
func PieceKindFromChar(c byte) (PieceKind, bool) {
	switch c {
	case 'A':
		return Alfil, true
	case 'D':
		return Dabbaba, true
	case 'F':
		return Ferz, true
	case 'N':
		return Knight, true
	case 'W':
		return Wazir, true
	default:
		return -1, false
	}
}

// SetupSize is the total number of pieces (16) each side places during
// the setup stage.
const SetupSize = 16
