package types

import "strings"

// SetupMove places a side's entire starting 16-piece multiset on its back
// two ranks in one ply. Pieces[i] is placed on the square reached by
// index i through the owner's point-of-view symmetry (spec.md §3).
type SetupMove struct {
	Color  Color
	Pieces [SetupSize]PieceKind
}

// Square returns the absolute board square piece index i of this move
// lands on, given the move's color.
func (m SetupMove) Square(i int) Square {
	return PointOfView(m.Color).Apply(Square(i))
}

// String renders the setup move as 16 consecutive piece letters, cased by
// colour, in the mover's point-of-view order (spec.md §6).
func (m SetupMove) String() string {
	var sb strings.Builder
	for _, pk := range m.Pieces {
		cp := MakeColoredPiece(m.Color, pk)
		sb.WriteByte(cp.Char())
	}
	return sb.String()
}

// ValidatePieceCounts reports whether m.Pieces is exactly the required
// multiset (8 Alfil, 4 Dabbaba, 2 Ferz, 1 Knight, 1 Wazir).
func (m SetupMove) ValidatePieceCounts() bool {
	var counts [PieceKindLength]int
	for _, pk := range m.Pieces {
		if !pk.IsValid() {
			return false
		}
		counts[pk]++
	}
	for pk := PieceKind(0); pk < PieceKindLength; pk++ {
		if counts[pk] != pk.InitialCount() {
			return false
		}
	}
	return true
}

// RegularMove is a single-piece move during the Regular stage: a move of
// the coloured piece from an optional source square (nil means a drop
// from reserve) to a destination, optionally capturing an opposing piece
// of the given kind.
type RegularMove struct {
	Piece     ColoredPiece
	From      Square // SqNone for a drop
	Captured  PieceKind
	HasCapture bool
	To        Square
}

// IsDrop reports whether this move places a piece from reserve rather
// than moving it from a board square.
func (m RegularMove) IsDrop() bool { return m.From == SqNone }

// LongString renders the long print form (spec.md §6):
// "<piece>@<dest>" for a drop, "<piece><from>-<dest>" for a quiet jump, or
// "<piece><from>x<captured><dest>" for a capture.
func (m RegularMove) LongString() string {
	var sb strings.Builder
	if m.IsDrop() {
		sb.WriteByte(m.Piece.Char())
		sb.WriteByte('@')
		sb.WriteString(m.To.String())
		return sb.String()
	}
	sb.WriteByte(m.Piece.Char())
	sb.WriteString(m.From.String())
	if m.HasCapture {
		sb.WriteByte('x')
		capturedColored := MakeColoredPiece(m.Piece.ColorOf().Opposite(), m.Captured)
		sb.WriteByte(capturedColored.Char())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

func (m RegularMove) String() string { return m.LongString() }

// AnyMove is the tagged union of SetupMove and RegularMove (spec.md §3).
type AnyMove struct {
	isSetup bool
	setup   SetupMove
	regular RegularMove
}

// NewSetupAnyMove wraps a SetupMove as an AnyMove.
func NewSetupAnyMove(m SetupMove) AnyMove { return AnyMove{isSetup: true, setup: m} }

// NewRegularAnyMove wraps a RegularMove as an AnyMove.
func NewRegularAnyMove(m RegularMove) AnyMove { return AnyMove{isSetup: false, regular: m} }

// IsSetup reports whether this wraps a SetupMove.
func (m AnyMove) IsSetup() bool { return m.isSetup }

// Setup returns the wrapped SetupMove; only valid if IsSetup() is true.
func (m AnyMove) Setup() SetupMove { return m.setup }

// Regular returns the wrapped RegularMove; only valid if IsSetup() is
// false.
func (m AnyMove) Regular() RegularMove { return m.regular }

func (m AnyMove) String() string {
	if m.isSetup {
		return m.setup.String()
	}
	return m.regular.String()
}

// ShortMoveFrom is the user-facing source of a regular short move: either
// a board square or a reserve-piece letter (a drop).
type ShortMoveFrom struct {
	isSquare bool
	square   Square
	piece    ColoredPiece
}

// ShortMoveFromSquare builds a ShortMoveFrom naming a board square.
func ShortMoveFromSquare(sq Square) ShortMoveFrom { return ShortMoveFrom{isSquare: true, square: sq} }

// ShortMoveFromReserve builds a ShortMoveFrom naming a reserve piece.
func ShortMoveFromReserve(cp ColoredPiece) ShortMoveFrom {
	return ShortMoveFrom{isSquare: false, piece: cp}
}

// IsSquare reports whether this names a board square rather than a
// reserve piece.
func (f ShortMoveFrom) IsSquare() bool { return f.isSquare }

// Square returns the named square; only valid if IsSquare() is true.
func (f ShortMoveFrom) Square() Square { return f.square }

// Piece returns the named reserve piece; only valid if IsSquare() is
// false.
func (f ShortMoveFrom) Piece() ColoredPiece { return f.piece }

func (f ShortMoveFrom) String() string {
	if f.isSquare {
		return f.square.String()
	}
	return f.piece.String()
}

// ShortMove is the user-facing move form: either a full 16-letter setup
// move, or a "<from>[<dest>]" regular move where <from> is a square or a
// reserve-piece letter.
type ShortMove struct {
	isSetup bool
	setup   SetupMove
	from    ShortMoveFrom
	to      Square
}

// NewSetupShortMove wraps a fully-specified setup move.
func NewSetupShortMove(m SetupMove) ShortMove { return ShortMove{isSetup: true, setup: m} }

// NewRegularShortMove builds a short move from a source and destination.
func NewRegularShortMove(from ShortMoveFrom, to Square) ShortMove {
	return ShortMove{isSetup: false, from: from, to: to}
}

func (m ShortMove) IsSetup() bool           { return m.isSetup }
func (m ShortMove) Setup() SetupMove        { return m.setup }
func (m ShortMove) From() ShortMoveFrom     { return m.from }
func (m ShortMove) To() Square              { return m.to }

func (m ShortMove) String() string {
	if m.isSetup {
		return m.setup.String()
	}
	return m.from.String() + m.to.String()
}
