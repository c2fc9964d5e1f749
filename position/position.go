// Package position implements the full game state: board, stage machine,
// captured-piece reserves and move application, grounded on FrankyGo's
// position/position.go (dense board array plus per-colour bitboards and
// an incrementally maintained Zobrist hash), generalized from chess to
// the wazir-drop piece set and its Setup/Regular/End stage machine.
package position

import (
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// Stage is one of Setup, Regular or End.
type Stage uint8

const (
	Setup Stage = iota
	Regular
	End
)

func (s Stage) String() string {
	switch s {
	case Setup:
		return "setup"
	case Regular:
		return "regular"
	case End:
		return "end"
	default:
		return "?"
	}
}

// Outcome describes how a finished game ended. Draws are declared by the
// harness (repetition/move-cap), not by Position itself; Position only
// ever produces a Win outcome when a Wazir is captured.
type Outcome struct {
	IsDraw bool
	Winner Color // valid only if !IsDraw
}

func WinOutcome(winner Color) Outcome { return Outcome{Winner: winner} }
func DrawOutcome() Outcome            { return Outcome{IsDraw: true} }

// Position is a complete, value-typed game state. Cheaply copyable: every
// make-move operation returns a new value rather than mutating in place,
// so positions can be passed, stored and compared freely.
type Position struct {
	stage      Stage
	outcome    Outcome
	sideToMove Color

	board    [SqLength]ColoredPiece
	piecesBb [ColorLength][PieceKindLength]Bitboard
	colorBb  [ColorLength]Bitboard

	// captured[c][pk] is the number of pk pieces captured by c, i.e. the
	// number c currently has in reserve to drop. Bounded by
	// 2*pk.InitialCount() (spec.md §3).
	captured [ColorLength][PieceKindLength]int

	// wazirSquare[c] caches c's Wazir location once both are on the
	// board (Regular/End stage); SqNone during Setup.
	wazirSquare [ColorLength]Square

	hash Key

	// ply counts half-moves since game start, exposed so a harness can
	// apply a move-count cap (spec.md §4.1, declared externally).
	ply int
}

// Initial returns the starting position: empty board, Setup stage, Red
// to move.
func Initial() Position {
	initZobrist()
	p := Position{stage: Setup, sideToMove: Red}
	for c := Red; c <= Blue; c++ {
		p.wazirSquare[c] = SqNone
	}
	p.hash = 0
	return p
}

func (p Position) Stage() Stage         { return p.stage }
func (p Position) Outcome() Outcome     { return p.outcome }
func (p Position) SideToMove() Color    { return p.sideToMove }
func (p Position) Ply() int             { return p.ply }
func (p Position) Hash() Key            { return p.hash }

// Square returns the piece occupying sq, or ColoredPieceNone if empty.
func (p Position) Square(sq Square) ColoredPiece {
	return p.board[sq]
}

// PieceBb returns the bitboard of cp's pieces.
func (p Position) PieceBb(cp ColoredPiece) Bitboard {
	return p.piecesBb[cp.ColorOf()][cp.KindOf()]
}

// OccupiedBy returns the union of all of c's pieces.
func (p Position) OccupiedBy(c Color) Bitboard {
	return p.colorBb[c]
}

// Occupied returns the union of all pieces on the board.
func (p Position) Occupied() Bitboard {
	return p.colorBb[Red].Or(p.colorBb[Blue])
}

// EmptySquares returns the complement of Occupied().
func (p Position) EmptySquares() Bitboard {
	return p.Occupied().Not()
}

// NumCaptured returns how many of cp are currently in c's reserve
// (available to drop), where c is cp's own colour.
func (p Position) NumCaptured(cp ColoredPiece) int {
	return p.captured[cp.ColorOf()][cp.KindOf()]
}

// WazirSquare returns c's Wazir square, or SqNone before it has been
// placed.
func (p Position) WazirSquare(c Color) Square {
	return p.wazirSquare[c]
}

func (p *Position) place(cp ColoredPiece, sq Square) {
	p.board[sq] = cp
	p.piecesBb[cp.ColorOf()][cp.KindOf()] = p.piecesBb[cp.ColorOf()][cp.KindOf()].Push(sq)
	p.colorBb[cp.ColorOf()] = p.colorBb[cp.ColorOf()].Push(sq)
	p.hash ^= pieceKey(cp, sq)
	if cp.KindOf() == Wazir {
		p.wazirSquare[cp.ColorOf()] = sq
	}
}

func (p *Position) remove(cp ColoredPiece, sq Square) {
	p.board[sq] = ColoredPieceNone
	p.piecesBb[cp.ColorOf()][cp.KindOf()] = p.piecesBb[cp.ColorOf()][cp.KindOf()].Pop(sq)
	p.colorBb[cp.ColorOf()] = p.colorBb[cp.ColorOf()].Pop(sq)
	p.hash ^= pieceKey(cp, sq)
}

func (p *Position) incrementCaptured(cp ColoredPiece) {
	c := cp.ColorOf()
	pk := cp.KindOf()
	old := p.captured[c][pk]
	p.hash ^= capturedCountKey(cp, old)
	p.captured[c][pk] = old + 1
	p.hash ^= capturedCountKey(cp, old+1)
}

func (p *Position) decrementCaptured(cp ColoredPiece) {
	c := cp.ColorOf()
	pk := cp.KindOf()
	old := p.captured[c][pk]
	p.hash ^= capturedCountKey(cp, old)
	p.captured[c][pk] = old - 1
	p.hash ^= capturedCountKey(cp, old-1)
}

func (p *Position) toggleSideToMove() {
	p.sideToMove = p.sideToMove.Opposite()
	p.hash ^= zobristBase.nextPlayer
}

// MakeMove dispatches to MakeSetupMove or MakeRegularMove.
func (p Position) MakeMove(m AnyMove) (Position, error) {
	if m.IsSetup() {
		return p.MakeSetupMove(m.Setup())
	}
	return p.MakeRegularMove(m.Regular())
}

// MakeSetupMove places mov's 16 pieces on the mover's back two ranks
// (spec.md §4.1). Fails if the stage or side to move does not match, or
// the piece multiset is wrong.
func (p Position) MakeSetupMove(mov SetupMove) (Position, error) {
	if p.stage != Setup {
		return Position{}, invalidMove("not in setup stage")
	}
	if mov.Color != p.sideToMove {
		return Position{}, invalidMove("setup move for wrong side")
	}
	if !mov.ValidatePieceCounts() {
		return Position{}, invalidMove("setup move piece multiset is wrong")
	}
	np := p
	for i, pk := range mov.Pieces {
		sq := mov.Square(i)
		np.place(MakeColoredPiece(mov.Color, pk), sq)
	}
	np.toggleSideToMove()
	if np.sideToMove == Red {
		np.stage = Regular
	}
	np.ply++
	return np, nil
}

// MakeRegularMove applies a single-piece move or drop (spec.md §4.1).
// Self-capture, destination==source, and move-vector/jump-set violations
// are all rejected; moving into check or leaving one's own Wazir in
// check are both permitted (suicide is legal).
func (p Position) MakeRegularMove(mov RegularMove) (Position, error) {
	if p.stage != Regular {
		return Position{}, invalidMove("not in regular stage")
	}
	color := mov.Piece.ColorOf()
	if color != p.sideToMove {
		return Position{}, invalidMove("move for wrong side")
	}
	if mov.To == mov.From {
		return Position{}, invalidMove("destination equals source")
	}
	if !mov.To.IsValid() {
		return Position{}, invalidMove("destination off board")
	}

	np := p

	if mov.IsDrop() {
		if p.NumCaptured(mov.Piece) == 0 {
			return Position{}, invalidMove("no such piece in reserve")
		}
		if occ := p.Square(mov.To); occ != ColoredPieceNone {
			return Position{}, invalidMove("drop onto occupied square")
		}
		np.decrementCaptured(mov.Piece)
	} else {
		if p.Square(mov.From) != mov.Piece {
			return Position{}, invalidMove("source square piece mismatch")
		}
		if !CanJump(mov.Piece.KindOf(), mov.From, mov.To) {
			return Position{}, invalidMove("destination not in piece's jump set")
		}
		np.remove(mov.Piece, mov.From)
	}

	destOccupant := p.Square(mov.To)
	if mov.HasCapture {
		wantOccupant := MakeColoredPiece(color.Opposite(), mov.Captured)
		if destOccupant != wantOccupant {
			return Position{}, invalidMove("captured-piece kind mismatch")
		}
		np.remove(destOccupant, mov.To)
		np.incrementCaptured(MakeColoredPiece(color, mov.Captured))
	} else {
		if destOccupant != ColoredPieceNone {
			return Position{}, invalidMove("destination occupied (self-capture or missing capture flag)")
		}
	}

	np.place(mov.Piece, mov.To)

	if mov.HasCapture && mov.Captured == Wazir {
		np.stage = End
		np.outcome = WinOutcome(color)
	} else {
		np.toggleSideToMove()
	}
	np.ply++
	return np, nil
}

// MoveFromShortMove resolves a user-facing ShortMove into a fully
// specified AnyMove given the current position (spec.md §4.1).
func (p Position) MoveFromShortMove(sm ShortMove) (AnyMove, error) {
	if sm.IsSetup() {
		if p.stage != Setup || sm.Setup().Color != p.sideToMove {
			return AnyMove{}, invalidMove("setup move for wrong stage/side")
		}
		if !sm.Setup().ValidatePieceCounts() {
			return AnyMove{}, invalidMove("setup move piece multiset is wrong")
		}
		return NewSetupAnyMove(sm.Setup()), nil
	}

	if p.stage != Regular {
		return AnyMove{}, invalidMove("not in regular stage")
	}
	to := sm.To()
	destOccupant := p.Square(to)

	var captured PieceKind
	hasCapture := false
	if destOccupant != ColoredPieceNone {
		if destOccupant.ColorOf() != p.sideToMove.Opposite() {
			return AnyMove{}, invalidMove("destination occupied by own piece")
		}
		captured = destOccupant.KindOf()
		hasCapture = true
	}

	from := sm.From()
	var cp ColoredPiece
	var fromSquare Square
	if from.IsSquare() {
		fromSquare = from.Square()
		occ := p.Square(fromSquare)
		if occ == ColoredPieceNone {
			return AnyMove{}, invalidMove("no piece on source square")
		}
		if !CanJump(occ.KindOf(), fromSquare, to) {
			return AnyMove{}, invalidMove("destination not in piece's jump set")
		}
		cp = occ
	} else {
		cp = from.Piece()
		fromSquare = SqNone
		if hasCapture {
			return AnyMove{}, invalidMove("a drop cannot capture")
		}
		if p.NumCaptured(cp) == 0 {
			return AnyMove{}, invalidMove("no such piece in reserve")
		}
	}

	if cp.ColorOf() != p.sideToMove {
		return AnyMove{}, invalidMove("move for wrong side")
	}

	return NewRegularAnyMove(RegularMove{
		Piece: cp, From: fromSquare, Captured: captured, HasCapture: hasCapture, To: to,
	}), nil
}
