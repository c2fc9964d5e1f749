package position

import (
	"fmt"
	"strings"

	. "github.com/tczajka/wazir-drop-sub000/types"
)

// ParseError reports a malformed Position print form (spec.md §6/§7).
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return "parse error: " + e.Reason }

func parseErr(format string, a ...interface{}) error {
	return &ParseError{Reason: fmt.Sprintf(format, a...)}
}

// String renders the Position print form from spec.md §6:
//
//	<stage>
//	<colour>
//	<captured-run>
//	<8 rows of 8 cells>
func (p Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.stage.String())
	sb.WriteByte('\n')
	sb.WriteString(p.sideToMove.PrintForm())
	sb.WriteByte('\n')
	for c := Red; c <= Blue; c++ {
		for pk := PieceKind(0); pk < PieceKindLength; pk++ {
			cp := MakeColoredPiece(c, pk)
			for i := 0; i < p.NumCaptured(cp); i++ {
				sb.WriteByte(cp.Char())
			}
		}
	}
	sb.WriteByte('\n')
	for r := int(RankLength) - 1; r >= 0; r-- {
		for f := File(0); f < FileLength; f++ {
			sq := SquareOf(f, Rank(r))
			cp := p.Square(sq)
			if cp == ColoredPieceNone {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(cp.Char())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads the Position print form produced by String(). It does not
// recompute stage transitions: the stage line and board contents are
// trusted as given, as this form exists primarily to set up test
// fixtures (spec.md §6).
func Parse(s string) (Position, error) {
	initZobrist()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) < 11 {
		return Position{}, parseErr("expected stage, colour, captured-run and 8 board rows, got %d lines", len(lines))
	}

	var p Position
	for c := Red; c <= Blue; c++ {
		p.wazirSquare[c] = SqNone
	}

	switch lines[0] {
	case "setup":
		p.stage = Setup
	case "regular":
		p.stage = Regular
	case "end":
		p.stage = End
	default:
		return Position{}, parseErr("unknown stage %q", lines[0])
	}

	switch lines[1] {
	case "red":
		p.sideToMove = Red
	case "blue":
		p.sideToMove = Blue
	default:
		return Position{}, parseErr("unknown colour %q", lines[1])
	}

	for i := 0; i < len(lines[2]); i++ {
		cp, ok := ColoredPieceFromChar(lines[2][i])
		if !ok {
			return Position{}, parseErr("bad captured-piece letter %q", lines[2][i])
		}
		p.incrementCaptured(cp)
	}

	boardRows := lines[3:11]
	for i, row := range boardRows {
		r := Rank(int(RankLength) - 1 - i)
		if len(row) != int(FileLength) {
			return Position{}, parseErr("board row %q has wrong length", row)
		}
		for f := File(0); f < FileLength; f++ {
			ch := row[f]
			if ch == '.' {
				continue
			}
			cp, ok := ColoredPieceFromChar(ch)
			if !ok {
				return Position{}, parseErr("bad board letter %q", ch)
			}
			p.place(cp, SquareOf(f, r))
		}
	}

	return p, nil
}
