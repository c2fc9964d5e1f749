package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/tczajka/wazir-drop-sub000/codec"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// Command is the tagged union of the five line-oriented commands a
// driver sends an engine subprocess (spec.md §6), grounded on
// original_source/src/cli.rs's CliCommand enum and its Parser-combinator
// grammar (spec.md §4.8 names CliCommand as one of the combinator kit's
// consumers).
type Command struct {
	kind     commandKind
	timeMs   uint32
	opening  []ShortMove
	opponent ShortMove
}

type commandKind int

const (
	kindTime commandKind = iota
	kindOpening
	kindStart
	kindOpponentMove
	kindQuit
)

// TimeCommand builds a "Time <ms>" command.
func TimeCommand(d time.Duration) Command {
	return Command{kind: kindTime, timeMs: uint32(d.Milliseconds())}
}

// OpeningCommand builds an "Opening <move>..." command.
func OpeningCommand(moves []ShortMove) Command { return Command{kind: kindOpening, opening: moves} }

// StartCommand is the "Start" command.
func StartCommand() Command { return Command{kind: kindStart} }

// OpponentMoveCommand wraps a bare short move line.
func OpponentMoveCommand(m ShortMove) Command { return Command{kind: kindOpponentMove, opponent: m} }

// QuitCommand is the "Quit" command.
func QuitCommand() Command { return Command{kind: kindQuit} }

func (c Command) String() string {
	switch c.kind {
	case kindTime:
		return fmt.Sprintf("Time %d", c.timeMs)
	case kindOpening:
		var sb strings.Builder
		sb.WriteString("Opening")
		for _, m := range c.opening {
			sb.WriteByte(' ')
			sb.WriteString(m.String())
		}
		return sb.String()
	case kindStart:
		return "Start"
	case kindOpponentMove:
		return c.opponent.String()
	case kindQuit:
		return "Quit"
	default:
		return ""
	}
}

// squareByteParser consumes exactly two bytes, a file letter (a-h) then a
// rank digit (1-8), and resolves them to a Square.
func squareByteParser(input []byte) (Square, []byte, error) {
	return codec.TryMap(codec.And(codec.Byte, codec.Byte), func(pr codec.Pair[byte, byte]) (Square, error) {
		if pr.First < 'a' || pr.First > 'h' {
			return SqNone, fmt.Errorf("bad file %q", pr.First)
		}
		if pr.Second < '1' || pr.Second > '8' {
			return SqNone, fmt.Errorf("bad rank %q", pr.Second)
		}
		return SquareOf(File(pr.First-'a'), Rank(pr.Second-'1')), nil
	})(input)
}

// coloredPieceByteParser consumes one byte and resolves it to a
// ColoredPiece via its print letter.
func coloredPieceByteParser(input []byte) (ColoredPiece, []byte, error) {
	return codec.TryMap(codec.Byte, func(b byte) (ColoredPiece, error) {
		cp, ok := ColoredPieceFromChar(b)
		if !ok {
			return ColoredPieceNone, fmt.Errorf("bad piece letter %q", b)
		}
		return cp, nil
	})(input)
}

// shortMoveFromParser parses a ShortMoveFrom: a board square (two bytes)
// tried first, falling back to a single reserve-piece letter. The two
// grammars never collide: a square's second byte is always a rank digit,
// while a drop's second byte is the destination square's first byte, a
// file letter, so the square attempt fails cleanly on genuine drops
// instead of requiring a backtracking choice once a flat-out alternative
// already looks committed.
func shortMoveFromParser(input []byte) (ShortMoveFrom, []byte, error) {
	return codec.Or(
		codec.Map(squareByteParser, ShortMoveFromSquare),
		codec.Map(coloredPieceByteParser, ShortMoveFromReserve),
	)(input)
}

// setupMoveTokenParser parses exactly 16 piece letters of one consistent
// colour into a SetupMove, mirroring SetupMove.String()'s print form
// (spec.md §6).
func setupMoveTokenParser(input []byte) (SetupMove, []byte, error) {
	return codec.TryMap(codec.Repeat(coloredPieceByteParser, 16, 16), func(cps []ColoredPiece) (SetupMove, error) {
		var sm SetupMove
		sm.Color = cps[0].ColorOf()
		for i, cp := range cps {
			if cp.ColorOf() != sm.Color {
				return SetupMove{}, fmt.Errorf("mixed colours in setup token")
			}
			sm.Pieces[i] = cp.KindOf()
		}
		return sm, nil
	})(input)
}

// shortMoveTokenParser parses one whitespace-delimited move token: either
// the 16-letter SetupMove form or a regular "<from>[<dest>]" ShortMove
// (spec.md §6).
func shortMoveTokenParser(input []byte) (ShortMove, []byte, error) {
	return codec.Or(
		codec.Map(setupMoveTokenParser, NewSetupShortMove),
		codec.Map(codec.And(shortMoveFromParser, squareByteParser), func(pr codec.Pair[ShortMoveFrom, Square]) ShortMove {
			return NewRegularShortMove(pr.First, pr.Second)
		}),
	)(input)
}

func commandParser(input []byte) (Command, []byte, error) {
	timeParser := codec.Map(
		codec.IgnoreThen(codec.Exact([]byte("Time ")), codec.Uint32),
		func(ms uint32) Command { return TimeCommand(time.Duration(ms) * time.Millisecond) },
	)
	openingParser := codec.Map(
		codec.IgnoreThen(
			codec.Exact([]byte("Opening")),
			codec.Repeat(codec.IgnoreThen(codec.Exact([]byte(" ")), shortMoveTokenParser), 0, -1),
		),
		OpeningCommand,
	)
	startParser := codec.Map(codec.Exact([]byte("Start")), func(struct{}) Command { return StartCommand() })
	quitParser := codec.Map(codec.Exact([]byte("Quit")), func(struct{}) Command { return QuitCommand() })
	opponentParser := codec.Map(shortMoveTokenParser, OpponentMoveCommand)

	return codec.Or(timeParser,
		codec.Or(openingParser,
			codec.Or(startParser,
				codec.Or(quitParser, opponentParser))))(input)
}

// ParseCommand parses one protocol line (spec.md §6, §7 category 2: a
// parse failure is the caller's to log and discard, never fatal).
func ParseCommand(line string) (Command, error) {
	return codec.ParseAll(commandParser, []byte(line))
}
