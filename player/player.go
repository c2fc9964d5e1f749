// Package player implements the engine's Player capability (spec.md §1,
// §6 "Player harness") and the command-language harness that drives it
// over a line-oriented stdin/stdout pipe, grounded on FrankyGo's
// internal/uci package's handler/loop shape, re-themed from the UCI
// protocol to this engine's five-command line language (spec.md §6).
package player

import (
	"time"

	. "github.com/tczajka/wazir-drop-sub000/types"
)

// Player is a capability that plays one side of a game: informed of
// moves made against its own internal position (the opponent's, or an
// "Opening" replay line aligning its state before play begins), asked
// to produce its own. Grounded on spec.md §1's "a Player capability
// (make_move, opponent_move)"; EnginePlayer and RandomPlayer are the two
// implementations this package ships. OpponentMove takes a ShortMove
// rather than an already-resolved AnyMove because every implementation
// already owns the position needed to resolve one (spec.md §4.1's
// `move_from_short_move`), and the harness itself never builds or holds
// a position of its own.
type Player interface {
	// OpponentMove resolves m against the player's current position and
	// applies it, advancing internal state.
	OpponentMove(m ShortMove) error

	// MakeMove computes this player's next move, applies it to internal
	// state, and returns it. deadline is the absolute time by which a
	// regular-stage search must return (zero value asks the player to
	// compute its own budget, e.g. from a time-control timer).
	MakeMove(deadline time.Time) (AnyMove, error)
}

// Stoppable is implemented by a Player whose MakeMove may run a
// long-lived search and can be asked to cut it short, returning
// whatever move that search had already settled on. The harness uses
// this to let an async "Quit" interrupt a move in progress rather than
// waiting out its full time budget (spec.md §6: "expect the subprocess
// to exit" on Quit, not "expect it to finish thinking first").
type Stoppable interface {
	Stop()
}
