package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tczajka/wazir-drop-sub000/clock"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// Harness drives a Player over the line protocol of spec.md §6, grounded
// on FrankyGo's internal/uci.UciHandler: a bufio.Scanner/bufio.Writer
// pair a caller can redirect, dispatching each of the five Command
// kinds to the wrapped Player.
type Harness struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	player Player
	timer  *clock.Timer // nil if the wrapped Player ignores "Time"
	lines  chan string
}

// NewHarness wraps p, driven over stdin/stdout. timer may be nil: only
// EnginePlayer needs its remaining-time budget updated by "Time".
func NewHarness(p Player, timer *clock.Timer) *Harness {
	return &Harness{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		player: p,
		timer:  timer,
		lines:  make(chan string),
	}
}

var errQuit = errors.New("player: quit")

// Loop reads commands until Quit or a fatal I/O error (spec.md §7
// category 3). Stdin is read by a standalone goroutine feeding h.lines,
// left running if Loop returns early: the process is expected to exit
// shortly after (spec.md §6's Quit contract), so there is nothing to
// join. engineMove reads from the same channel concurrently with its
// search so a Quit sent while the engine is thinking interrupts it
// rather than waiting out its full time budget.
func (h *Harness) Loop() error {
	go func() {
		defer close(h.lines)
		for h.InIo.Scan() {
			h.lines <- h.InIo.Text()
		}
	}()

	for line := range h.lines {
		quit, err := h.handleLine(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	if err := h.InIo.Err(); err != nil {
		return fmt.Errorf("player: reading stdin: %w", err)
	}
	return nil
}

// handleLine dispatches one protocol line, returning true once Quit has
// been processed.
func (h *Harness) handleLine(line string) (quit bool, err error) {
	cmd, perr := ParseCommand(line)
	if perr != nil {
		// spec.md §7 category 2: log and discard, never fatal.
		log.Warningf("discarding unparsable line %q: %v", line, perr)
		return false, nil
	}

	switch {
	case cmd.kind == kindTime:
		if h.timer != nil {
			h.timer.SetRemaining(time.Duration(cmd.timeMs) * time.Millisecond)
		}
		return false, nil

	case cmd.kind == kindOpening:
		for _, sm := range cmd.opening {
			if err := h.player.OpponentMove(sm); err != nil {
				return false, fmt.Errorf("player: replaying opening move %q: %w", sm, err)
			}
		}
		return false, nil

	case cmd.kind == kindStart:
		return h.engineMove()

	case cmd.kind == kindOpponentMove:
		if err := h.player.OpponentMove(cmd.opponent); err != nil {
			return false, fmt.Errorf("player: applying opponent move %q: %w", cmd.opponent, err)
		}
		return h.engineMove()

	case cmd.kind == kindQuit:
		return true, nil

	default:
		return false, nil
	}
}

// engineMove asks the Player for its move, racing the computation
// against h.lines so an async Quit interrupts a Stoppable Player rather
// than waiting for the full time budget to elapse. The watcher goroutine
// is cancelled explicitly via cancel(), not left to errgroup.WithContext's
// own derived context: that context only cancels once a goroutine returns a
// non-nil error, which never happens on the (common) successful-move path
// and would otherwise leave the watcher, and g.Wait(), blocked forever.
func (h *Harness) engineMove() (quit bool, err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resultCh := make(chan AnyMove, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		m, err := h.player.MakeMove(time.Time{})
		if err != nil {
			return err
		}
		resultCh <- m
		return nil
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-h.lines:
			if !ok {
				return nil
			}
			cmd, perr := ParseCommand(line)
			if perr == nil && cmd.kind == kindQuit {
				if s, ok := h.player.(Stoppable); ok {
					s.Stop()
				}
				return errQuit
			}
			log.Warningf("ignoring %q received while computing a move", line)
			return nil
		}
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, errQuit) {
			return true, nil
		}
		return false, fmt.Errorf("player: computing move: %w", err)
	}

	m := <-resultCh
	if _, err := io.WriteString(h.OutIo, m.String()+"\n"); err != nil {
		return false, fmt.Errorf("player: writing move: %w", err)
	}
	return false, h.OutIo.Flush()
}
