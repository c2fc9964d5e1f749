package player

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tczajka/wazir-drop-sub000/movegen"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// newTestHarness wires a Harness to an in-memory input script and output
// buffer, mirroring FrankyGo's own UciHandler.Command test hook (swap
// InIo/OutIo for buffers, then inspect what was written). Only suitable for
// scripts where every line can be queued up front: the harness is never
// expected to reply before the whole script has been read.
func newTestHarness(t *testing.T, p Player, script string) (*Harness, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	h := NewHarness(p, nil)
	h.InIo = bufio.NewScanner(strings.NewReader(script))
	h.OutIo = bufio.NewWriter(&out)
	return h, &out
}

// TestHarnessDrivesRandomPlayerThroughSetupIntoRegular drives a full Start /
// opponent-setup / Quit exchange against a RandomPlayer, playing Red, and
// checks the engine emits exactly one move per turn it owns: its own setup
// placement, then (once Blue's setup closes out the stage) its first
// regular-stage move. Input is fed through an io.Pipe one line at a time,
// only after the previous reply has been read: the real protocol is a
// synchronous duplex (the driver never sends its next line before reading
// the engine's previous one), and a pre-loaded script would otherwise race
// engineMove's internal Quit-watcher goroutine against the background stdin
// reader for the next queued line.
func TestHarnessDrivesRandomPlayerThroughSetupIntoRegular(t *testing.T) {
	blueSetup, ok := movegen.NewSetupMoveIterator(Blue).Next()
	require.True(t, ok)
	blueToken := blueSetup.String()

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	defer inW.Close()

	h := NewHarness(NewRandomPlayer(42), nil)
	h.InIo = bufio.NewScanner(inR)
	h.OutIo = bufio.NewWriter(outW)

	loopErr := make(chan error, 1)
	go func() { loopErr <- h.Loop() }()

	outScanner := bufio.NewScanner(outR)

	_, err := fmt.Fprintln(inW, "Start")
	require.NoError(t, err)
	require.True(t, outScanner.Scan())
	firstMove := outScanner.Text()
	assert.Len(t, firstMove, SetupSize)
	for _, c := range firstMove {
		assert.True(t, c >= 'A' && c <= 'Z', "expected an uppercase setup letter, got %q", firstMove)
	}

	_, err = fmt.Fprintln(inW, blueToken)
	require.NoError(t, err)
	require.True(t, outScanner.Scan())
	secondMove := outScanner.Text()
	assert.NotEmpty(t, secondMove)

	_, err = fmt.Fprintln(inW, "Quit")
	require.NoError(t, err)

	require.NoError(t, <-loopErr)
}

// TestHarnessDiscardsUnparsableLines checks spec.md §7 category 2: a
// garbage line is logged and skipped rather than ending the loop.
func TestHarnessDiscardsUnparsableLines(t *testing.T) {
	script := "this is not a command\nQuit\n"
	h, out := newTestHarness(t, NewRandomPlayer(7), script)

	err := h.Loop()
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

// TestHarnessQuitWithoutStartProducesNoOutput checks Quit alone ends the
// loop cleanly without ever asking the Player for a move.
func TestHarnessQuitWithoutStartProducesNoOutput(t *testing.T) {
	h, out := newTestHarness(t, NewRandomPlayer(3), "Quit\n")
	err := h.Loop()
	require.NoError(t, err)
	assert.Empty(t, out.String())
}
