package player

import (
	"math/rand"
	"time"

	"github.com/tczajka/wazir-drop-sub000/history"
	"github.com/tczajka/wazir-drop-sub000/movegen"
	"github.com/tczajka/wazir-drop-sub000/position"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// RandomPlayer picks a uniformly random legal move, preferring one that
// does not leave its own Wazir immediately capturable, grounded on
// original_source/extra/src/moverand.rs's random_setup/random_regular/
// random_move, enriched per the "does not leave the mover in an
// immediately lost state" supplemented feature: the original's
// random_regular is uniform with no such filter. Useful for
// smoke-testing the harness without a real search.
type RandomPlayer struct {
	pos  position.Position
	hist *history.History
	rng  *rand.Rand
}

// NewRandomPlayer builds a RandomPlayer seeded from seed, starting from
// the initial position.
func NewRandomPlayer(seed int64) *RandomPlayer {
	return &RandomPlayer{
		pos:  position.Initial(),
		hist: history.New(),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomPlayer) OpponentMove(sm ShortMove) error {
	m, err := r.pos.MoveFromShortMove(sm)
	if err != nil {
		return err
	}
	next, err := r.pos.MakeMove(m)
	if err != nil {
		return err
	}
	r.pos = next
	r.hist.Push(uint64(r.pos.Hash()))
	return nil
}

// MakeMove ignores deadline: a random choice is cheap enough to never
// need one.
func (r *RandomPlayer) MakeMove(_ time.Time) (AnyMove, error) {
	var m AnyMove
	if r.pos.Stage() == position.Setup {
		m = NewSetupAnyMove(r.randomSetup())
	} else {
		m = NewRegularAnyMove(r.randomRegular())
	}

	next, err := r.pos.MakeMove(m)
	if err != nil {
		return AnyMove{}, err
	}
	r.pos = next
	r.hist.Push(uint64(r.pos.Hash()))
	return m, nil
}

// randomSetup starts from the canonical ordering and shuffles it, mirroring
// moverand.rs's random_setup (setup_moves(color).next().unwrap() then
// pieces.shuffle(rng)).
func (r *RandomPlayer) randomSetup() SetupMove {
	sm, _ := movegen.NewSetupMoveIterator(r.pos.SideToMove()).Next()
	r.rng.Shuffle(len(sm.Pieces), func(i, j int) {
		sm.Pieces[i], sm.Pieces[j] = sm.Pieces[j], sm.Pieces[i]
	})
	return sm
}

// randomRegular picks uniformly among the pseudomoves that don't leave the
// mover's own Wazir immediately capturable, falling back to a uniform
// choice over every pseudomove if none are safe (e.g. already in check
// with no escape).
func (r *RandomPlayer) randomRegular() RegularMove {
	color := r.pos.SideToMove()
	moves := movegen.RegularPseudomoves(r.pos, color).ToSlice()

	var safe []RegularMove
	for _, mov := range moves {
		next, err := r.pos.MakeRegularMove(mov)
		if err != nil {
			continue
		}
		if next.Stage() == position.End {
			safe = append(safe, mov)
			continue
		}
		if !movegen.InCheck(next, color) {
			safe = append(safe, mov)
		}
	}

	pool := safe
	if len(pool) == 0 {
		pool = moves
	}
	return pool[r.rng.Intn(len(pool))]
}
