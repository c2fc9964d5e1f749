package config

// searchConfiguration is the engine's exported Hyperparameters surface
// (spec.md §6): transposition/PV table sizing and the time-allocation
// decay constant, plus a handful of search toggles useful for testing
// (disabling the TT to compare against a naive negamax, per spec.md §8).
type searchConfiguration struct {
	TtSizeMb      int
	PvTableSizeMb int

	UseTT      bool
	UsePVTable bool
	UseQuiescence bool

	// TimeDecay is the fraction of remaining time allotted to the next
	// move (spec.md §4.10 / clock.AllocateMoveTime).
	TimeDecay float64

	MaxSearchDepth  int
	MaxMovesInGame  int
	CheckTimeoutNodes int64

	BookPath   string
	BookFile   string
	BookFormat string
}

func init() {
	Settings.Search.TtSizeMb = 64
	Settings.Search.PvTableSizeMb = 16

	Settings.Search.UseTT = true
	Settings.Search.UsePVTable = true
	Settings.Search.UseQuiescence = true

	Settings.Search.TimeDecay = 0.05

	Settings.Search.MaxSearchDepth = 128
	Settings.Search.MaxMovesInGame = 1000
	Settings.Search.CheckTimeoutNodes = 2047

	Settings.Search.BookPath = "./book"
	Settings.Search.BookFile = ""
	Settings.Search.BookFormat = "base128"
}

func setupSearch() {}
