package config

// evalConfiguration configures which evaluator the engine constructs and
// a few tunables shared by both the linear and NNUE evaluators.
type evalConfiguration struct {
	Evaluator string // "linear" or "nnue"

	ToMoveBonus int // small tempo bonus added for the side to move

	NNUEWeightsPath string
	NNUEScale       float32
}

func init() {
	Settings.Eval.Evaluator = "linear"
	Settings.Eval.ToMoveBonus = 15
	Settings.Eval.NNUEWeightsPath = ""
	Settings.Eval.NNUEScale = 400.0
}

func setupEval() {}
