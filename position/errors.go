package position

// InvalidMoveError is returned by MakeMove/MakeSetupMove/MakeRegularMove
// and MoveFromShortMove whenever a well-typed move cannot legally be
// applied to the current position (spec.md §7, category 1).
type InvalidMoveError struct {
	Reason string
}

func (e *InvalidMoveError) Error() string {
	if e.Reason == "" {
		return "invalid move"
	}
	return "invalid move: " + e.Reason
}

func invalidMove(reason string) error {
	return &InvalidMoveError{Reason: reason}
}
