package game

// Key is an input event already stripped of its terminal encoding.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
)

// Direction reports the direction an arrow key asks for.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return Up, false
}

// ParseKey maps key names from terminals and browsers onto a Key.
func ParseKey(name string) Key {
	switch name {
	case "up", "ArrowUp", "w":
		return KeyUp
	case "down", "ArrowDown", "s":
		return KeyDown
	case "left", "ArrowLeft", "a":
		return KeyLeft
	case "right", "ArrowRight", "d":
		return KeyRight
	case " ", "space", "Space":
		return KeySpace
	}
	return KeyOther
}

// ApplyKey is the input half of the state machine: any key restarts after
// game over, space toggles pause, arrows turn, anything else is ignored.
// Space counts as any key once the round is over; it restarts rather than
// pausing the finished round.
func (e *Engine) ApplyKey(s GameState, k Key) GameState {
	if s.GameOver {
		return e.NewRound(s.HighScore)
	}

	if k == KeySpace {
		s.Paused = !s.Paused
		return s
	}

	if d, ok := k.Direction(); ok {
		return s.Turn(d)
	}
	return s
}
