package game

import "time"

type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	}
	return "running"
}

// GameState is one immutable snapshot of a round. Transitions return a new
// value and never write through the Snake slice of the old one.
type GameState struct {
	Snake     []Position // head first
	Food      Position
	Direction Direction
	// Heading is the direction of the last move actually made. Once the
	// snake has a body, turning back against it is refused even if Direction
	// changed since.
	Heading   Direction
	Score     int
	HighScore int
	Speed     time.Duration
	GameOver  bool
	Paused    bool
}

func (s GameState) Head() Position {
	return s.Snake[0]
}

func (s GameState) Len() int {
	return len(s.Snake)
}

// Occupies reports whether any snake segment sits on p.
func (s GameState) Occupies(p Position) bool {
	for _, segment := range s.Snake {
		if segment == p {
			return true
		}
	}
	return false
}

func (s GameState) Status() Status {
	switch {
	case s.GameOver:
		return StatusGameOver
	case s.Paused:
		return StatusPaused
	}
	return StatusRunning
}

// Turn points the snake in d unless d reverses the current direction.
func (s GameState) Turn(d Direction) GameState {
	if s.reverses(d) {
		return s
	}
	s.Direction = d
	return s
}

// reverses reports whether d turns back on the snake. A snake with a body
// also refuses the reverse of its last move, so two turns queued between
// ticks cannot fold the head into the neck.
func (s GameState) reverses(d Direction) bool {
	if d == s.Direction.Opposite() {
		return true
	}
	return s.Len() > 1 && d == s.Heading.Opposite()
}

// Frame is the read-only view handed to renderers.
type Frame struct {
	Head       Position
	Body       []Position
	Food       Position
	Direction  Direction
	Score      int
	HighScore  int
	Length     int
	Speed      time.Duration
	Paused     bool
	GameOver   bool
	FinalScore int
}

func (s GameState) Frame() Frame {
	body := make([]Position, len(s.Snake)-1)
	copy(body, s.Snake[1:])

	f := Frame{
		Head:      s.Head(),
		Body:      body,
		Food:      s.Food,
		Direction: s.Direction,
		Score:     s.Score,
		HighScore: s.HighScore,
		Length:    len(s.Snake),
		Speed:     s.Speed,
		Paused:    s.Paused,
		GameOver:  s.GameOver,
	}
	if s.GameOver {
		f.FinalScore = s.Score
	}
	return f
}
