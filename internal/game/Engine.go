package game

// Engine holds the rules and the food spawner. Its methods are pure
// transitions from one GameState to the next.
type Engine struct {
	Rules   Rules
	Spawner FoodSpawner
}

func NewEngine(rules Rules, spawner FoodSpawner) *Engine {
	return &Engine{Rules: rules, Spawner: spawner}
}

// NewRound returns the initial state of a round. Only the high score
// survives from the previous one.
func (e *Engine) NewRound(highScore int) GameState {
	snake := []Position{e.Rules.Spawn}
	return GameState{
		Snake:     snake,
		Food:      e.spawnFood(snake),
		Direction: Right,
		Heading:   Right,
		Score:     0,
		HighScore: highScore,
		Speed:     e.Rules.InitialSpeed,
		GameOver:  false,
		Paused:    false,
	}
}

// Advance moves the snake one cell. It is a no-op while paused or after
// game over.
func (e *Engine) Advance(s GameState) GameState {
	if s.GameOver || s.Paused {
		return s
	}

	head := s.Head().Step(s.Direction)
	if e.collides(s, head) {
		s.GameOver = true
		s.HighScore = max(s.HighScore, s.Score)
		return s
	}

	moved := make([]Position, 0, len(s.Snake)+1)
	moved = append(moved, head)
	moved = append(moved, s.Snake...)
	s.Heading = s.Direction

	if head == s.Food {
		s.Snake = moved
		s.Food = e.spawnFood(moved)
		s.Score += e.Rules.FoodReward
		s.Speed = max(s.Speed-e.Rules.SpeedStep, e.Rules.MinSpeed)
		return s
	}

	s.Snake = moved[:len(moved)-1]
	return s
}

// collides checks the grid bounds, then every segment behind the head.
func (e *Engine) collides(s GameState, head Position) bool {
	if !head.Inside(e.Rules.GridSize) {
		return true
	}
	for i := 1; i < len(s.Snake); i++ {
		if s.Snake[i] == head {
			return true
		}
	}
	return false
}

func (e *Engine) spawnFood(snake []Position) Position {
	food := e.Spawner.Spawn()
	if !e.Rules.RerollFood {
		return food
	}

	occupied := make(map[Position]struct{}, len(snake))
	for _, segment := range snake {
		occupied[segment] = struct{}{}
	}
	for range maxFoodRerolls {
		if _, taken := occupied[food]; !taken {
			return food
		}
		food = e.Spawner.Spawn()
	}

	for y := 0; y < e.Rules.GridSize; y++ {
		for x := 0; x < e.Rules.GridSize; x++ {
			p := Position{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				return p
			}
		}
	}
	// board is full
	return food
}
