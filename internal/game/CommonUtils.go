package game

import "math"

func GetManhattanDistance(p1, p2 Position) int {
	dx := math.Abs(float64(p1.X - p2.X))
	dy := math.Abs(float64(p1.Y - p2.Y))
	return int(dx + dy)
}

type move struct {
	Direction Direction
	Target    Position
}

// safeMoves lists the turns that survive the next tick, in Directions order.
// The reverse of the current heading is never offered.
func safeMoves(s GameState, gridSize int) []move {
	var moves []move
	for _, dir := range Directions {
		if s.reverses(dir) {
			continue
		}

		target := s.Head().Step(dir)
		if !target.Inside(gridSize) {
			continue
		}
		if hitsBody(s.Snake, target) {
			continue
		}
		moves = append(moves, move{Direction: dir, Target: target})
	}
	return moves
}

func hitsBody(snake []Position, p Position) bool {
	for i := 1; i < len(snake); i++ {
		if snake[i] == p {
			return true
		}
	}
	return false
}
