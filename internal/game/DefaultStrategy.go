package game

import "math"

// GreedyStrategy heads for the food along the shortest Manhattan path,
// avoiding walls and its own body one move ahead.
type GreedyStrategy struct {
	GridSize int
}

func (g *GreedyStrategy) NextDirection(s GameState) Direction {
	moves := safeMoves(s, g.GridSize)
	if len(moves) == 0 {
		return s.Direction // trapped
	}
	return closestToFood(s, moves)
}

// closestToFood prefers the current direction on ties.
func closestToFood(s GameState, moves []move) Direction {
	best := moves[0].Direction
	bestDist := math.MaxInt32
	for _, m := range moves {
		dist := GetManhattanDistance(m.Target, s.Food) * 2
		if m.Direction == s.Direction {
			dist--
		}
		if dist < bestDist {
			bestDist = dist
			best = m.Direction
		}
	}
	return best
}
