package game

// CautiousStrategy chases food like GreedyStrategy but refuses moves into
// pockets too small to hold the snake.
type CautiousStrategy struct {
	GridSize int
}

func (c *CautiousStrategy) NextDirection(s GameState) Direction {
	moves := safeMoves(s, c.GridSize)
	if len(moves) == 0 {
		return s.Direction
	}

	var roomy []move
	bestArea := -1
	roomiest := moves[0].Direction
	for _, m := range moves {
		area := reachableArea(s, m.Target, c.GridSize)
		if area >= s.Len() {
			roomy = append(roomy, m)
		}
		if area > bestArea {
			bestArea = area
			roomiest = m.Direction
		}
	}

	if len(roomy) == 0 {
		return roomiest
	}
	return closestToFood(s, roomy)
}
