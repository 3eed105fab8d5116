package game

// reachableArea counts the free cells a flood fill from start can reach once
// the head stands on start. The tail cell is treated as free since it moves
// away on the same tick. Cells are capped at the snake length plus one; the
// caller only needs to know whether there is room.
func reachableArea(s GameState, start Position, gridSize int) int {
	blocked := make(map[Position]struct{}, len(s.Snake))
	for _, segment := range s.Snake[:len(s.Snake)-1] {
		blocked[segment] = struct{}{}
	}
	blocked[start] = struct{}{}

	limit := len(s.Snake) + 1
	visited := map[Position]struct{}{start: {}}
	q := []Position{start}
	count := 0

	for len(q) > 0 && count < limit {
		current := q[0]
		q = q[1:]

		for _, dir := range Directions {
			next := current.Step(dir)
			if !next.Inside(gridSize) {
				continue
			}
			if _, ok := visited[next]; ok {
				continue
			}
			if _, ok := blocked[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			q = append(q, next)
			count++
		}
	}
	return min(count, limit)
}
