package game

import (
	"math/rand"
	"sync"
	"time"
)

// FoodSpawner picks the cell for the next piece of food.
type FoodSpawner interface {
	Spawn() Position
}

// RandomSpawner returns uniformly random cells. It does not look at the
// snake; the engine decides whether to re-roll.
type RandomSpawner struct {
	mu   sync.Mutex
	rng  *rand.Rand
	size int
}

// NewRandomSpawner seeds from the clock when seed is 0.
func NewRandomSpawner(size int, seed int64) *RandomSpawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSpawner{
		rng:  rand.New(rand.NewSource(seed)),
		size: size,
	}
}

func (r *RandomSpawner) Spawn() Position {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Position{X: r.rng.Intn(r.size), Y: r.rng.Intn(r.size)}
}

// SequenceSpawner replays fixed positions, repeating the last one forever.
type SequenceSpawner struct {
	mu        sync.Mutex
	positions []Position
	next      int
}

func NewSequenceSpawner(positions ...Position) *SequenceSpawner {
	return &SequenceSpawner{positions: positions}
}

func (s *SequenceSpawner) Spawn() Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.positions) == 0 {
		return Position{}
	}
	p := s.positions[min(s.next, len(s.positions)-1)]
	s.next++
	return p
}
