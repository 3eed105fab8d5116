package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrStrategyNotFound = errors.New("bot strategy not found")

// Strategy steers the snake in place of the keyboard.
type Strategy interface {
	NextDirection(s GameState) Direction
}

// NewStrategy resolves an autopilot name: "greedy", "cautious", "lua" for the
// bundled script, or a path to a .lua file.
func NewStrategy(name string, gridSize int) (Strategy, error) {
	switch strings.ToLower(name) {
	case "greedy":
		return &GreedyStrategy{GridSize: gridSize}, nil
	case "cautious":
		return &CautiousStrategy{GridSize: gridSize}, nil
	case "lua":
		return NewLuaStrategy("bundled", DefaultLuaStrategy, gridSize)
	}

	if strings.HasSuffix(name, ".lua") {
		strategy, err := NewLuaStrategyFromFile(name, gridSize)
		if err != nil {
			return nil, fmt.Errorf("load strategy %s: %w", name, err)
		}
		return strategy, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrStrategyNotFound, name)
}
