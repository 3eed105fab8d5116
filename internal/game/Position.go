package game

import (
	"errors"
	"strings"
)

var ErrInvalidDirection = errors.New("invalid direction")

type Position struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Inside reports whether p lies on a size x size grid.
func (p Position) Inside(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return "UNKNOWN"
}

// ParseDirection accepts the names produced by String, case-insensitively.
func ParseDirection(name string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return Up, ErrInvalidDirection
}

// DirectionFromDelta maps a unit vector back to its direction.
func DirectionFromDelta(dx, dy int) (Direction, error) {
	for _, d := range Directions {
		ddx, ddy := d.Delta()
		if ddx == dx && ddy == dy {
			return d, nil
		}
	}
	return Up, ErrInvalidDirection
}
