package game

import "time"

const (
	GridSize     = 20
	InitialSpeed = 150 * time.Millisecond
	SpeedStep    = 5 * time.Millisecond
	MinSpeed     = 50 * time.Millisecond
	FoodReward   = 10

	inputChannelSize      = 10
	finishedRoundsBacklog = 16
	// upper bound on food re-rolls before falling back to a scan of free cells
	maxFoodRerolls = GridSize * GridSize * 4
)

// SpawnPoint is where every round starts.
var SpawnPoint = Position{X: 10, Y: 10}

// Rules are the tunable parameters of a round.
type Rules struct {
	GridSize     int
	InitialSpeed time.Duration
	SpeedStep    time.Duration
	MinSpeed     time.Duration
	FoodReward   int
	Spawn        Position
	// RerollFood keeps spawning food until it lands on a free cell.
	RerollFood bool
}

func DefaultRules() Rules {
	return Rules{
		GridSize:     GridSize,
		InitialSpeed: InitialSpeed,
		SpeedStep:    SpeedStep,
		MinSpeed:     MinSpeed,
		FoodReward:   FoodReward,
		Spawn:        SpawnPoint,
	}
}
