package game

import "fmt"

// Settings is the part of the configuration a game instance needs.
type Settings struct {
	FoodAvoidsSnake bool
	Seed            int64
	Autopilot       string
	Recorder        RoundRecorder
}

// ManagerFactory builds a fresh, unstarted GameManager per player.
type ManagerFactory func(playerName string) (*GameManager, error)

func NewManagerFactory(settings Settings) ManagerFactory {
	return func(playerName string) (*GameManager, error) {
		rules := DefaultRules()
		rules.RerollFood = settings.FoodAvoidsSnake
		engine := NewEngine(rules, NewRandomSpawner(rules.GridSize, settings.Seed))

		opts := []Option{}
		if settings.Recorder != nil {
			opts = append(opts, WithRecorder(settings.Recorder, playerName))
		}
		if settings.Autopilot != "" {
			strategy, err := NewStrategy(settings.Autopilot, rules.GridSize)
			if err != nil {
				return nil, fmt.Errorf("autopilot: %w", err)
			}
			opts = append(opts, WithStrategy(strategy))
		}

		gm := NewGameManager(engine, opts...)
		gm.PlayerName = playerName
		return gm, nil
	}
}
