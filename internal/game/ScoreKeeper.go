package game

import (
	"context"

	"github.com/charmbracelet/log"
)

// RoundStore persists finished rounds.
type RoundStore interface {
	SaveRound(ctx context.Context, round Round) error
}

// ScoreKeeper moves finished rounds off the game loop and into a RoundStore.
type ScoreKeeper struct {
	store          RoundStore
	finishedRounds chan Round
}

func NewScoreKeeper(store RoundStore) *ScoreKeeper {
	return &ScoreKeeper{
		store:          store,
		finishedRounds: make(chan Round, finishedRoundsBacklog),
	}
}

// Record queues a round without blocking. It reports false when the backlog
// is full and the round was dropped.
func (keeper *ScoreKeeper) Record(round Round) bool {
	select {
	case keeper.finishedRounds <- round:
		return true
	default:
		log.Warn("Score backlog full, dropping round", "player", round.PlayerName, "score", round.Score)
		return false
	}
}

// Run persists queued rounds until ctx is done, then flushes what is left.
func (keeper *ScoreKeeper) Run(ctx context.Context) {
	for {
		select {
		case round := <-keeper.finishedRounds:
			keeper.save(ctx, round)
		case <-ctx.Done():
			keeper.drain()
			return
		}
	}
}

func (keeper *ScoreKeeper) drain() {
	for {
		select {
		case round := <-keeper.finishedRounds:
			keeper.save(context.Background(), round)
		default:
			return
		}
	}
}

func (keeper *ScoreKeeper) save(ctx context.Context, round Round) {
	if err := keeper.store.SaveRound(ctx, round); err != nil {
		log.Error("Round persist failed", "player", round.PlayerName, "error", err)
		return
	}
	log.Debug("Round saved", "player", round.PlayerName, "score", round.Score)
}
