package game

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// GameTickMsg carries the frame produced by a tick or an input.
type GameTickMsg struct {
	Frame Frame
}

// GameStoppedMsg is delivered once the game loop has shut down.
type GameStoppedMsg struct{}

// RoundRecorder takes finished rounds. Record must not block.
type RoundRecorder interface {
	Record(round Round) bool
}

type Option func(*GameManager)

// WithStrategy lets a bot steer and restart rounds on its own.
func WithStrategy(strategy Strategy) Option {
	return func(gm *GameManager) { gm.strategy = strategy }
}

// WithRecorder hands every finished round, tagged with playerName, to recorder.
func WithRecorder(recorder RoundRecorder, playerName string) Option {
	return func(gm *GameManager) {
		gm.recorder = recorder
		gm.PlayerName = playerName
	}
}

// GameManager runs one game: a ticker at the current speed and an input
// channel, both drained by a single goroutine so every transition is
// serialized. Readers see whole states through State and Updates.
type GameManager struct {
	PlayerName string

	engine   *Engine
	strategy Strategy
	recorder RoundRecorder

	state   atomic.Pointer[GameState]
	inputs  chan Key
	updates chan tea.Msg

	mu       sync.Mutex
	started  bool
	cancel   context.CancelFunc
	stopOnce sync.Once
	done     chan struct{}
}

func NewGameManager(engine *Engine, opts ...Option) *GameManager {
	gm := &GameManager{
		engine:  engine,
		inputs:  make(chan Key, inputChannelSize),
		updates: make(chan tea.Msg, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(gm)
	}

	initial := engine.NewRound(0)
	gm.state.Store(&initial)
	return gm
}

// State returns the latest published state.
func (gm *GameManager) State() GameState {
	return *gm.state.Load()
}

// Updates delivers a GameTickMsg after every transition. Only the newest
// message is kept; the channel is closed when the loop stops.
func (gm *GameManager) Updates() <-chan tea.Msg {
	return gm.updates
}

// Send queues a key for the loop. It reports false once the game has stopped.
func (gm *GameManager) Send(k Key) bool {
	select {
	case <-gm.done:
		return false
	default:
	}

	select {
	case gm.inputs <- k:
		return true
	case <-gm.done:
		return false
	}
}

// Start launches the game loop. The ticker and the input listener live until
// ctx is cancelled or Stop is called; both are released together.
func (gm *GameManager) Start(ctx context.Context) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if gm.started {
		return
	}
	gm.started = true

	loopCtx, cancel := context.WithCancel(ctx)
	gm.cancel = cancel
	go gm.StartGameLoop(loopCtx)
}

// Stop ends the loop and waits for it to release its resources. A manager
// that was never started is simply marked done.
func (gm *GameManager) Stop() {
	gm.mu.Lock()
	if !gm.started {
		gm.started = true
		gm.mu.Unlock()
		gm.shutdown()
		return
	}
	cancel := gm.cancel
	gm.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	<-gm.done
}

// Done is closed once the loop has exited.
func (gm *GameManager) Done() <-chan struct{} {
	return gm.done
}

func (gm *GameManager) StartGameLoop(ctx context.Context) {
	defer gm.shutdown()

	current := gm.State()
	ticker := time.NewTicker(current.Speed)
	defer ticker.Stop()

	log.Debug("Game loop started.", "player", gm.PlayerName)
	gm.publish(current)

	for {
		select {
		case <-ctx.Done():
			log.Debug("Game loop stopped.", "player", gm.PlayerName)
			return
		case <-ticker.C:
			next := gm.processGameTick(current)
			current = gm.commit(current, next, ticker)
		case k := <-gm.inputs:
			next := gm.engine.ApplyKey(current, k)
			current = gm.commit(current, next, ticker)
		}
	}
}

func (gm *GameManager) processGameTick(current GameState) GameState {
	if gm.strategy == nil {
		return gm.engine.Advance(current)
	}

	if current.GameOver {
		return gm.engine.NewRound(current.HighScore)
	}
	if current.Paused {
		return current
	}
	return gm.engine.Advance(current.Turn(gm.strategy.NextDirection(current)))
}

// commit publishes next, re-arms the ticker when the speed changed and
// reports a round that just ended.
func (gm *GameManager) commit(prev, next GameState, ticker *time.Ticker) GameState {
	if next.Speed != prev.Speed {
		ticker.Reset(next.Speed)
	}

	if next.GameOver && !prev.GameOver {
		log.Info("Round over", "player", gm.PlayerName, "score", next.Score, "high_score", next.HighScore)
		if gm.recorder != nil {
			gm.recorder.Record(Round{
				PlayerName: gm.PlayerName,
				Score:      next.Score,
				Length:     next.Len(),
				CreatedAt:  time.Now(),
			})
		}
	}

	gm.publish(next)
	return next
}

func (gm *GameManager) publish(s GameState) {
	gm.state.Store(&s)

	msg := GameTickMsg{Frame: s.Frame()}
	select {
	case gm.updates <- msg:
		return
	default:
	}

	// replace the stale message nobody picked up yet
	select {
	case <-gm.updates:
	default:
	}
	select {
	case gm.updates <- msg:
	default:
	}
}

// shutdown releases everything the loop owned. Safe to call more than once.
func (gm *GameManager) shutdown() {
	gm.stopOnce.Do(func() {
		close(gm.done)
		close(gm.updates)
		gm.closeStrategy()
	})
}

func (gm *GameManager) closeStrategy() {
	if closer, ok := gm.strategy.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Warn("Closing strategy failed", "error", err)
		}
	}
}
