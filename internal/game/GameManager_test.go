package game

import (
	"context"
	"testing"
	"time"
)

// --- Test Environment Setup ---

const testTickSpeed = 2 * time.Millisecond

func fastRules(spawn Position) Rules {
	rules := DefaultRules()
	rules.InitialSpeed = testTickSpeed
	rules.MinSpeed = time.Millisecond
	rules.SpeedStep = 0
	rules.Spawn = spawn
	return rules
}

type recorderFunc func(Round) bool

func (f recorderFunc) Record(round Round) bool { return f(round) }

func waitForFrame(t *testing.T, gm *GameManager, cond func(Frame) bool) Frame {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg, ok := <-gm.Updates():
			if !ok {
				t.Fatalf("updates closed before the expected frame")
			}
			if tick, isTick := msg.(GameTickMsg); isTick && cond(tick.Frame) {
				return tick.Frame
			}
		case <-timeout:
			t.Fatalf("timed out waiting for frame; last state %+v", gm.State())
		}
	}
}

func TestGameManagerTicksMoveSnake(t *testing.T) {
	gm := NewGameManager(NewEngine(fastRules(Position{X: 2, Y: 10}), NewSequenceSpawner(Position{X: 0, Y: 0})))
	gm.Start(context.Background())
	defer gm.Stop()

	frame := waitForFrame(t, gm, func(f Frame) bool { return f.Head.X >= 5 })
	if frame.Head.Y != 10 {
		t.Fatalf("head drifted off its row: %v", frame.Head)
	}
}

func TestGameManagerPauseSuppressesTicks(t *testing.T) {
	rules := fastRules(Position{X: 2, Y: 10})
	gm := NewGameManager(NewEngine(rules, NewSequenceSpawner(Position{X: 0, Y: 0})))
	gm.Start(context.Background())
	defer gm.Stop()

	if !gm.Send(KeySpace) {
		t.Fatalf("Send refused while running")
	}
	paused := waitForFrame(t, gm, func(f Frame) bool { return f.Paused })

	time.Sleep(20 * testTickSpeed)
	if head := gm.State().Head(); head != paused.Head {
		t.Fatalf("snake moved while paused: %v -> %v", paused.Head, head)
	}
}

func TestGameManagerRecordsFinishedRound(t *testing.T) {
	rounds := make(chan Round, 4)
	recorder := recorderFunc(func(r Round) bool {
		select {
		case rounds <- r:
		default:
		}
		return true
	})

	gm := NewGameManager(
		NewEngine(fastRules(Position{X: GridSize - 1, Y: 0}), NewSequenceSpawner(Position{X: 5, Y: 5})),
		WithRecorder(recorder, "tester"),
	)
	gm.Start(context.Background())
	defer gm.Stop()

	waitForFrame(t, gm, func(f Frame) bool { return f.GameOver })

	select {
	case r := <-rounds:
		if r.PlayerName != "tester" || r.Score != 0 || r.Length != 1 {
			t.Fatalf("unexpected round %+v", r)
		}
	case <-time.After(time.Second):
		t.Fatalf("round was not recorded")
	}

	// a key restarts the round, which runs into the same wall again
	gm.Send(KeyOther)
	select {
	case r := <-rounds:
		if r.Score != 0 || r.Length != 1 {
			t.Fatalf("restart did not reset the round: %+v", r)
		}
	case <-time.After(time.Second):
		t.Fatalf("no second round after restart")
	}
}

func TestGameManagerRearmsTickerOnSpeedChange(t *testing.T) {
	rules := DefaultRules()
	rules.InitialSpeed = 300 * time.Millisecond
	rules.SpeedStep = 280 * time.Millisecond
	rules.MinSpeed = 20 * time.Millisecond
	rules.Spawn = Position{X: 2, Y: 10}

	// first food one cell ahead, the rest out of the way
	gm := NewGameManager(NewEngine(rules, NewSequenceSpawner(Position{X: 3, Y: 10}, Position{X: 0, Y: 0})))
	gm.Start(context.Background())
	defer gm.Stop()

	ate := waitForFrame(t, gm, func(f Frame) bool { return f.Length == 2 })
	if ate.Speed != 20*time.Millisecond {
		t.Fatalf("speed after eating = %v, want 20ms", ate.Speed)
	}
	ateAt := time.Now()

	waitForFrame(t, gm, func(f Frame) bool { return f.Head.X >= ate.Head.X+5 })
	if elapsed := time.Since(ateAt); elapsed >= 250*time.Millisecond {
		t.Fatalf("5 moves took %v after the speed-up, ticker still on the old interval", elapsed)
	}
}

func TestGameManagerStrategyRestartsRounds(t *testing.T) {
	rounds := make(chan Round, 4)
	recorder := recorderFunc(func(r Round) bool {
		select {
		case rounds <- r:
		default:
		}
		return true
	})

	// always turning up from the top row dies on every round
	gm := NewGameManager(
		NewEngine(fastRules(Position{X: 10, Y: 0}), NewSequenceSpawner(Position{X: 5, Y: 5})),
		WithStrategy(fixedStrategy(Up)),
		WithRecorder(recorder, "bot"),
	)
	gm.Start(context.Background())
	defer gm.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-rounds:
		case <-time.After(2 * time.Second):
			t.Fatalf("round %d did not finish", i+1)
		}
	}
}

func TestGameManagerStopReleasesEverything(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gm := NewGameManager(NewEngine(fastRules(SpawnPoint), NewSequenceSpawner(Position{X: 0, Y: 0})))
	gm.Start(ctx)

	cancel()
	select {
	case <-gm.Done():
	case <-time.After(time.Second):
		t.Fatalf("loop did not stop on context cancellation")
	}

	for range gm.Updates() {
	}
	if gm.Send(KeyUp) {
		t.Fatalf("Send accepted a key after stop")
	}
	gm.Stop()
}

func TestGameManagerStopWithoutStart(t *testing.T) {
	gm := NewGameManager(NewEngine(DefaultRules(), NewSequenceSpawner(Position{X: 0, Y: 0})))
	gm.Stop()
	gm.Stop()

	if _, ok := <-gm.Updates(); ok {
		t.Fatalf("updates still open")
	}
}

type fixedStrategy Direction

func (f fixedStrategy) NextDirection(GameState) Direction { return Direction(f) }
