package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeLeaderboard struct {
	rounds []game.Round
	err    error
}

func (f fakeLeaderboard) TopRounds(_ context.Context, limit, offset int) ([]game.Round, error) {
	if f.err != nil {
		return nil, f.err
	}
	end := min(offset+limit, len(f.rounds))
	return f.rounds[offset:end], nil
}

func (f fakeLeaderboard) CountRounds(context.Context) (int, error) {
	return len(f.rounds), f.err
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (ControllerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	c, ok := next.(ControllerModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return c, cmd
}

func TestControllerPlayFlow(t *testing.T) {
	var created *game.GameManager
	factory := func(name string) (*game.GameManager, error) {
		gm, err := game.NewManagerFactory(game.Settings{Seed: 7})(name)
		created = gm
		return gm, err
	}

	m := NewControllerModel(context.Background(), factory, nil, "anonymous", 120, 40)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on the intro produced no command")
	}
	m, _ = update(t, m, cmd())
	if m.CurrentScreen != SetupScreen {
		t.Fatalf("screen = %d, want setup", m.CurrentScreen)
	}

	// q is typed into the name, not treated as quit
	m, _ = update(t, m, runeKey('q'))
	if m.CurrentScreen != SetupScreen {
		t.Fatalf("q left the setup screen")
	}

	m, _ = update(t, m, SetupSubmitMsg{Name: "ada"})
	if m.CurrentScreen != GameScreen || created == nil {
		t.Fatalf("game was not started")
	}
	if created.PlayerName != "ada" {
		t.Fatalf("player = %q, want ada", created.PlayerName)
	}

	_, cmd = update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatalf("q in game did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q in game did not quit")
	}
	select {
	case <-created.Done():
	case <-time.After(time.Second):
		t.Fatalf("quitting left the game loop running")
	}
}

func TestControllerIgnoresRepeatedSubmit(t *testing.T) {
	var created []*game.GameManager
	factory := func(name string) (*game.GameManager, error) {
		gm, err := game.NewManagerFactory(game.Settings{Seed: 7})(name)
		created = append(created, gm)
		return gm, err
	}
	m := NewControllerModel(context.Background(), factory, nil, "anonymous", 120, 40)

	m, _ = update(t, m, SetupSubmitMsg{Name: "ada"})
	m, _ = update(t, m, SetupSubmitMsg{Name: "ada"})
	if len(created) != 1 {
		t.Fatalf("created %d games, want 1", len(created))
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	select {
	case <-created[0].Done():
	case <-time.After(time.Second):
		t.Fatalf("quitting left the game loop running")
	}
}

func TestControllerFactoryError(t *testing.T) {
	factory := func(string) (*game.GameManager, error) { return nil, errors.New("no such autopilot") }
	m := NewControllerModel(context.Background(), factory, nil, "anonymous", 120, 40)

	m, _ = update(t, m, SetupSubmitMsg{Name: "ada"})
	if view := m.View(); !strings.Contains(view, "no such autopilot") {
		t.Fatalf("error not shown")
	}
}

func TestControllerGameStoppedQuits(t *testing.T) {
	m := NewControllerModel(context.Background(), game.NewManagerFactory(game.Settings{}), nil, "anonymous", 120, 40)
	_, cmd := update(t, m, game.GameStoppedMsg{})
	if cmd == nil {
		t.Fatalf("no command for a stopped game")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("stopped game did not quit")
	}
}

func TestControllerLeaderboardRoundTrip(t *testing.T) {
	board := fakeLeaderboard{rounds: []game.Round{
		{PlayerName: "grace", Score: 120, Length: 13, CreatedAt: time.Now()},
		{PlayerName: "ada", Score: 40, Length: 5, CreatedAt: time.Now()},
	}}
	m := NewControllerModel(context.Background(), game.NewManagerFactory(game.Settings{}), board, "anonymous", 120, 40)

	m, cmd := update(t, m, IntroSubmitMsg{Choice: choiceLeaderboard})
	if m.CurrentScreen != LeaderboardScreen {
		t.Fatalf("screen = %d, want leaderboard", m.CurrentScreen)
	}
	m, _ = update(t, m, cmd())

	view := m.View()
	for _, want := range []string{"grace", "120", "ada", "2 rounds played"} {
		if !strings.Contains(view, want) {
			t.Fatalf("leaderboard is missing %q", want)
		}
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, cmd())
	if m.CurrentScreen != IntroScreen {
		t.Fatalf("screen = %d, want intro", m.CurrentScreen)
	}
}

func TestLeaderboardStates(t *testing.T) {
	disabled := NewLeaderboardModel(nil, 80, 30)
	if disabled.Init() != nil {
		t.Fatalf("disabled leaderboard tried to load")
	}
	if !strings.Contains(disabled.View(), "disabled") {
		t.Fatalf("disabled leaderboard not reported")
	}

	failing := NewLeaderboardModel(fakeLeaderboard{err: errors.New("db locked")}, 80, 30)
	next, _ := failing.Update(failing.Init()())
	if !strings.Contains(next.View(), "db locked") {
		t.Fatalf("load error not shown")
	}

	empty := NewLeaderboardModel(fakeLeaderboard{}, 80, 30)
	next, _ = empty.Update(empty.Init()())
	if !strings.Contains(next.View(), "No rounds played yet.") {
		t.Fatalf("empty leaderboard not reported")
	}
}

func TestSetupNameFallsBack(t *testing.T) {
	m := NewInitialSetupModel("guest", 80, 30)
	if m.Name() != "guest" {
		t.Fatalf("name = %q, want guest", m.Name())
	}

	next, _ := m.Update(runeKey('z'))
	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := cmd().(SetupSubmitMsg); got.Name != "z" {
		t.Fatalf("submitted %q, want z", got.Name)
	}
}
