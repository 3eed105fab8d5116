package ui

import (
	"context"

	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
	LeaderboardScreen
)

// Messages for state transitions
type IntroSubmitMsg struct {
	Choice introChoice
}

type SetupSubmitMsg struct {
	Name string
}

// ControllerModel owns the screens of one terminal session and the
// GameManager started from it.
type ControllerModel struct {
	CurrentScreen Screen

	IntroModel       tea.Model
	SetupModel       tea.Model
	GameModel        tea.Model
	LeaderboardModel tea.Model

	ctx         context.Context
	newGame     game.ManagerFactory
	leaderboard Leaderboard
	gameManager *game.GameManager
	startErr    error

	ScreenWidth  int
	ScreenHeight int
}

// NewControllerModel wires the screens together. Game loops are started with
// ctx, so cancelling it stops them. leaderboard may be nil.
func NewControllerModel(ctx context.Context, newGame game.ManagerFactory, leaderboard Leaderboard, defaultName string, screenWidth, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(defaultName, screenWidth, screenHeight),

		ctx:          ctx,
		newGame:      newGame,
		leaderboard:  leaderboard,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		if m.startErr != nil {
			return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center,
				"Could not start the game: "+m.startErr.Error()+"\n\npress q to quit")
		}
		return "Game Loading..."
	case LeaderboardScreen:
		return m.LeaderboardModel.View()
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// --- 1. Global keys ---
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "q":
			// q is a valid letter in a name
			if m.CurrentScreen != SetupScreen {
				return m.quit()
			}
		case "esc":
			if m.CurrentScreen == SetupScreen {
				m.CurrentScreen = IntroScreen
				return m, nil
			}
		}
	}

	// --- 2. State transitions ---
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
		return m, m.resizeAll(msg)

	case IntroSubmitMsg:
		switch msg.Choice {
		case choicePlay:
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		case choiceLeaderboard:
			m.CurrentScreen = LeaderboardScreen
			m.LeaderboardModel = NewLeaderboardModel(m.leaderboard, m.ScreenWidth, m.ScreenHeight)
			return m, m.LeaderboardModel.Init()
		}
		return m, nil

	case SetupSubmitMsg:
		// a second enter may queue another submit before the screen changes
		if m.gameManager != nil || m.startErr != nil {
			return m, nil
		}
		m.CurrentScreen = GameScreen
		gm, err := m.newGame(msg.Name)
		if err != nil {
			log.Error("Could not create game", "player", msg.Name, "error", err)
			m.startErr = err
			return m, nil
		}
		gm.Start(m.ctx)
		log.Info("Game started", "player", msg.Name)

		m.gameManager = gm
		m.GameModel = NewGameModel(gm, msg.Name, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()

	case LeaderboardClosedMsg:
		m.CurrentScreen = IntroScreen
		return m, m.IntroModel.Init()

	case game.GameStoppedMsg:
		log.Debug("Game stopped, closing session")
		return m, tea.Quit
	}

	// --- 3. Delegate everything else to the active screen ---
	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case SetupScreen:
		m.SetupModel, cmd = m.SetupModel.Update(msg)
	case GameScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
	case LeaderboardScreen:
		m.LeaderboardModel, cmd = m.LeaderboardModel.Update(msg)
	}
	return m, cmd
}

func (m ControllerModel) quit() (tea.Model, tea.Cmd) {
	if m.gameManager != nil {
		m.gameManager.Stop()
	}
	return m, tea.Quit
}

func (m *ControllerModel) resizeAll(msg tea.WindowSizeMsg) tea.Cmd {
	var cmds []tea.Cmd
	for _, model := range []*tea.Model{&m.IntroModel, &m.SetupModel, &m.GameModel, &m.LeaderboardModel} {
		if *model == nil {
			continue
		}
		var cmd tea.Cmd
		*model, cmd = (*model).Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
