package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	voidColor   = lipgloss.Color("233")
	snakeColor  = lipgloss.Color("42")
	headColor   = lipgloss.Color("46")
	foodColor   = lipgloss.Color("196")
	accentColor = lipgloss.Color("87")

	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accentColor).
			Padding(1, 3).
			Align(lipgloss.Center)

	voidCell = lipgloss.NewStyle().Background(voidColor).Render("  ")
	bodyCell = lipgloss.NewStyle().Background(voidColor).Foreground(snakeColor).Render("██")
	foodCell = lipgloss.NewStyle().Background(voidColor).Foreground(foodColor).Render("● ")

	headStyle = lipgloss.NewStyle().Background(voidColor).Foreground(headColor).Bold(true)

	headRunes = map[game.Direction]string{
		game.Up:    "▲",
		game.Down:  "▼",
		game.Left:  "◀",
		game.Right: "▶",
	}
)

// two terminal columns per cell keep the board roughly square
const cellWidth = 2

// GameViewModel renders one GameManager and forwards key presses to it.
type GameViewModel struct {
	gameManager *game.GameManager
	frame       game.Frame
	keys        KeyMap
	help        help.Model
	playerName  string
	width       int
	height      int
}

func NewGameModel(gm *game.GameManager, playerName string, width, height int) GameViewModel {
	return GameViewModel{
		gameManager: gm,
		frame:       gm.State().Frame(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		playerName:  playerName,
		width:       width,
		height:      height,
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

// listenForGameUpdates blocks on the manager's update channel. A closed
// channel turns into GameStoppedMsg.
func (m GameViewModel) listenForGameUpdates() tea.Cmd {
	updates := m.gameManager.Updates()
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return game.GameStoppedMsg{}
		}
		return msg
	}
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		m.gameManager.Send(m.keys.GameKey(msg))
		return m, nil

	case game.GameTickMsg:
		m.frame = msg.Frame
		return m, m.listenForGameUpdates()
	}
	return m, nil
}

func (m GameViewModel) View() string {
	board := mapViewStyle.Render(m.renderBoard())
	panel := statusPanelStyle.Render(m.renderStatusPanel())
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, panel)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m GameViewModel) renderBoard() string {
	boardWidth := game.GridSize * cellWidth
	boardHeight := game.GridSize

	switch {
	case m.frame.GameOver:
		return lipgloss.Place(boardWidth, boardHeight, lipgloss.Center, lipgloss.Center,
			overlayStyle.Render(fmt.Sprintf("GAME OVER\n\nFinal Score: %d\n\n%s",
				m.frame.FinalScore,
				lipgloss.NewStyle().Faint(true).Render("press any key to play again"))))
	case m.frame.Paused:
		return lipgloss.Place(boardWidth, boardHeight, lipgloss.Center, lipgloss.Center,
			overlayStyle.Render("PAUSED\n\n"+lipgloss.NewStyle().Faint(true).Render("press SPACE to resume")))
	}

	body := make(map[game.Position]struct{}, len(m.frame.Body))
	for _, segment := range m.frame.Body {
		body[segment] = struct{}{}
	}

	var sb strings.Builder
	for y := 0; y < game.GridSize; y++ {
		for x := 0; x < game.GridSize; x++ {
			p := game.Position{X: x, Y: y}
			if p == m.frame.Head {
				sb.WriteString(headStyle.Render(headRunes[m.frame.Direction] + " "))
				continue
			}
			if _, ok := body[p]; ok {
				sb.WriteString(bodyCell)
				continue
			}
			if p == m.frame.Food {
				sb.WriteString(foodCell)
				continue
			}
			sb.WriteString(voidCell)
		}
		if y < game.GridSize-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderStatusPanel draws the scores and the controls.
func (m GameViewModel) renderStatusPanel() string {
	var statusContent strings.Builder
	heading := lipgloss.NewStyle().Bold(true)

	statusContent.WriteString(heading.Render("--- Player ---") + "\n")
	statusContent.WriteString(lipgloss.NewStyle().Foreground(snakeColor).Render("● ") + m.playerName + "\n\n")

	statusContent.WriteString(heading.Render("--- Score ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Score: %d\n", m.frame.Score))
	statusContent.WriteString(fmt.Sprintf("High Score: %d\n", m.frame.HighScore))
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", m.frame.Length))
	statusContent.WriteString(fmt.Sprintf("Speed: %dms\n", m.frame.Speed.Milliseconds()))
	statusContent.WriteString(fmt.Sprintf("Direction: %s\n", headRunes[m.frame.Direction]))

	statusContent.WriteString("\n" + heading.Render("--- Controls ---") + "\n")
	statusContent.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	return statusContent.String()
}
