package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type introChoice int

const (
	choicePlay introChoice = iota
	choiceLeaderboard
)

var introChoices = []string{"Play", "Leaderboard"}

// IntroModel is the main menu.
type IntroModel struct {
	selected introChoice
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: choicePlay, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.selected = (m.selected + introChoice(len(introChoices)) - 1) % introChoice(len(introChoices))
		case "right", "l", "tab":
			m.selected = (m.selected + 1) % introChoice(len(introChoices))
		case "enter":
			selected := m.selected
			return m, func() tea.Msg { return IntroSubmitMsg{Choice: selected} }
		}
	}
	return m, nil
}

var snakeAscii = `
 ███████ ███    ██  █████  ██   ██ ███████
 ██      ████   ██ ██   ██ ██  ██  ██
 ███████ ██ ██  ██ ███████ █████   █████
      ██ ██  ██ ██ ██   ██ ██  ██  ██
 ███████ ██   ████ ██   ██ ██   ██ ███████

        ▶██████████████████    ●
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(snakeColor)

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(accentColor).
					Foreground(lipgloss.Color("0"))

	introHintStyle = lipgloss.NewStyle().Faint(true)
)

func (m IntroModel) View() string {
	buttons := make([]string, 0, len(introChoices))
	for i, label := range introChoices {
		if introChoice(i) == m.selected {
			buttons = append(buttons, introSelectedButtonStyle.Render(label))
			continue
		}
		buttons = append(buttons, introButtonStyle.Render(label))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		asciiStyle.Render(snakeAscii),
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
		introHintStyle.Render("←/→ to choose, enter to confirm, q to quit"),
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
