package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const nameCharLimit = 20

var (
	focusedColor = lipgloss.Color("205")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = blurredStyle

	submitButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(focusedColor).
				Padding(0, 1)
)

// SetupModel asks for the name the rounds are recorded under.
type SetupModel struct {
	nameInput   textinput.Model
	defaultName string
	width       int
	height      int
}

func NewInitialSetupModel(defaultName string, w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Focus()
	ti.CharLimit = nameCharLimit
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput:   ti,
		defaultName: defaultName,
		width:       w,
		height:      h,
	}
}

// Init starts the cursor blinking.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			name := m.Name()
			return m, func() tea.Msg { return SetupSubmitMsg{Name: name} }
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// Name is the trimmed input, or the default name when nothing was typed.
func (m SetupModel) Name() string {
	if name := strings.TrimSpace(m.nameInput.Value()); name != "" {
		return name
	}
	return m.defaultName
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder
	b.WriteString(center(focusedStyle.Render("What should the leaderboard call you?")))
	b.WriteString("\n\n")
	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")
	b.WriteString(center(submitButtonStyle.Render("Start")))
	b.WriteString("\n\n")
	b.WriteString(center(helpStyle.Render("(enter to start, esc to go back, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
