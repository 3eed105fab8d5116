package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	leaderboardSize    = 10
	leaderboardTimeout = 2 * time.Second
)

// Leaderboard is the read side of the round store.
type Leaderboard interface {
	TopRounds(ctx context.Context, limit, offset int) ([]game.Round, error)
	CountRounds(ctx context.Context) (int, error)
}

type leaderboardLoadedMsg struct {
	rounds []game.Round
	total  int
	err    error
}

// LeaderboardClosedMsg asks the controller to go back to the intro screen.
type LeaderboardClosedMsg struct{}

var (
	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

type LeaderboardModel struct {
	source Leaderboard
	rounds []game.Round
	total  int
	err    error
	loaded bool
	width  int
	height int
}

// NewLeaderboardModel accepts a nil source when the leaderboard is disabled.
func NewLeaderboardModel(source Leaderboard, w, h int) LeaderboardModel {
	return LeaderboardModel{source: source, width: w, height: h}
}

func (m LeaderboardModel) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	source := m.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
		defer cancel()

		rounds, err := source.TopRounds(ctx, leaderboardSize, 0)
		if err != nil {
			return leaderboardLoadedMsg{err: err}
		}
		total, err := source.CountRounds(ctx)
		return leaderboardLoadedMsg{rounds: rounds, total: total, err: err}
	}
}

func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case leaderboardLoadedMsg:
		m.rounds, m.total, m.err = msg.rounds, msg.total, msg.err
		m.loaded = true
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return LeaderboardClosedMsg{} }
		}
	}
	return m, nil
}

func (m LeaderboardModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("👑 LEADERBOARD 👑")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC or ENTER to go back.")

	var body string
	switch {
	case m.source == nil:
		body = "Leaderboard is disabled on this server."
	case !m.loaded:
		body = "Loading..."
	case m.err != nil:
		body = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Could not load scores: " + m.err.Error())
	case len(m.rounds) == 0:
		body = "No rounds played yet."
	default:
		body = m.renderTable()
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, body, instruction)
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}

func (m LeaderboardModel) renderTable() string {
	var tableContent strings.Builder

	nameWidth := 20
	scoreWidth := 8
	lengthWidth := 8
	dateWidth := 12

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(4).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Player"),
		leaderboardHeaderStyle.Width(scoreWidth).Render("Score"),
		leaderboardHeaderStyle.Width(lengthWidth).Render("Length"),
		leaderboardHeaderStyle.Width(dateWidth).Render("Date"),
	)
	tableContent.WriteString(header + "\n")

	for i, round := range m.rounds {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			leaderboardRowStyle.Width(4).Render(strconv.Itoa(i+1)),
			leaderboardRowStyle.Width(nameWidth).Render(round.PlayerName),
			leaderboardRowStyle.Width(scoreWidth).Render(strconv.Itoa(round.Score)),
			leaderboardRowStyle.Width(lengthWidth).Render(strconv.Itoa(round.Length)),
			leaderboardRowStyle.Width(dateWidth).Render(round.CreatedAt.Format("2006-01-02")),
		)
		tableContent.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}

	tableContent.WriteString(lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("%d rounds played", m.total)))
	return tableContent.String()
}
