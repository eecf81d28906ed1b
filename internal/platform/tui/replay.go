package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/catalog"
	"github.com/vovakirdan/bingo/internal/render"
)

// Replay layout constants
const (
	historyHeight   = 8 // Visible rows of the call history
	defaultTickRate = 2 // Autoplay calls per second
)

// ReplayModel is the Bubble Tea model that replays a game over one or more
// cards. Calls always go 1, 2, 3, ... so the engineered win shows up on the
// card's target call.
type ReplayModel struct {
	catalog  *catalog.Catalog
	cards    []card.Card
	cursor   int // Current card index
	call     int // Items called so far
	firstWin int // Call that completes the current card's first line
	autoplay bool
	tickRate int
	theme    render.TextTheme
	history  table.Model
	help     help.Model
	keys     ReplayKeyMap
	quitting bool

	titleStyle  lipgloss.Style
	statusStyle lipgloss.Style
	bingoStyle  lipgloss.Style
}

// NewReplayModel creates a replay over cards drawn from c. tickRate is the
// autoplay speed in calls per second.
func NewReplayModel(c *catalog.Catalog, cards []card.Card, tickRate int) ReplayModel {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}

	h := help.New()
	h.ShowAll = false

	m := ReplayModel{
		catalog:     c,
		cards:       cards,
		tickRate:    tickRate,
		theme:       render.NewTextTheme(c.Theme),
		help:        h,
		keys:        DefaultReplayKeyMap(),
		titleStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Theme.Primary)).Bold(true),
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		bingoStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
	m.history = m.createTable()
	m.selectCard(0)
	return m
}

func (m *ReplayModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "", Width: 4},
			{Title: "Event", Width: 48},
		}),
		table.WithFocused(false),
		table.WithHeight(historyHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

// selectCard switches to card i and restarts its game.
func (m *ReplayModel) selectCard(i int) {
	if len(m.cards) == 0 {
		return
	}
	m.cursor = (i%len(m.cards) + len(m.cards)) % len(m.cards)
	crd := m.cards[m.cursor]
	if call, ok := card.FirstBingo(crd.Grid, m.catalog.Size()); ok {
		m.firstWin = call
	} else {
		m.firstWin = 0
	}
	m.setCall(0)
}

// setCall moves the game to n items called and refreshes the history.
func (m *ReplayModel) setCall(n int) {
	total := m.catalog.Size()
	if n < 0 {
		n = 0
	}
	if n > total {
		n = total
	}
	m.call = n

	rows := make([]table.Row, 0, n)
	for order := 1; order <= n; order++ {
		it, _ := m.catalog.Lookup(order)
		mark := ""
		if _, onCard := m.current().Grid.Find(order); onCard {
			mark = " ✓"
		}
		rows = append(rows, table.Row{fmt.Sprintf("%d", order), it.Emoji, it.Description + mark})
	}
	m.history.SetRows(rows)
	m.history.GotoBottom()
}

func (m ReplayModel) current() card.Card {
	return m.cards[m.cursor]
}

// Call returns how many items have been called.
func (m ReplayModel) Call() int {
	return m.call
}

// Bingo reports whether the current card has a completed line.
func (m ReplayModel) Bingo() bool {
	if len(m.cards) == 0 {
		return false
	}
	return card.CheckBingo(m.current().Grid, m.called())
}

// FirstWin returns the call that completes the current card's first line,
// or 0 if it never completes.
func (m ReplayModel) FirstWin() int {
	return m.firstWin
}

// Autoplay reports whether calls advance on their own.
func (m ReplayModel) Autoplay() bool {
	return m.autoplay
}

// CardIndex returns the index of the card being replayed.
func (m ReplayModel) CardIndex() int {
	return m.cursor
}

func (m ReplayModel) called() *card.CalledSet {
	s := card.NewCalledSet()
	for order := 1; order <= m.call; order++ {
		s.Add(order)
	}
	return s
}

// Init initializes the replay model.
func (m ReplayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.autoplay {
			return m, nil
		}
		m.setCall(m.call + 1)
		if m.call >= m.catalog.Size() || m.call == m.firstWin {
			m.autoplay = false
			return m, nil
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

func (m ReplayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.autoplay = false
		m.setCall(m.call + 1)

	case key.Matches(msg, m.keys.Prev):
		m.autoplay = false
		m.setCall(m.call - 1)

	case key.Matches(msg, m.keys.Reset):
		m.autoplay = false
		m.setCall(0)

	case key.Matches(msg, m.keys.Win):
		m.autoplay = false
		if m.firstWin > 0 {
			m.setCall(m.firstWin)
		}

	case key.Matches(msg, m.keys.Auto):
		m.autoplay = !m.autoplay
		if m.autoplay {
			if m.call >= m.catalog.Size() || (m.firstWin > 0 && m.call >= m.firstWin) {
				m.setCall(0)
			}
			return m, tickCmd(m.tickRate)
		}

	case key.Matches(msg, m.keys.NextCard):
		m.autoplay = false
		m.selectCard(m.cursor + 1)

	case key.Matches(msg, m.keys.PrevCard):
		m.autoplay = false
		m.selectCard(m.cursor - 1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// View renders the replay screen.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.cards) == 0 {
		return "No cards to replay.\n"
	}

	crd := m.current()
	var sb strings.Builder

	sb.WriteString(m.titleStyle.Render(fmt.Sprintf("Replay · card %d of %d", m.cursor+1, len(m.cards))))
	sb.WriteString("\n\n")

	grid, err := render.CardText(m.catalog, crd, m.called(), m.theme)
	if err != nil {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	} else {
		sb.WriteString(grid)
	}
	sb.WriteString("\n")

	status := fmt.Sprintf("Call %d/%d", m.call, m.catalog.Size())
	if m.call > 0 {
		it, _ := m.catalog.Lookup(m.call)
		status += fmt.Sprintf(": %s %s", it.Emoji, it.Description)
	}
	if m.autoplay {
		status += "  [auto]"
	}
	sb.WriteString(m.statusStyle.Render(status))
	sb.WriteString("\n")

	if lines := card.CompletedLines(crd.Grid, m.called()); len(lines) > 0 {
		names := make([]string, len(lines))
		for i, l := range lines {
			names[i] = l.Name
		}
		sb.WriteString(m.bingoStyle.Render(fmt.Sprintf("BINGO on call %d! (%s)", m.firstWin, strings.Join(names, ", "))))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.history.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}
