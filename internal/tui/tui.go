// Package tui is the terminal front-end for a game.Session. It renders the
// session's state and turns key presses into session operations.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/vuezee/internal/game"
	"github.com/lox/vuezee/internal/highscores"
	"github.com/lox/vuezee/internal/scorecard"
)

const logHeight = 6

// Model is the Bubble Tea model for a game of vuezee.
type Model struct {
	session *game.Session
	board   *highscores.Board
	logger  *log.Logger
	top     int

	// UI components
	keys        keyMap
	help        help.Model
	logViewport viewport.Model

	// State
	categories []scorecard.Category
	cursor     int
	gameLog    []string
	quitting   bool

	// Dimensions
	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithHighScores shows the top n entries of board beside the card.
func WithHighScores(board *highscores.Board, n int) Option {
	return func(m *Model) {
		m.board = board
		m.top = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel creates a model driving s and subscribes it to s's events.
func NewModel(s *game.Session, opts ...Option) *Model {
	vp := viewport.New(40, logHeight)
	vp.SetContent("")

	m := &Model{
		session:     s,
		logger:      log.New(io.Discard),
		top:         highscores.DefaultTop,
		keys:        defaultKeyMap(),
		help:        help.New(),
		logViewport: vp,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.WithPrefix("tui")

	for _, c := range scorecard.Catalog() {
		if c.Manual() {
			m.categories = append(m.categories, c)
		}
	}
	m.cursor = m.firstOpen()

	s.Subscribe(m)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logViewport.Width = max(msg.Width-2, 1)
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Roll):
			m.session.Roll()
		case key.Matches(msg, m.keys.Hold):
			m.session.ToggleHold(int(msg.Runes[0] - '0'))
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Score):
			if m.session.Score(m.categories[m.cursor].ID) {
				m.cursor = m.firstOpen()
			}
		case key.Matches(msg, m.keys.NewGame):
			m.session.NewGame()
			m.cursor = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// OnEvent implements game.EventSubscriber and feeds the game log.
func (m *Model) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.NewGameEvent:
		m.ClearLog()
		m.AddLogEntry("New game started")
	case game.DiceRolledEvent:
		faces := make([]string, len(e.Dice))
		for i, d := range e.Dice {
			faces[i] = d.Value.String()
		}
		m.AddLogEntry(fmt.Sprintf("Roll %d: %s", e.RollCount, strings.Join(faces, " ")))
	case game.CategoryScoredEvent:
		c, _ := scorecard.Lookup(e.Outcome.Category)
		entry := fmt.Sprintf("Scored %d in %s", e.Outcome.Points, c.Label)
		if e.Outcome.Repeat {
			entry += " (stacked)"
		}
		m.AddLogEntry(entry)
		if e.Outcome.BonusAwarded {
			m.AddLogEntry(fmt.Sprintf("Upper bonus! +%d", scorecard.BonusPoints))
		}
	case game.GameCompleteEvent:
		m.AddLogEntry(fmt.Sprintf("Final score: %d", e.FinalScore))
	}
}

// AddLogEntry appends an entry to the game log and scrolls to it.
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// ClearLog clears the game log
func (m *Model) ClearLog() {
	m.gameLog = nil
	m.logViewport.SetContent("")
}

// Log returns the game log entries.
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

// Selected returns the category under the cursor.
func (m *Model) Selected() scorecard.ID {
	return m.categories[m.cursor].ID
}

func (m *Model) moveCursor(delta int) {
	n := len(m.categories)
	m.cursor = (m.cursor + delta + n) % n
}

// firstOpen returns the index of the first category that can still be
// filled, or 0 when none can.
func (m *Model) firstOpen() int {
	for i, c := range m.categories {
		if e, ok := m.session.Entry(c.ID); ok && (!e.Scored || c.Repeatable()) {
			return i
		}
	}
	return 0
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render("Vuezee") + " " + InfoStyle.Render(m.session.ID())

	play := lipgloss.JoinVertical(lipgloss.Left,
		RollTextStyle.Render(m.session.RollText()),
		m.renderDice(),
		m.renderCard(),
	)
	body := play
	if m.board != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, play, "    ", m.renderHighScores())
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Render(GameLogStyle.Render(m.logViewport.View()))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		logPane,
		m.help.View(m.keys),
	)
}

func (m *Model) renderDice() string {
	var dice []string
	for _, d := range m.session.Dice() {
		style := DieStyle
		if d.Held {
			style = HeldDieStyle
		}
		dice = append(dice, style.Render(d.Value.String()))
	}
	held := InfoStyle.Render(fmt.Sprintf("  Held: %d", m.session.HeldCount()))
	return lipgloss.JoinHorizontal(lipgloss.Center, append(dice, held)...)
}

func (m *Model) renderCard() string {
	var b strings.Builder
	m.renderSection(&b, scorecard.Upper)
	b.WriteString(TotalStyle.Render(fmt.Sprintf("  %-18s %4d", "Upper Total", m.session.UpperTotal())))
	b.WriteString("\n\n")
	m.renderSection(&b, scorecard.Lower)
	b.WriteString(TotalStyle.Render(fmt.Sprintf("  %-18s %4d", "Lower Total", m.session.LowerTotal())))
	b.WriteString("\n")
	b.WriteString(TotalStyle.Render(fmt.Sprintf("  %-18s %4d", "Grand Total", m.session.GrandTotal())))
	return b.String()
}

func (m *Model) renderSection(b *strings.Builder, section scorecard.Section) {
	for _, c := range scorecard.SectionCategories(section) {
		e, _ := m.session.Entry(c.ID)

		cursor := "  "
		selected := m.categories[m.cursor].ID == c.ID
		if selected {
			cursor = SelectedStyle.Render("> ")
		}

		score := "   -"
		if e.Scored {
			score = fmt.Sprintf("%4d", e.Score)
		}
		line := fmt.Sprintf("%-18s %s", c.Label, score)
		if selected {
			line = SelectedStyle.Render(line)
		}

		b.WriteString(cursor)
		b.WriteString(line)
		if points, ok := m.session.Potential(c.ID); ok {
			b.WriteString(PotentialStyle.Render(fmt.Sprintf("  +%d", points)))
		}
		if selected {
			b.WriteString(InfoStyle.Render("  " + c.HowTo))
		}
		b.WriteString("\n")
	}
}

func (m *Model) renderHighScores() string {
	var b strings.Builder
	b.WriteString(TotalStyle.Render("High Scores"))
	b.WriteString("\n")
	entries := m.board.Top(m.top)
	if len(entries) == 0 {
		b.WriteString(InfoStyle.Render("No scores yet"))
		return b.String()
	}
	for i, e := range entries {
		b.WriteString(fmt.Sprintf("%d. %4d  %s\n", i+1, e.Score, InfoStyle.Render(e.Date)))
	}
	return strings.TrimRight(b.String(), "\n")
}
