// Package tui is a terminal front end for the solitaire game built on
// bubbletea. The cursor walks the board grid and always targets the topmost
// live tile of the cell under it.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/milk9111/mahjong/autoplay"
	"github.com/milk9111/mahjong/board"
	"github.com/milk9111/mahjong/game"
)

type tickMsg struct {
	session string
}

type hintExpiredMsg struct {
	gen int
}

// Model is the bubbletea model. It owns the game it is given.
type Model struct {
	game    *game.Game
	policy  *autoplay.Policy
	keys    keyMap
	help    help.Model
	hintFor time.Duration

	cursorX, cursorY int
	maxX, maxY       int

	status   string
	hint     [2]int
	hintGen  int
	quitting bool
}

// New deals a fresh game on g. A nil policy disables the autoplay key.
func New(g *game.Game, p *autoplay.Policy, hintFor time.Duration) Model {
	m := Model{
		game:    g,
		policy:  p,
		keys:    defaultKeyMap(),
		help:    help.New(),
		hintFor: hintFor,
	}
	m.newGame()
	return m
}

func (m *Model) newGame() {
	snap := m.game.NewGame()
	m.maxX, m.maxY = snap.Bounds()
	m.cursorX, m.cursorY = 0, 0
	m.hint = [2]int{}
	m.status = m.game.Status(game.EventNewGame)
}

func (m Model) tick() tea.Cmd {
	session := m.game.SessionID()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{session: session}
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tickMsg:
		// Ticks from an earlier deal stop here; NewGame starts its own.
		if msg.session != m.game.SessionID() || m.game.IsWon() {
			return m, nil
		}
		m.game.Tick()
		return m, m.tick()

	case hintExpiredMsg:
		if msg.gen == m.hintGen {
			m.hint = [2]int{}
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursorY = max(m.cursorY-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursorY = min(m.cursorY+1, m.maxY)
	case key.Matches(msg, m.keys.Left):
		m.cursorX = max(m.cursorX-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursorX = min(m.cursorX+1, m.maxX)
	case key.Matches(msg, m.keys.Select):
		if id, ok := m.topAt(m.cursorX, m.cursorY); ok {
			m.apply(m.game.SelectTile(id))
		}
	case key.Matches(msg, m.keys.NewGame):
		m.newGame()
		return m, m.tick()
	case key.Matches(msg, m.keys.Hint):
		return m.showHint()
	case key.Matches(msg, m.keys.Shuffle):
		m.game.Reshuffle()
		m.hint = [2]int{}
		m.status = m.game.Status(game.EventShuffled)
		if ev, ok := m.game.TerminalEvent(); ok {
			m.status = m.game.Status(ev)
		}
	case key.Matches(msg, m.keys.Auto):
		if m.policy == nil {
			return m, nil
		}
		r, ok, err := autoplay.Step(m.game, m.policy)
		switch {
		case err != nil:
			m.status = err.Error()
		case !ok:
			m.status = m.game.Status(game.EventNoHint)
		default:
			m.apply(r)
		}
	}
	return m, nil
}

func (m *Model) apply(r game.TransitionResult) {
	if r.Matched {
		m.hint = [2]int{}
	}
	if ev, ok := r.Event(); ok {
		m.status = m.game.Status(ev)
	}
}

func (m Model) showHint() (tea.Model, tea.Cmd) {
	m.status = m.game.Status(game.EventHint)
	pair, ok := m.game.Hint()
	if !ok {
		return m, nil
	}
	m.hint = pair.IDs()
	m.hintGen++
	gen := m.hintGen
	return m, tea.Tick(m.hintFor, func(time.Time) tea.Msg {
		return hintExpiredMsg{gen: gen}
	})
}

// topAt returns the live tile with the highest layer in cell x, y.
func (m Model) topAt(x, y int) (int, bool) {
	id, z := 0, -1
	for _, ts := range m.game.Snapshot() {
		if ts.Removed || ts.X != x || ts.Y != y {
			continue
		}
		if ts.Z > z {
			id, z = ts.ID, ts.Z
		}
	}
	return id, id != 0
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Mahjong Solitaire"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Pairs left: %d   Moves: %d   Time: %s",
		m.game.PairsRemaining(), m.game.MovesMade(), game.FormatElapsed(m.game.ElapsedSeconds()))))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderBoard() string {
	top := make(map[[2]int]board.TileState)
	for _, ts := range m.game.Snapshot() {
		if ts.Removed {
			continue
		}
		cell := [2]int{ts.X, ts.Y}
		if cur, ok := top[cell]; !ok || ts.Z > cur.Z {
			top[cell] = ts
		}
	}
	held, _ := m.game.Selected()

	var b strings.Builder
	for y := 0; y <= m.maxY; y++ {
		for x := 0; x <= m.maxX; x++ {
			style, label := emptyStyle, " ."
			if ts, ok := top[[2]int{x, y}]; ok {
				style, label = m.tileStyle(ts, held), fmt.Sprintf("%-2s%d", ts.Face, ts.Z)
			}
			if x == m.cursorX && y == m.cursorY {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) tileStyle(ts board.TileState, held int) lipgloss.Style {
	switch {
	case ts.ID == held:
		return selectedStyle
	case ts.ID == m.hint[0] || ts.ID == m.hint[1]:
		return hintStyle
	case m.game.IsFree(ts.ID):
		return freeStyle
	default:
		return blockedStyle
	}
}
