package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"evshortcut/gesture"
	"evshortcut/shortcut"
)

// TUI message types
type ShortcutMsg struct{ Event shortcut.Event }
type GestureMsg struct{ Gesture gesture.Gesture }
type DevicesMsg struct{ Paths []string }
type StatusMsg struct{ Text string } // Listening problems, waiting for devices
type tickMsg time.Time

const historySize = 200

type shortcutRow struct {
	shortcut shortcut.Shortcut
	name     string
	pressed  bool
	count    int
	gesture  string
	changed  int // frame of the last state change
}

type tuiModel struct {
	frame         int
	width, height int
	rows          []shortcutRow
	devices       []string
	status        string
	history       []string // newest last
}

var (
	tuiProgram *tea.Program
	tuiMu      sync.Mutex
)

var (
	pressedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	flashStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	releasedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

func newTUIModel(set settings) tuiModel {
	m := tuiModel{}
	for _, s := range set.shortcuts {
		m.rows = append(m.rows, shortcutRow{shortcut: s, name: set.names[s], changed: -100})
	}
	return m
}

func NewTUIProgram(set settings) *tea.Program {
	return tea.NewProgram(newTUIModel(set), tea.WithAltScreen())
}

func tuiSend(msg tea.Msg) {
	tuiMu.Lock()
	p := tuiProgram
	tuiMu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}

func tuiTick() tea.Cmd {
	return tea.Tick(60*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tickMsg:
		m.frame++
		return m, tuiTick()

	case ShortcutMsg:
		if i := m.row(msg.Event.Shortcut); i >= 0 {
			// Rows are copied so earlier models stay unchanged
			rows := append([]shortcutRow(nil), m.rows...)
			rows[i].pressed = msg.Event.State == shortcut.Pressed
			rows[i].changed = m.frame
			if rows[i].pressed {
				rows[i].count++
			}
			m.rows = rows
		}
		m.history = appendHistory(m.history, msg.Event.String())

	case GestureMsg:
		if i := m.row(msg.Gesture.Shortcut); i >= 0 {
			rows := append([]shortcutRow(nil), m.rows...)
			rows[i].gesture = msg.Gesture.Kind.String()
			m.rows = rows
		}
		m.history = appendHistory(m.history, msg.Gesture.String())

	case DevicesMsg:
		m.devices = msg.Paths
		m.status = ""

	case StatusMsg:
		m.status = msg.Text
	}
	return m, nil
}

func (m tuiModel) row(s shortcut.Shortcut) int {
	for i, r := range m.rows {
		if r.shortcut == s {
			return i
		}
	}
	return -1
}

func appendHistory(h []string, line string) []string {
	stamped := time.Now().Format("15:04:05.000") + "  " + line
	h = append(h, stamped)
	if len(h) > historySize {
		h = h[len(h)-historySize:]
	}
	return h
}

func (m tuiModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	const boardWidth = 48

	var board []string
	board = append(board, titleStyle.Render("Shortcuts"), "")
	for _, r := range m.rows {
		board = append(board, m.renderRow(r))
	}

	board = append(board, "")
	if len(m.devices) > 0 {
		board = append(board, titleStyle.Render("Devices"))
		for _, d := range m.devices {
			board = append(board, dimStyle.Render("  "+d))
		}
	}
	if m.status != "" {
		board = append(board, "")
		for _, line := range wrapText(m.status, boardWidth-2) {
			board = append(board, warnStyle.Render(line))
		}
	}

	board = append(board, "")
	board = append(board, helpStyle.Render("q to quit"))
	board = append(board, helpStyle.Render("evshortcut "+version))

	logWidth := m.width - boardWidth - 1
	if logWidth < 20 {
		logWidth = 20
	}

	var logContent strings.Builder
	logContent.WriteString(titleStyle.Render("Events") + "\n\n")
	if len(m.history) == 0 {
		logContent.WriteString(releasedStyle.Render("No shortcut pressed yet"))
	} else {
		// Newest at the top, as many as fit
		room := m.height - 2
		for i := len(m.history) - 1; i >= 0 && room > 0; i-- {
			logContent.WriteString(dimStyle.Render(m.history[i]) + "\n")
			room--
		}
	}

	boardPanel := lipgloss.NewStyle().
		Width(boardWidth - 1).
		Height(m.height).
		Render(strings.Join(board, "\n"))

	logPanel := lipgloss.NewStyle().
		Width(logWidth).
		Height(m.height).
		PaddingLeft(1).
		Render(logContent.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, boardPanel, logPanel)
}

func (m tuiModel) renderRow(r shortcutRow) string {
	var mark string
	switch {
	case r.pressed && m.frame-r.changed < 4:
		mark = flashStyle.Render("●")
	case r.pressed:
		mark = pressedStyle.Render("●")
	default:
		mark = releasedStyle.Render("○")
	}

	label := r.shortcut.String()
	if r.name != "" {
		label = nameStyle.Render(r.name) + " " + dimStyle.Render(label)
	}
	line := fmt.Sprintf("%s %s %s", mark, label, dimStyle.Render(fmt.Sprintf("x%d", r.count)))
	if r.gesture != "" {
		line += " " + dimStyle.Render("("+r.gesture+")")
	}
	return line
}

func wrapText(text string, width int) []string {
	if len(text) == 0 {
		return []string{""}
	}
	if width <= 0 {
		width = 1
	}

	var lines []string
	for len(text) > width {
		// Find last space within width
		splitAt := width
		for i := width; i > 0; i-- {
			if text[i] == ' ' {
				splitAt = i
				break
			}
		}
		lines = append(lines, text[:splitAt])
		text = strings.TrimLeft(text[splitAt:], " ")
	}
	if len(text) > 0 {
		lines = append(lines, text)
	}
	return lines
}

// tuiReporter forwards listen output to the running TUI.
type tuiReporter struct{}

func (tuiReporter) Devices(paths []string)    { tuiSend(DevicesMsg{Paths: paths}) }
func (tuiReporter) Event(ev shortcut.Event)   { tuiSend(ShortcutMsg{Event: ev}) }
func (tuiReporter) Gesture(g gesture.Gesture) { tuiSend(GestureMsg{Gesture: g}) }
func (tuiReporter) Status(text string)        { tuiSend(StatusMsg{Text: text}) }
