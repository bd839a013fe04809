// Package tui implements the interactive terminal view of the cube.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mackworth/cfop"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stickerStyles = [6]lipgloss.Style{
		cfop.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		cfop.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		cfop.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		cfop.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		cfop.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		cfop.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	}
)

// Model is the interactive cube explorer.
type Model struct {
	cube     *cfop.Cube
	solver   *cfop.Solver
	logger   zerolog.Logger
	moves    []cfop.Turn
	report   *cfop.Report
	double   bool
	err      error
	quitting bool
}

// NewModel creates a model showing a solved cube.
func NewModel(logger zerolog.Logger) *Model {
	return &Model{
		cube:   cfop.NewCube(),
		solver: cfop.NewSolver(cfop.WithLogger(logger)),
		logger: logger,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "2":
		m.double = !m.double
		return m, nil

	case "s":
		m.cube.SetSolved()
		turns := m.solver.Scramble(m.cube)
		m.moves = nil
		m.report = nil
		m.err = nil
		m.double = false
		m.logger.Debug().Str("scramble", cfop.FormatTurns(turns)).Msg("scrambled")
		return m, nil

	case "enter":
		report, err := m.solver.Solve(m.cube)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.report = report
		m.moves = nil
		m.err = nil
		m.double = false
		return m, nil

	case "x":
		m.cube.SetSolved()
		m.moves = nil
		m.report = nil
		m.err = nil
		m.double = false
		return m, nil
	}

	if turn, ok := turnForKey(key, m.double); ok {
		m.cube.Turn(turn)
		m.moves = append(m.moves, turn)
		m.report = nil
		m.err = nil
		m.double = false
	}
	return m, nil
}

// turnForKey maps a face key to a turn. Lowercase is clockwise,
// uppercase counter-clockwise, and double selects the half turn.
func turnForKey(key string, double bool) (cfop.Turn, bool) {
	if len(key) != 1 {
		return 0, false
	}
	switch key[0] {
	case 'f', 'r', 'u', 'b', 'l', 'd', 'F', 'R', 'U', 'B', 'L', 'D':
	default:
		return 0, false
	}

	notation := strings.ToUpper(key)
	switch {
	case double:
		notation += "2"
	case key[0] >= 'A' && key[0] <= 'Z':
		notation += "'"
	}

	turn, err := cfop.ParseTurn(notation)
	if err != nil {
		return 0, false
	}
	return turn, true
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("CFOP Cube Explorer"))
	b.WriteString("\n\n")
	b.WriteString(m.renderNet())
	b.WriteString("\n")

	switch {
	case !m.cube.Valid():
		b.WriteString(fmt.Sprintf("State: %s\n", errorStyle.Render("UNREACHABLE")))
	case m.cube.IsSolved():
		b.WriteString(fmt.Sprintf("State: %s\n", stageStyle.Render("SOLVED")))
	default:
		b.WriteString(fmt.Sprintf("State: %s\n", stageStyle.Render(m.cube.DetectStage().DisplayName())))
	}

	if m.double {
		b.WriteString(statusStyle.Render("Next turn: double"))
		b.WriteString("\n")
	}

	if len(m.moves) > 0 {
		start := 0
		prefix := ""
		if len(m.moves) > 20 {
			start = len(m.moves) - 20
			prefix = "... "
		}
		b.WriteString(fmt.Sprintf("Moves (%d): %s%s\n",
			len(m.moves), prefix, moveStyle.Render(cfop.FormatTurns(m.moves[start:]))))
	}

	if m.report != nil {
		b.WriteString("\n")
		for _, stage := range m.report.Stages {
			b.WriteString(fmt.Sprintf("  %-6s %s\n", stage.Name, cfop.FormatTurns(stage.Turns)))
		}
		b.WriteString(fmt.Sprintf("Solution (%d turns): %s\n",
			len(m.report.Turns), moveStyle.Render(m.report.Notation())))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "f/r/u/b/l/d turn - shift for ccw - 2 for double - s scramble - enter solve - x reset - q quit"
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

// gridOrder maps a 3x3 grid row and column to the clockwise sticker
// winding. The center slot is -1 because it is the face color itself.
var gridOrder = [3][3]int{{0, 1, 2}, {7, -1, 3}, {6, 5, 4}}

func (m *Model) sticker(face cfop.Color, row, col int) string {
	color := face
	if pos := gridOrder[row][col]; pos >= 0 {
		color = m.cube.Tile(face, pos)
	}
	return stickerStyles[color].Render(color.String()) + " "
}

// renderNet draws the cube as an unfolded net: Up on top, then the
// Left/Front/Right/Back band, then Down.
func (m *Model) renderNet() string {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(m.sticker(cfop.White, row, col))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cfop.Color{cfop.Orange, cfop.Green, cfop.Red, cfop.Blue} {
			for col := 0; col < 3; col++ {
				b.WriteString(m.sticker(face, row, col))
			}
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(m.sticker(cfop.Yellow, row, col))
		}
		b.WriteString("\n")
	}

	return b.String()
}
