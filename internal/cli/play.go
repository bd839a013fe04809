package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mackworth/cfop/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore the cube interactively",
	Long: `Open an interactive terminal view of the cube.

Turn faces with the f, r, u, b, l and d keys. Hold shift for the
counter-clockwise turn, or press 2 before a key for the double turn.
's' scrambles, 'enter' solves, 'x' resets, 'q' quits.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	model := tui.NewModel(logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}
