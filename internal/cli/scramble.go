package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mackworth/cfop"
)

var (
	scrambleMoves int
	scrambleShow  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence in standard notation.

Consecutive turns never share a face, so the sequence cannot be
shortened by merging adjacent turns.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", cfop.DefaultScrambleLen, "Number of turns in the scramble")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Print the scrambled cube net")
}

func runScramble(cmd *cobra.Command, args []string) error {
	solver := cfop.NewSolver(cfop.WithScrambleLength(scrambleMoves))

	cube := cfop.NewCube()
	turns := solver.Scramble(cube)

	fmt.Println(cfop.FormatTurns(turns))
	if scrambleShow {
		fmt.Println()
		fmt.Println(cube)
	}
	return nil
}
