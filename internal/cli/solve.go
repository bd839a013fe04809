package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mackworth/cfop"
	"github.com/mackworth/cfop/internal/storage"
)

var (
	solveNet    string
	solveMoves  int
	solveNoSave bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble...]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube with the CFOP method.

The scramble is given in standard notation, for example:

  cfop solve "R U R' U' F2 D B"

With no arguments a random scramble is generated first. Use --net to
solve from a 48-letter sticker net instead of a scramble sequence.

Solves are stored in the history database unless --no-save is given.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveNet, "net", "", "Solve from a 48-letter sticker net")
	solveCmd.Flags().IntVar(&solveMoves, "moves", cfop.DefaultScrambleLen, "Length of the generated scramble")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not record the solve in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	solver := cfop.NewSolver(
		cfop.WithLogger(logger),
		cfop.WithScrambleLength(solveMoves),
	)

	var (
		cube     *cfop.Cube
		scramble string
	)

	switch {
	case solveNet != "":
		if len(args) > 0 {
			return fmt.Errorf("cannot combine --net with a scramble sequence")
		}
		c, err := cfop.ParseNet(solveNet)
		if err != nil {
			return err
		}
		cube = c

	case len(args) > 0:
		scramble = strings.Join(args, " ")
		cube = cfop.NewCube()
		if err := cube.ApplyNotation(scramble); err != nil {
			return err
		}

	default:
		cube = cfop.NewCube()
		turns := solver.Scramble(cube)
		scramble = cfop.FormatTurns(turns)
		fmt.Printf("Scramble: %s\n", scramble)
	}

	report, err := solver.Solve(cube)
	if err != nil {
		return err
	}

	fmt.Println()
	for _, stage := range report.Stages {
		fmt.Printf("%-6s %3d turns  %10s  %s\n",
			stage.Name, len(stage.Turns), stage.Elapsed, cfop.FormatTurns(stage.Turns))
	}
	fmt.Println()
	fmt.Printf("Solution: %s\n", report.Notation())
	fmt.Printf("Total: %d turns in %s\n", len(report.Turns), report.Elapsed)

	if !cube.IsSolved() {
		fmt.Printf("Remaining stage: %s\n", cube.DetectStage().DisplayName())
	}

	if solveNoSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	record := &storage.Solve{
		Scramble:   scramble,
		Solution:   report.Notation(),
		TotalTurns: len(report.Turns),
		TotalTime:  report.Elapsed,
	}
	for _, stage := range report.Stages {
		switch stage.Name {
		case "cross":
			record.CrossTurns = len(stage.Turns)
			record.CrossTime = stage.Elapsed
		case "f2l":
			record.F2LTurns = len(stage.Turns)
			record.F2LTime = stage.Elapsed
		case "oll":
			record.OLLTime = stage.Elapsed
		case "pll":
			record.PLLTime = stage.Elapsed
		}
	}

	id, err := storage.NewSolveRepository(db).Create(record)
	if err != nil {
		return fmt.Errorf("failed to save solve: %w", err)
	}
	logger.Debug().Str("solve_id", id).Msg("solve recorded")

	return nil
}
