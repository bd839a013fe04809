package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mackworth/cfop/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  `Display recent solves from the history database, newest first.`,
	RunE:  runHistory,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solve-id>",
	Short: "Delete a recorded solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
	historyCmd.Flags().BoolVar(&historyLast, "last", false, "Show only the most recent solve, in full")

	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	if historyLast {
		solve, err := repo.GetLast()
		if err != nil {
			return err
		}
		if solve == nil {
			fmt.Println("No solves recorded yet.")
			return nil
		}
		printSolve(solve)
		return nil
	}

	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	count, err := repo.Count()
	if err != nil {
		return err
	}

	fmt.Printf("%-36s  %-20s  %6s  %10s\n", "SOLVE ID", "DATE", "TURNS", "TIME")
	for _, s := range solves {
		fmt.Printf("%-36s  %-20s  %6d  %10s\n",
			s.SolveID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.TotalTurns,
			s.TotalTime)
	}
	fmt.Printf("\n%d of %d solves. Use 'cfop history --last' for details.\n", len(solves), count)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solve, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("no solve with ID %s", args[0])
	}

	if err := repo.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted solve %s\n", args[0])
	return nil
}

func printSolve(s *storage.Solve) {
	fmt.Printf("Solve:    %s\n", s.SolveID)
	fmt.Printf("Date:     %s\n", s.CreatedAt.Local().Format(time.RFC3339))
	fmt.Printf("Scramble: %s\n", s.Scramble)
	fmt.Printf("Solution: %s\n", s.Solution)
	fmt.Println()
	fmt.Printf("Cross: %d turns in %s\n", s.CrossTurns, s.CrossTime)
	fmt.Printf("F2L:   %d turns in %s\n", s.F2LTurns, s.F2LTime)
	fmt.Printf("Total: %d turns in %s\n", s.TotalTurns, s.TotalTime)
}
