package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/calcpath/solver"
)

var (
	batchWorkers   int
	batchMaxStates int
)

// batchResult is the JSON form of one outcome.
type batchResult struct {
	Name     string           `json:"name"`
	Solution *solver.Solution `json:"solution,omitempty"`
	Error    string           `json:"error,omitempty"`
}

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Solve every puzzle in a YAML file",
	Long: `Solve every puzzle listed in a YAML file, several at a time.

  puzzles:
    - name: level-1
      start: "0"
      target: "6"
      keys: ["+5", "[+]1"]

Environment variables in the file are expanded. A puzzle without a solution
does not stop the others; the exit status is 1 if any puzzle failed.`,
	Args: cobra.ExactArgs(1),
	RunE: reportMetrics(runBatch),
}

func runBatch(cmd *cobra.Command, args []string) error {
	puzzles, err := solver.LoadPuzzles(args[0])
	if err != nil {
		return err
	}

	s := newSolver(solver.WithMaxStates(batchMaxStates))
	outcomes, err := s.SolveAll(cmd.Context(), puzzles, batchWorkers)
	if err != nil {
		return err
	}

	failed := 0
	results := make([]batchResult, len(outcomes))
	for i, o := range outcomes {
		results[i] = batchResult{Name: o.Puzzle.Name, Solution: o.Solution}
		if o.Err != nil {
			failed++
			results[i].Error = o.Err.Error()
		}
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		for _, o := range outcomes {
			if o.Err != nil {
				PrintError(w, fmt.Sprintf("%s: %v", o.Puzzle.Name, o.Err))
				continue
			}
			printSolution(w, o.Solution)
		}
		PrintDim(w, fmt.Sprintf("%d of %d solved", len(outcomes)-failed, len(outcomes)))
	}

	if failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Puzzles solved at once (0 = GOMAXPROCS)")
	batchCmd.Flags().IntVar(&batchMaxStates, "max-states", solver.DefaultMaxStates, "Default cap on discovered states per puzzle (0 = none)")
}
