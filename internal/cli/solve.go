package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/calcpath/solver"
)

var (
	solveStart       string
	solveTarget      string
	solveKeys        string
	solvePortal      string
	solveMaxStates   int
	solveMaxDepth    int
	solveVerify      bool
	solveVerifyDepth int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one puzzle",
	Long: `Solve one puzzle given by flags, or read from stdin in the classic form:

  start display
  target display
  space-separated keys
  optional portal as "down up"`,
	Example: `  calcpath solve --start 1 --target 83 --keys "*9 +2"
  printf '0\n6\n+5 [+]1\n' | calcpath solve`,
	Args: cobra.NoArgs,
	RunE: reportMetrics(runSolve),
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := solvePuzzle(cmd)
	if err != nil {
		return err
	}

	s := newSolver(solver.WithMaxStates(solveMaxStates), solver.WithMaxDepth(solveMaxDepth))
	sol, err := s.Solve(cmd.Context(), p)
	if errors.Is(err, solver.ErrNoSolution) {
		if jsonOutput {
			_ = json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"error": "no path found"})
		} else {
			PrintWarning(cmd.OutOrStdout(), "no path found")
		}
		return &ExitError{Code: 1}
	}
	if err != nil {
		return err
	}

	bound := -1
	if solveVerify {
		if bound, err = s.Verify(cmd.Context(), p, sol, solveVerifyDepth); err != nil {
			return err
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sol)
	}
	printSolution(cmd.OutOrStdout(), sol)
	if solveVerify {
		PrintDim(cmd.OutOrStdout(), verifyNote(sol, bound))
	}
	return nil
}

// verifyNote describes what Verify proved for a bound it enumerated.
func verifyNote(sol *solver.Solution, bound int) string {
	switch {
	case sol.Presses == 0:
		return "verified: start is the target"
	case bound == sol.Presses-1:
		return "verified shortest"
	default:
		return fmt.Sprintf("no shorter sequence within %d presses", bound)
	}
}

// solvePuzzle builds the puzzle from flags, or from stdin when none is set.
func solvePuzzle(cmd *cobra.Command) (solver.Puzzle, error) {
	if solveStart == "" && solveTarget == "" && solveKeys == "" {
		return solver.ReadPuzzle(cmd.InOrStdin())
	}
	if solveStart == "" || solveTarget == "" || solveKeys == "" {
		return solver.Puzzle{}, errors.New("--start, --target and --keys must be given together")
	}

	p := solver.Puzzle{Start: solveStart, Target: solveTarget, Keys: strings.Fields(solveKeys)}
	if solvePortal != "" {
		portal, err := solver.ParsePortal(solvePortal)
		if err != nil {
			return solver.Puzzle{}, err
		}
		p.Portal = portal
	}
	return p, nil
}

func init() {
	solveCmd.Flags().StringVar(&solveStart, "start", "", "Starting display")
	solveCmd.Flags().StringVar(&solveTarget, "target", "", "Target display")
	solveCmd.Flags().StringVar(&solveKeys, "keys", "", "Space-separated key tokens")
	solveCmd.Flags().StringVar(&solvePortal, "portal", "", `Portal as "down up"`)
	solveCmd.Flags().IntVar(&solveMaxStates, "max-states", solver.DefaultMaxStates, "Cap on discovered states (0 = none)")
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 0, "Cap on key presses explored (0 = none)")
	solveCmd.Flags().BoolVar(&solveVerify, "verify", false, "Cross-check the answer by exhaustive enumeration")
	solveCmd.Flags().IntVar(&solveVerifyDepth, "verify-depth", 8, "Deepest enumeration --verify attempts")
}
