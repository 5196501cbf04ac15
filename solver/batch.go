package solver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one puzzle in a batch: a Solution or an error.
type Outcome struct {
	Puzzle   Puzzle
	Solution *Solution
	Err      error
}

// SolveAll solves puzzles concurrently with at most workers searches in
// flight (GOMAXPROCS when workers <= 0). Outcomes are returned in input
// order. A failed puzzle is reported on its Outcome and does not stop the
// others; the returned error is non-nil only when ctx ends the batch early.
func (s *Solver) SolveAll(ctx context.Context, puzzles []Puzzle, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome, len(puzzles))
	for i, p := range puzzles {
		out[i].Puzzle = p
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range puzzles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return err
			}
			out[i].Solution, out[i].Err = s.Solve(gctx, puzzles[i])
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	var solved int
	for _, o := range out {
		if o.Err == nil {
			solved++
		}
	}
	s.logger.Info("batch finished", "puzzles", len(puzzles), "solved", solved, "workers", workers)

	return out, err
}
