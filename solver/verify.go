package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/calcpath/dfs"
)

// Verify checks that no key sequence shorter than sol reaches the target,
// by exhaustive enumeration up to min(maxDepth, sol.Presses-1) presses.
// It returns the bound actually enumerated, and ErrNotShortest when a
// shorter sequence exists. sol is proven shortest when the bound equals
// sol.Presses-1; a Solution with no presses needs no check and reports -1.
func (s *Solver) Verify(ctx context.Context, p Puzzle, sol *Solution, maxDepth int) (int, error) {
	limit := min(sol.Presses-1, maxDepth)
	if limit < 0 {
		return -1, nil
	}
	prob, err := problem(p)
	if err != nil {
		return limit, err
	}

	res, err := dfs.Shortest(prob, limit, dfs.WithContext(ctx))
	switch {
	case errors.Is(err, dfs.ErrNotFound):
		s.logger.Debug("verified", "puzzle", p.label(), "presses", sol.Presses, "depth", limit)
		return limit, nil
	case err != nil:
		return limit, fmt.Errorf("solver: verify %s: %w", p.label(), err)
	}

	return limit, fmt.Errorf("%w: %s: %d presses found, solution has %d", ErrNotShortest, p.label(), res.Depth, sol.Presses)
}
