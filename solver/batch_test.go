package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calcpath/solver"
)

func TestSolveAll_KeepsInputOrder(t *testing.T) {
	puzzles := []solver.Puzzle{
		{Name: "a", Start: "1", Target: "83", Keys: []string{"*9", "+2"}},
		{Name: "b", Start: "8", Target: "1", Keys: []string{"/7"}},
		{Name: "c", Start: "0", Target: "6", Keys: []string{"+5", "[+]1"}},
		{Name: "d", Start: "1", Target: "1212", Keys: []string{"2", "S"}},
		{Name: "e", Start: "1", Target: "2", Keys: []string{"Q"}},
	}

	out, err := solver.New().SolveAll(context.Background(), puzzles, 2)
	require.NoError(t, err)
	require.Len(t, out, len(puzzles))

	for i, o := range out {
		assert.Equal(t, puzzles[i].Name, o.Puzzle.Name)
	}
	require.NoError(t, out[0].Err)
	assert.Equal(t, "*9, *9, +2", out[0].Solution.String())
	assert.ErrorIs(t, out[1].Err, solver.ErrNoSolution)
	assert.Nil(t, out[1].Solution)
	require.NoError(t, out[2].Err)
	assert.Equal(t, "[+]1, +6", out[2].Solution.String())
	require.NoError(t, out[3].Err)
	assert.Equal(t, 1, out[3].Solution.Stores)
	assert.ErrorIs(t, out[4].Err, solver.ErrInvalidPuzzle)
}

func TestSolveAll_DefaultWorkers(t *testing.T) {
	puzzles := make([]solver.Puzzle, 8)
	for i := range puzzles {
		puzzles[i] = solver.Puzzle{Start: "1", Target: "83", Keys: []string{"*9", "+2"}}
	}
	out, err := solver.New().SolveAll(context.Background(), puzzles, 0)
	require.NoError(t, err)
	for _, o := range out {
		require.NoError(t, o.Err)
		assert.Equal(t, 3, o.Solution.Presses)
	}
}

func TestSolveAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	puzzles := []solver.Puzzle{
		{Start: "1", Target: "83", Keys: []string{"*9", "+2"}},
		{Start: "0", Target: "6", Keys: []string{"+5", "[+]1"}},
	}
	out, err := solver.New().SolveAll(ctx, puzzles, 1)
	require.ErrorIs(t, err, context.Canceled)
	for _, o := range out {
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
}

func TestSolveAll_Empty(t *testing.T) {
	out, err := solver.New().SolveAll(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSolveAll_CanceledMidSearch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// unreachable and uncapped: only the deadline ends it
	puzzles := []solver.Puzzle{{Start: "6", Target: "19", Keys: []string{"[+]1"}}}
	out, err := solver.New().SolveAll(ctx, puzzles, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Len(t, out, 1)
	assert.ErrorIs(t, out[0].Err, context.DeadlineExceeded)
}
