package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/calcpath/annotate"
	"github.com/katalvlaran/calcpath/bfs"
	"github.com/katalvlaran/calcpath/calc"
	"github.com/katalvlaran/calcpath/display"
)

// Sentinel errors for solving.
var (
	// ErrNoSolution is returned when the target cannot be reached. It wraps
	// bfs.ErrNoPath.
	ErrNoSolution = fmt.Errorf("solver: no solution: %w", bfs.ErrNoPath)

	// ErrInvalidPuzzle is returned for a puzzle that fails validation.
	ErrInvalidPuzzle = errors.New("solver: invalid puzzle")

	// ErrNotShortest is returned by Verify when a shorter sequence exists.
	ErrNotShortest = errors.New("solver: solution is not shortest")
)

// DefaultMaxStates is the state cap the calcpath command applies unless told
// otherwise. The modifier key alone makes the state space unbounded.
const DefaultMaxStates = 500_000

// Solver runs searches with a shared logger, metrics and limits.
// A Solver is safe for concurrent use.
type Solver struct {
	logger    *slog.Logger
	metrics   *Metrics
	maxStates int
	maxDepth  int
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records every search in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Solver) { s.metrics = m }
}

// WithMaxStates caps the states one search may discover; 0 means no cap.
func WithMaxStates(n int) Option {
	return func(s *Solver) { s.maxStates = n }
}

// WithMaxDepth caps the number of key presses explored; 0 means no cap.
func WithMaxDepth(d int) Option {
	return func(s *Solver) { s.maxDepth = d }
}

// New returns a Solver. Without options it logs nowhere, records no metrics
// and sets no limits.
func New(opts ...Option) *Solver {
	s := &Solver{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solution is a shortest key sequence for a Puzzle.
type Solution struct {
	Puzzle Puzzle `json:"puzzle"`

	// Labels are the keys to press in order, STORE steps included.
	Labels []string `json:"labels"`

	// Displays holds the display after each entry of Labels.
	Displays []string `json:"displays"`

	// Presses is the number of key presses, STORE steps excluded.
	Presses int `json:"presses"`
	Stores  int `json:"stores"`

	Expanded   int           `json:"expanded"`
	Discovered int           `json:"discovered"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// String renders the key sequence comma-separated.
func (s *Solution) String() string {
	return strings.Join(s.Labels, ", ")
}

// problem builds the search problem for p.
func problem(p Puzzle) (bfs.Problem[calc.State], error) {
	start, err := calc.NewState(p.Start)
	if err != nil {
		return bfs.Problem[calc.State]{}, fmt.Errorf("%w: %s: %w", ErrInvalidPuzzle, p.label(), err)
	}
	target, ok := display.Normalize(strings.TrimSpace(p.Target))
	if !ok {
		return bfs.Problem[calc.State]{}, fmt.Errorf("%w: %s: target %q", ErrInvalidPuzzle, p.label(), p.Target)
	}
	ops, err := p.Operations()
	if err != nil {
		return bfs.Problem[calc.State]{}, fmt.Errorf("%w: %s: %w", ErrInvalidPuzzle, p.label(), err)
	}

	transitions := make([]bfs.Transition[calc.State], len(ops))
	for i, op := range ops {
		transitions[i] = op
	}

	return bfs.Problem[calc.State]{
		Start:       start,
		Transitions: transitions,
		Key:         calc.KeyFunc(ops),
		Accept:      func(s calc.State) bool { return s.Display() == target },
	}, nil
}

// Solve finds a shortest key sequence from p.Start to p.Target.
//
// Returns ErrInvalidPuzzle for a malformed puzzle, ErrNoSolution when the
// target is unreachable within the limits, bfs.ErrStateLimit when the state
// cap is hit, or the context error on cancellation.
func (s *Solver) Solve(ctx context.Context, p Puzzle) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	prob, err := problem(p)
	if err != nil {
		return nil, err
	}

	maxStates := s.maxStates
	if p.MaxStates > 0 {
		maxStates = p.MaxStates
	}
	log := s.logger.With("puzzle", p.label())
	log.Debug("search started", "start", prob.Start.Display(), "target", p.Target, "keys", len(p.Keys))

	began := time.Now()
	res, err := bfs.Search(prob,
		bfs.WithContext(ctx),
		bfs.WithMaxStates(maxStates),
		bfs.WithMaxDepth(s.maxDepth),
	)
	elapsed := time.Since(began)
	s.metrics.observe(outcomeOf(err), res, elapsed)

	if err != nil {
		var discovered int
		if res != nil {
			discovered = res.Discovered
		}
		if errors.Is(err, bfs.ErrNoPath) {
			log.Warn("no solution", "discovered", discovered, "elapsed", elapsed)
			return nil, fmt.Errorf("%w: %s after %d states", ErrNoSolution, p.label(), discovered)
		}
		log.Error("search failed", "discovered", discovered, "err", err)
		return nil, fmt.Errorf("solver: %s: %w", p.label(), err)
	}

	steps := annotate.Stores(prob.Start, res.Path)
	sol := &Solution{
		Puzzle:     p,
		Labels:     make([]string, len(steps)),
		Displays:   make([]string, len(steps)),
		Presses:    res.Len(),
		Stores:     annotate.Count(steps),
		Expanded:   res.Expanded,
		Discovered: res.Discovered,
		Elapsed:    elapsed,
	}
	for i, st := range steps {
		sol.Labels[i] = st.Label
		sol.Displays[i] = st.State.Display()
	}
	log.Info("solved",
		"presses", sol.Presses,
		"stores", sol.Stores,
		"expanded", sol.Expanded,
		"discovered", sol.Discovered,
		"elapsed", elapsed,
	)

	return sol, nil
}

// outcomeOf classifies a search error for metrics.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSolved
	case errors.Is(err, bfs.ErrNoPath):
		return outcomeNoSolution
	case errors.Is(err, bfs.ErrStateLimit):
		return outcomeLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	default:
		return outcomeError
	}
}
