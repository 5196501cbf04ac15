// Package bfs provides tunable options, problem definition and error values
// for breadth-first search over an implicit state graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoPath is returned when the frontier empties without any state
	// satisfying the acceptance predicate.
	ErrNoPath = errors.New("bfs: no path found")

	// ErrNoTransitions is returned when a Problem lists no transitions.
	ErrNoTransitions = errors.New("bfs: no transitions supplied")

	// ErrNilTransition is returned when a Problem lists a nil transition.
	ErrNilTransition = errors.New("bfs: nil transition")

	// ErrNilKey is returned when a Problem has no key function.
	ErrNilKey = errors.New("bfs: key function is nil")

	// ErrNilAccept is returned when a Problem has no acceptance predicate.
	ErrNilAccept = errors.New("bfs: accept predicate is nil")

	// ErrStateLimit is returned when discovering another state would exceed
	// the cap set by WithMaxStates.
	ErrStateLimit = errors.New("bfs: state limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Transition is one kind of edge in the state graph. Apply returns every
// successor of a state (none when the transition does not apply); Label
// names the edge into one of those successors.
type Transition[S any] interface {
	Apply(s S) []S
	Label(next S) string
}

// Problem describes an implicit state graph and what counts as a goal.
//
// Key must return equal strings exactly for states the search should treat
// as the same vertex. Accept is the termination predicate; it typically
// closes over the target and inspects only part of the state.
type Problem[S any] struct {
	Start       S
	Transitions []Transition[S]
	Key         func(S) string
	Accept      func(S) bool
}

func (p Problem[S]) validate() error {
	if len(p.Transitions) == 0 {
		return ErrNoTransitions
	}
	for i, t := range p.Transitions {
		if t == nil {
			return fmt.Errorf("%w at index %d", ErrNilTransition, i)
		}
	}
	if p.Key == nil {
		return ErrNilKey
	}
	if p.Accept == nil {
		return ErrNilAccept
	}
	return nil
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is discovered and enqueued.
	// Receives the state key and its depth from the start.
	OnEnqueue func(key string, depth int)

	// OnDequeue is called immediately before a state is expanded.
	OnDequeue func(key string, depth int)

	// OnVisit is called when expanding a state. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(key string, depth int) error

	// MaxDepth, if > 0, stops expanding states at this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, caps the number of discovered states.
	MaxStates int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth or state limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
		MaxDepth:  0,
		MaxStates: 0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(key string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expanding states at the given depth.
//
//	d > 0: paths longer than d are never explored
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates caps the number of distinct states the search may discover,
// bounding memory on puzzles whose frontier never converges.
//
//	n > 0: at most n states, then ErrStateLimit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Step is one edge of a found path: the label of the edge taken and the
// state it leads to.
type Step[S any] struct {
	Label string
	State S
}

// Result holds the outcome of a search:
//   - Path: steps from the start (exclusive) to the accepted state, in order.
//     Empty when the start itself is accepted.
//   - Expanded: states dequeued and expanded.
//   - Discovered: distinct states recorded, the start included.
type Result[S any] struct {
	Path       []Step[S]
	Expanded   int
	Discovered int
}

// Labels returns the edge labels of the path, in order.
func (r *Result[S]) Labels() []string {
	out := make([]string, len(r.Path))
	for i, st := range r.Path {
		out[i] = st.Label
	}
	return out
}

// Len is the number of transitions on the path.
func (r *Result[S]) Len() int { return len(r.Path) }
