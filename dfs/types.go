// Package dfs defines types and options for the depth-limited exhaustive
// enumeration of transition sequences.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates that no sequence within the depth limit reaches
	// an accepted state.
	ErrNotFound = errors.New("dfs: no accepting sequence within depth limit")

	// ErrNoTransitions is returned when the Problem lists no transitions.
	ErrNoTransitions = errors.New("dfs: no transitions supplied")

	// ErrNilAccept is returned when the Problem has no acceptance predicate.
	ErrNilAccept = errors.New("dfs: accept predicate is nil")

	// ErrOptionViolation is returned for a negative depth limit.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of the enumeration.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the enumeration.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the enumeration early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked each time a state is reached, with the
	// number of transitions applied so far. Returning an error aborts.
	OnVisit func(depth int) error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for the enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a visit hook.
func WithOnVisit(fn func(depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// DFSResult captures the outcome of an enumeration.
type DFSResult struct {
	// Depth is the length of the shortest accepting sequence, or -1.
	Depth int

	// Labels is the first accepting sequence found at that depth.
	Labels []string

	// Visited counts every state reached, across all deepening rounds.
	Visited int
}
