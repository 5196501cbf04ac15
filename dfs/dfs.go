// Package dfs enumerates transition sequences depth-first with iterative
// deepening. Unlike bfs it keeps no record of seen states: every sequence of
// up to the given length is tried, which makes it an independent oracle for
// the length of a shortest accepting path.
//
// Key features:
//   - Shortest(p, maxDepth, opts...): length and labels of a shortest accepting sequence
//   - Hooks: OnVisit with error aborts
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(b^d) where b = successors per state, d = depth found (or maxDepth).
//   - Memory: O(d) for the recursion stack.
//
// Errors:
//
//   - ErrNoTransitions, ErrNilAccept for a malformed Problem.
//   - ErrOptionViolation        if maxDepth is negative.
//   - ErrNotFound               if nothing is accepted within maxDepth.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/calcpath/bfs"
)

// dfsWalker encapsulates state during the enumeration.
type dfsWalker[S any] struct {
	p      bfs.Problem[S] // transitions and acceptance
	opts   DFSOptions     // enumeration options
	res    *DFSResult     // result collector
	labels []string       // labels of the accepting sequence, goal first
}

// Shortest returns the length of the shortest transition sequence from
// p.Start to a state p.Accept holds for, trying every sequence of length
// 0, 1, …, maxDepth in turn. p.Key is not used.
func Shortest[S any](p bfs.Problem[S], maxDepth int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if len(p.Transitions) == 0 {
		return nil, ErrNoTransitions
	}
	if p.Accept == nil {
		return nil, ErrNilAccept
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: maxDepth cannot be negative (%d)", ErrOptionViolation, maxDepth)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	walker := &dfsWalker[S]{p: p, opts: dopts, res: &DFSResult{Depth: -1}}

	// 3. Deepen one level at a time; the first round that accepts is the shortest
	for limit := 0; limit <= maxDepth; limit++ {
		found, err := walker.traverse(p.Start, 0, limit)
		if err != nil {
			return walker.res, err
		}
		if found {
			walker.res.Depth = limit
			walker.res.Labels = reverse(walker.labels)
			return walker.res, nil
		}
	}

	return walker.res, ErrNotFound
}

// traverse explores every sequence below s up to limit transitions and
// reports whether one ends, at exactly limit, in an accepted state.
func (w *dfsWalker[S]) traverse(s S, depth, limit int) (bool, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	// 2. Visit hook
	w.res.Visited++
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(depth); err != nil {
			return false, fmt.Errorf("dfs: OnVisit error at depth %d: %w", depth, err)
		}
	}

	// 3. Shallower sequences were tried in earlier rounds
	if depth == limit {
		return w.p.Accept(s), nil
	}

	// 4. Recurse into every successor of every transition
	for _, t := range w.p.Transitions {
		if t == nil {
			continue
		}
		for _, next := range t.Apply(s) {
			found, err := w.traverse(next, depth+1, limit)
			if err != nil {
				return false, err
			}
			if found {
				w.labels = append(w.labels, t.Label(next))
				return true, nil
			}
		}
	}

	return false, nil
}

// reverse returns a new slice containing the elements of s in reverse order.
func reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}
