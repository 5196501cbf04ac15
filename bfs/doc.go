// Package bfs provides a breadth-first search over implicit state graphs,
// returning a fewest-transition path to the first state a predicate accepts.
//
// What
//
//   - The graph is never built: a Problem supplies a start state, an ordered
//     list of Transitions (each yielding zero, one or many successors of a
//     state, plus a label per successor), a Key function defining state
//     equality, and an Accept predicate deciding termination.
//   - Returns a Result containing:
//   - Path: (label, state) steps from the start to the accepted state
//   - Expanded / Discovered: search effort counters
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state is discovered)
//   - OnDequeue (immediately before expansion)
//   - OnVisit   (when expanding; may abort with an error)
//   - Honors MaxDepth and MaxStates limits for spaces that never converge.
//
// Why
//
//   - States are visited in non-decreasing distance order and a state is
//     recorded only on its first discovery, so the reconstructed path uses
//     the fewest transitions.
//   - Accept is a parameter rather than equality because states usually
//     carry bookkeeping the goal does not care about.
//
// Determinism
//
//	Transitions are applied in list order and successors in the order each
//	transition returns them; the first discovery of a key wins. Identical
//	inputs therefore yield identical paths.
//
// Complexity (V = states discovered, T = transitions)
//
//   - Time:   O(V · T · cost(Apply + Key))
//   - Memory: O(V) for the frontier and the search record
//
// Usage
//
//	res, err := bfs.Search(bfs.Problem[State]{
//	    Start:       start,
//	    Transitions: transitions,
//	    Key:         func(s State) string { return s.Key() },
//	    Accept:      func(s State) bool { return s.Display() == target },
//	}, bfs.WithMaxStates(1_000_000))
//	if errors.Is(err, bfs.ErrNoPath) {
//	    // unreachable
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no limits.
//   - WithContext(ctx):      set a custom context for cancellation.
//   - WithMaxDepth(d):       never expand states at depth ≥ d (d>0).
//   - WithMaxStates(n):      fail with ErrStateLimit past n discovered states.
//   - WithOnEnqueue(fn):     hook when a state is enqueued.
//   - WithOnDequeue(fn):     hook immediately before expanding a state.
//   - WithOnVisit(fn):       hook during expansion; returning error aborts.
//
// Errors
//
//   - ErrNoTransitions, ErrNilTransition, ErrNilKey, ErrNilAccept for a malformed Problem.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           if the frontier empties with no accepted state.
//   - ErrStateLimit       if the MaxStates cap is reached.
//   - context errors and wrapped OnVisit errors.
//
// A start state that is already accepted yields an empty Path and a nil error.
package bfs
