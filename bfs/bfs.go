// Package bfs provides breadth-first search over an implicit state graph,
// returning a fewest-transition path to the first accepted state.
//
// States are generated on demand by Transitions; nothing is materialized
// up front, so the graph may be far larger than what the search touches.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its key and BFS depth.
type queueItem[S any] struct {
	key   string
	state S
	depth int
}

// record is the search record entry of a discovered state: the edge it was
// first reached by, or none for the start.
type record[S any] struct {
	state  S
	label  string
	parent string
	root   bool
}

// walker encapsulates mutable search state. It is owned by one Search call.
type walker[S any] struct {
	p      Problem[S]
	opts   Options
	ctx    context.Context
	queue  []queueItem[S]
	record map[string]record[S]
	res    *Result[S]
}

// Search runs breadth-first search from p.Start until p.Accept holds for a
// discovered state, applying any number of functional Options.
//
// Returns ErrNoTransitions, ErrNilTransition, ErrNilKey or ErrNilAccept for
// a malformed Problem, ErrOptionViolation for bad options, ErrNoPath when
// the frontier empties, ErrStateLimit when the state cap is hit, the
// context error on cancellation, or any user-supplied hook error.
// The Result is non-nil whenever the Problem and options were valid, so the
// expansion counters are available on failure too.
func Search[S any](p Problem[S], opts ...Option) (*Result[S], error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		p:      p,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]queueItem[S], 0, 64),
		record: make(map[string]record[S], 64),
		res:    &Result[S]{Path: []Step[S]{}},
	}

	// Seed the record with the start (no predecessor)
	startKey := p.Key(p.Start)
	w.record[startKey] = record[S]{state: p.Start, root: true}
	w.res.Discovered = 1
	if p.Accept(p.Start) {
		return w.res, nil
	}
	w.enqueue(startKey, p.Start, 0)

	return w.res, w.loop()
}

// enqueue calls OnEnqueue and appends the state to the frontier.
func (w *walker[S]) enqueue(key string, s S, depth int) {
	w.opts.OnEnqueue(key, depth)
	w.queue = append(w.queue, queueItem[S]{key: key, state: s, depth: depth})
}

// loop processes the frontier until acceptance, exhaustion, error or cancellation.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		found, err := w.expand(item)
		if err != nil {
			return err
		}
		if found != "" {
			w.res.Path = w.reconstruct(found)
			return nil
		}
	}
	return ErrNoPath
}

// dequeue pops the head of the frontier and invokes OnDequeue.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	var zero queueItem[S]
	w.queue[0] = zero
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.key, item.depth)
	return item
}

// visit counts the expansion and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Expanded++
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
	}
	return nil
}

// expand applies every transition to item in list order. Each successor not
// yet in the record is recorded, enqueued and tested against Accept; the key
// of the first accepted successor is returned.
func (w *walker[S]) expand(item queueItem[S]) (string, error) {
	for _, t := range w.p.Transitions {
		for _, next := range t.Apply(item.state) {
			key := w.p.Key(next)
			// first discovery wins
			if _, seen := w.record[key]; seen {
				continue
			}
			if w.opts.MaxStates > 0 && len(w.record) >= w.opts.MaxStates {
				return "", fmt.Errorf("%w: %d states", ErrStateLimit, len(w.record))
			}
			w.record[key] = record[S]{state: next, label: t.Label(next), parent: item.key}
			w.res.Discovered++
			w.enqueue(key, next, item.depth+1)
			if w.p.Accept(next) {
				return key, nil
			}
		}
	}
	return "", nil
}

// reconstruct walks the record back from key to the start and returns the
// steps in start → goal order.
func (w *walker[S]) reconstruct(key string) []Step[S] {
	path := []Step[S]{}
	for cur := w.record[key]; !cur.root; cur = w.record[cur.parent] {
		path = append(path, Step[S]{Label: cur.label, State: cur.state})
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
