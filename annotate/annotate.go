// Package annotate rewrites a found key sequence so it can be replayed by
// hand: every value a recall pastes must have been stored explicitly, so a
// STORE pseudo-step is inserted right after the step that produced it.
//
// Policy
//
//	The path is scanned from the end. A recall step makes the value it
//	pasted the one being sought; the nearest earlier step whose display
//	equals that value gets a STORE after it and the seek is cleared. A
//	later recall replaces any seek still pending. A seek unresolved at the
//	start of the path is anchored at the origin, before the first step.
package annotate

import (
	"github.com/katalvlaran/calcpath/bfs"
	"github.com/katalvlaran/calcpath/calc"
)

// StoreLabel labels an inserted store pseudo-step.
const StoreLabel = "STORE"

// origin marks a store before the first step.
const origin = -1

// Stores returns path with STORE steps inserted. Each STORE step carries a
// copy of the State it stores (display and modifier at that position); an
// origin store carries start. The input slice is not modified.
func Stores(start calc.State, path []bfs.Step[calc.State]) []bfs.Step[calc.State] {
	marks := storePositions(path)
	if len(marks) == 0 {
		out := make([]bfs.Step[calc.State], len(path))
		copy(out, path)
		return out
	}

	out := make([]bfs.Step[calc.State], 0, len(path)+len(marks))
	if marks[origin] {
		out = append(out, bfs.Step[calc.State]{Label: StoreLabel, State: start})
	}
	for i, st := range path {
		out = append(out, st)
		if marks[i] {
			out = append(out, bfs.Step[calc.State]{Label: StoreLabel, State: st.State})
		}
	}

	return out
}

// storePositions runs the backward scan and returns the positions a STORE
// must follow.
func storePositions(path []bfs.Step[calc.State]) map[int]bool {
	var (
		marks   = map[int]bool{}
		sought  string
		pending bool
	)
	for i := len(path) - 1; i >= 0; i-- {
		if pending && path[i].State.Display() == sought {
			marks[i] = true
			pending = false
		}
		if v, ok := calc.ParseRecallLabel(path[i].Label); ok {
			sought, pending = v, true
		}
	}
	if pending {
		marks[origin] = true
	}

	return marks
}

// Count returns how many STORE steps path contains.
func Count(path []bfs.Step[calc.State]) int {
	n := 0
	for _, st := range path {
		if st.Label == StoreLabel {
			n++
		}
	}
	return n
}
