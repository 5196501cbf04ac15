// Package calcpath finds shortest key sequences for calculator puzzles.
//
// 🚀 What is calcpath?
//
//	A puzzle gives a starting display, a target display and a handful of
//	keys (+3, *2, <<, reverse, mirror, store/recall, a digit portal…).
//	calcpath answers with the fewest presses that reach the target:
//		• Display rules: at most six digits, at most one decimal place
//		• Key catalog: every key as a pure State → successors function
//		• Search: generic breadth-first search over implicit state graphs
//		• Annotation: the STORE presses a recall depends on
//		• Verification: exhaustive iterative-deepening cross-check
//
// Under the hood, everything is organized under these subpackages:
//
//	display/   numeric validation, canonical rendering, the string pipeline
//	calc/      State, Operation constructors, token parser, portal
//	bfs/       Search over any Problem[S] with hooks and limits
//	dfs/       depth-limited enumeration used to verify optimality
//	annotate/  STORE insertion for recall steps
//	solver/    puzzles (YAML or line input), Solve, SolveAll, metrics
//
// Quick example:
//
//	start 1, target 83, keys *9 +2
//
//	    1 ─*9→ 9 ─*9→ 81 ─+2→ 83
//
// The calcpath command wraps the solver:
//
//	go install github.com/katalvlaran/calcpath/cmd/calcpath@latest
//	calcpath solve --start 1 --target 83 --keys "*9 +2"
package calcpath
