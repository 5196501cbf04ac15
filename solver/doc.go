// Package solver turns a calculator puzzle description into a shortest key
// sequence.
//
// A Puzzle names a start display, a target display, the key tokens on the
// keypad and an optional portal. Puzzles come from YAML files (LoadPuzzles)
// or the classic line-oriented input (ReadPuzzle). A Solver parses the keys,
// runs breadth-first search over calculator States, inserts the STORE steps
// a recall needs and reports the result, with structured logs and optional
// Prometheus metrics.
//
// SolveAll solves independent puzzles concurrently and returns the outcomes
// in input order. Verify cross-checks a Solution against an exhaustive
// depth-limited enumeration.
package solver
