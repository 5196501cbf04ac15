// Package calc models a calculator puzzle: the State a key press acts on and
// the catalog of key Operations that transform it.
//
// What
//
//   - State is an immutable triple: the display text, a modifier added to the
//     literal operand of arithmetic and append keys, and the history of
//     displays produced so far (consulted by the recall key).
//   - Operation pairs an Apply function (State → zero, one or many successors)
//     with a Label function naming the edge into each successor.
//   - Constructors (Shift, Reverse, Add, Recall, ...) build every key the game
//     knows; Parse builds them from their textual tokens.
//   - Portal wraps any Operation and relocates digits of every successor.
//
// Failure policy
//
//	A key that does not apply to a State returns no successors. Nothing in
//	this package panics or errors on a legal State: invalid displays are
//	filtered out before a successor is ever built.
//
// Pipeline
//
//	Every Apply runs the same ordered stages:
//	  guard → transform (sign-isolated for positional keys) → normalize
//	  → edit a private builder (display, modifier, history) → freeze.
//	The builder never escapes the Operation; callers only see frozen States.
//
// Tokens
//
//	<<  shift          R  reverse        M  mirror        S  recall
//	I   invert         <  rotate left    >  rotate right  -  negate
//	+   digit sum      A=>B replace      [+]N modifier    N  append
//	+N -N *N /N ^N     arithmetic
package calc
