// Package display implements the numeric rules every calculator display obeys.
//
// What
//
//   - Numeric parses display text into a number, accepting the partial forms
//     ("1.", ".5") that positional digit transforms leave behind.
//   - Canonical renders a number the way the display shows it: integral values
//     lose their ".0", negative zero becomes "0".
//   - Validate accepts only values representable with one decimal place
//     (|round(x,1) - x| < Tolerance) and returns their canonical text.
//   - Normalize and FromNumber are the two pipelines transforms feed their raw
//     results through; both apply the width gate (MaxWidth characters, sign excluded).
//   - SignIsolated lets a digit transform ignore the sign entirely.
//
// Invalid values are reported through a false second return, never through
// panics or errors: an invalid result is simply not a display.
//
// Complexity
//
//	Every function is O(len(text)).
package display
