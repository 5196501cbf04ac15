package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/calcpath/display"
)

// Sentinel errors for building States and Operations.
var (
	// ErrBadDisplay is returned when a start display is not a valid display.
	ErrBadDisplay = errors.New("calc: invalid display")

	// ErrBadToken is returned by Parse for tokens outside the key grammar.
	ErrBadToken = errors.New("calc: unrecognized key token")

	// ErrPortalConfig is returned by NewPortal unless down > up >= 0.
	ErrPortalConfig = errors.New("calc: invalid portal configuration")
)

// State is one configuration of the calculator. The zero value is not
// meaningful; use NewState.
type State struct {
	display  string
	modifier int
	history  *entry

	// recalled is the history value a recall pasted to produce this State.
	// It names the incoming edge only and takes no part in equality.
	recalled string
}

// NewState returns the starting State for display d. The history is seeded
// with d so that the starting value can be recalled.
func NewState(d string) (State, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return State{}, fmt.Errorf("%w: empty", ErrBadDisplay)
	}
	norm, ok := display.Normalize(d)
	if !ok {
		return State{}, fmt.Errorf("%w: %q", ErrBadDisplay, d)
	}

	return State{display: norm, history: &entry{value: norm, n: 1}}, nil
}

// Display returns the display text.
func (s State) Display() string { return s.display }

// Modifier returns the accumulated operand offset.
func (s State) Modifier() int { return s.modifier }

// History returns a copy of the displays produced so far, oldest first.
func (s State) History() []string {
	return s.history.slice()
}

// Recalled returns the history value pasted to reach s, if s came from a recall.
func (s State) Recalled() (string, bool) {
	return s.recalled, s.recalled != ""
}

// Key is an exact equality fingerprint over display, modifier and history.
func (s State) Key() string {
	var b strings.Builder
	b.WriteString(s.display)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(s.modifier))
	b.WriteByte('|')
	b.WriteString(strings.Join(s.history.slice(), ","))

	return b.String()
}

// String renders s for logs and test failures.
func (s State) String() string {
	return "{" + s.display + " mod=" + strconv.Itoa(s.modifier) + " hist=[" + strings.Join(s.history.slice(), " ") + "]}"
}

// entry is one node of a history. Successors share their predecessor's
// entries, so a State costs one node over its parent, never a copy.
type entry struct {
	value string
	prev  *entry
	n     int
}

func (e *entry) len() int {
	if e == nil {
		return 0
	}
	return e.n
}

// slice returns the values oldest first.
func (e *entry) slice() []string {
	out := make([]string, e.len())
	for i := len(out) - 1; e != nil; i, e = i-1, e.prev {
		out[i] = e.value
	}
	return out
}

// push returns a history with v appended.
func (e *entry) push(v string) *entry {
	return &entry{value: v, prev: e, n: e.len() + 1}
}

// builder is the mutable form of a State used while an Operation computes a
// successor. The history it starts from is shared and never modified.
type builder struct {
	display  string
	modifier int
	history  *entry
	recalled string
}

// edit starts a successor of s.
func (s State) edit() *builder {
	return &builder{display: s.display, modifier: s.modifier, history: s.history}
}

// record appends the current display to the history.
func (b *builder) record() *builder {
	b.history = b.history.push(b.display)
	return b
}

func (b *builder) freeze() State {
	return State{display: b.display, modifier: b.modifier, history: b.history, recalled: b.recalled}
}
