package calc

import (
	"strconv"

	"github.com/katalvlaran/calcpath/display"
)

// Kind identifies the family an Operation belongs to.
type Kind int

const (
	KindShift Kind = iota
	KindRotateLeft
	KindRotateRight
	KindReverse
	KindReplace
	KindAppend
	KindDigitSum
	KindMirror
	KindInvert
	KindNegate
	KindAdd
	KindSub
	KindMult
	KindDiv
	KindPow
	KindModifier
	KindRecall
)

var kindNames = [...]string{
	KindShift:       "shift",
	KindRotateLeft:  "rotate-left",
	KindRotateRight: "rotate-right",
	KindReverse:     "reverse",
	KindReplace:     "replace",
	KindAppend:      "append",
	KindDigitSum:    "digit-sum",
	KindMirror:      "mirror",
	KindInvert:      "invert",
	KindNegate:      "negate",
	KindAdd:         "add",
	KindSub:         "sub",
	KindMult:        "mult",
	KindDiv:         "div",
	KindPow:         "pow",
	KindModifier:    "increment-modifier",
	KindRecall:      "recall",
}

// String returns the family name, e.g. "rotate-left".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Operation is one calculator key: a transition from a State to its
// successors plus the label of each edge taken.
type Operation struct {
	kind  Kind
	token string
	apply func(State) []State
	label func(next State) string
}

// Apply returns the successors of s. An empty result means the key does not
// apply to s. The returned States share nothing with s.
func (o Operation) Apply(s State) []State {
	if o.apply == nil {
		return nil
	}
	return o.apply(s)
}

// Label names the edge into next, a State produced by Apply.
func (o Operation) Label(next State) string {
	if o.label == nil {
		return o.token
	}
	return o.label(next)
}

// Kind returns the operation family.
func (o Operation) Kind() Kind { return o.kind }

// Token returns the key token the operation was built from.
func (o Operation) Token() string { return o.token }

// String implements fmt.Stringer.
func (o Operation) String() string { return o.token }

// fixed labels every edge with the key token itself.
func fixed(token string) func(State) string {
	return func(State) string { return token }
}

// textual builds an operation whose transform works on the display text.
// When isolate is set the transform only sees the unsigned digits.
func textual(kind Kind, token string, isolate bool, fn func(text string) (string, bool)) Operation {
	return Operation{
		kind:  kind,
		token: token,
		apply: func(s State) []State {
			var (
				raw string
				ok  bool
			)
			if isolate {
				raw, ok = display.SignIsolated(s.display, fn)
			} else {
				raw, ok = fn(s.display)
			}
			if !ok {
				return nil
			}
			d, ok := display.Normalize(raw)
			return settle(s, d, ok)
		},
		label: fixed(token),
	}
}

// arithmetic builds an operation combining the display value with the
// effective operand n+modifier. Its edges are labelled symbol+operand, with
// the sign of a negative operand folded into + and -.
func arithmetic(kind Kind, symbol string, n float64, fn func(x, k float64) float64) Operation {
	return Operation{
		kind:  kind,
		token: symbol + display.Canonical(n),
		apply: func(s State) []State {
			x, ok := display.Numeric(s.display)
			if !ok {
				return nil
			}
			d, ok := display.FromNumber(fn(x, effective(n, s.modifier)))
			return settle(s, d, ok)
		},
		label: func(next State) string {
			return operandLabel(symbol, effective(n, next.modifier))
		},
	}
}

// operandLabel renders symbol+k. A negative k folds into the sign of + and -
// so a label never reads "--2" or "+-1".
func operandLabel(symbol string, k float64) string {
	if k < 0 {
		switch symbol {
		case "+":
			return "-" + display.Canonical(-k)
		case "-":
			return "+" + display.Canonical(-k)
		}
	}
	return symbol + display.Canonical(k)
}

func effective(n float64, modifier int) float64 {
	return n + float64(modifier)
}

// settle is the last pipeline stage: it turns a normalized display into a
// single successor that records the new display in its history.
func settle(s State, d string, ok bool) []State {
	if !ok {
		return nil
	}
	b := s.edit()
	b.display = d

	return []State{b.record().freeze()}
}
