package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/calcpath/display"
)

// Shift drops the last character of the display ("<<").
func Shift() Operation {
	return textual(KindShift, "<<", true, func(s string) (string, bool) {
		return s[:len(s)-1], true
	})
}

// RotateLeft moves the first digit to the end ("<").
func RotateLeft() Operation {
	return textual(KindRotateLeft, "<", true, func(s string) (string, bool) {
		return s[1:] + s[:1], true
	})
}

// RotateRight moves the last digit to the front (">").
func RotateRight() Operation {
	return textual(KindRotateRight, ">", true, func(s string) (string, bool) {
		return s[len(s)-1:] + s[:len(s)-1], true
	})
}

// Reverse reverses the digits ("R"). "12.5" becomes "5.21", which then fails
// the one-decimal rule and yields no successor.
func Reverse() Operation {
	return textual(KindReverse, "R", true, func(s string) (string, bool) {
		return display.Reverse(s), true
	})
}

// Replace substitutes every occurrence of old with repl ("old=>repl"). The
// sign and the decimal point are ordinary characters here.
func Replace(old, repl string) Operation {
	return textual(KindReplace, old+"=>"+repl, false, func(s string) (string, bool) {
		return strings.ReplaceAll(s, old, repl), true
	})
}

// Append types the digits of n+modifier after the display ("n").
// Displays with a decimal point accept no more digits.
func Append(n int) Operation {
	op := Operation{kind: KindAppend, token: strconv.Itoa(n)}
	op.apply = func(s State) []State {
		if display.HasPoint(s.display) {
			return nil
		}
		d, ok := display.Normalize(s.display + strconv.Itoa(n+s.modifier))
		return settle(s, d, ok)
	}
	op.label = func(next State) string {
		return strconv.Itoa(n + next.modifier)
	}

	return op
}

// DigitSum replaces the display with the sum of its digits ("+").
func DigitSum() Operation {
	return textual(KindDigitSum, "+", true, func(s string) (string, bool) {
		if display.HasPoint(s) {
			return "", false
		}
		sum := 0
		for i := 0; i < len(s); i++ {
			if s[i] >= '0' && s[i] <= '9' {
				sum += int(s[i] - '0')
			}
		}
		return strconv.Itoa(sum), true
	})
}

// Mirror appends the reversed digits to the display ("M").
func Mirror() Operation {
	return textual(KindMirror, "M", true, func(s string) (string, bool) {
		if display.HasPoint(s) {
			return "", false
		}
		return s + display.Reverse(s), true
	})
}

// Invert replaces every digit d with 9-d ("I"). The decimal point is kept.
func Invert() Operation {
	return textual(KindInvert, "I", true, func(s string) (string, bool) {
		b := []byte(s)
		for i, c := range b {
			if c >= '0' && c <= '9' {
				b[i] = '9' - (c - '0')
			}
		}
		return string(b), true
	})
}

// Negate flips the sign of the display ("-").
func Negate() Operation {
	op := arithmetic(KindNegate, "-", 0, func(x, _ float64) float64 { return -x })
	op.token = "-"
	op.label = fixed("-")

	return op
}

// Add adds n+modifier ("+n").
func Add(n float64) Operation {
	return arithmetic(KindAdd, "+", n, func(x, k float64) float64 { return x + k })
}

// Sub subtracts n+modifier ("-n").
func Sub(n float64) Operation {
	return arithmetic(KindSub, "-", n, func(x, k float64) float64 { return x - k })
}

// Mult multiplies by n+modifier ("*n").
func Mult(n float64) Operation {
	return arithmetic(KindMult, "*", n, func(x, k float64) float64 { return x * k })
}

// Div divides by n+modifier ("/n"). Quotients that need more than one decimal
// place, and division by zero, yield no successor.
func Div(n float64) Operation {
	return arithmetic(KindDiv, "/", n, func(x, k float64) float64 { return x / k })
}

// Pow raises the display to the power n+modifier ("^n").
func Pow(n float64) Operation {
	return arithmetic(KindPow, "^", n, math.Pow)
}

// IncrementModifier adds n to the modifier ("[+]n"). The display is unchanged
// but is still recorded in the history.
func IncrementModifier(n int) Operation {
	token := "[+]" + strconv.Itoa(n)
	return Operation{
		kind:  KindModifier,
		token: token,
		apply: func(s State) []State {
			b := s.edit()
			b.modifier += n
			return []State{b.record().freeze()}
		},
		label: fixed(token),
	}
}

// Recall pastes a previously produced display after the current one ("S").
// It yields one successor per distinct non-negative history value that fits:
// the display must have no decimal point and the pasted text must not exceed
// display.MaxWidth characters. Recall does not extend the history.
func Recall() Operation {
	return Operation{
		kind:  KindRecall,
		token: "S",
		apply: recall,
		label: func(next State) string {
			return RecallLabel(next.recalled)
		},
	}
}

func recall(s State) []State {
	if display.HasPoint(s.display) {
		return nil
	}
	var (
		out  []State
		seen = make(map[string]struct{}, s.history.len())
	)
	for _, v := range s.history.slice() {
		if _, dup := seen[v]; dup || display.IsNegative(v) {
			continue
		}
		seen[v] = struct{}{}
		raw := s.display + v
		if len(raw) > display.MaxWidth {
			continue
		}
		d, ok := display.Normalize(raw)
		if !ok {
			continue
		}
		b := s.edit()
		b.display = d
		b.recalled = v
		out = append(out, b.freeze())
	}

	return out
}

// RecallLabel is the label of a recall edge that pasted v.
func RecallLabel(v string) string {
	return "S(" + v + ")"
}

// ParseRecallLabel returns the value named by a recall label.
func ParseRecallLabel(label string) (string, bool) {
	if !strings.HasPrefix(label, "S(") || !strings.HasSuffix(label, ")") || len(label) < 4 {
		return "", false
	}
	return label[2 : len(label)-1], true
}
