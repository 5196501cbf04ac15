package display

import (
	"math"
	"strconv"
	"strings"
)

const (
	// MaxWidth is the number of characters a display can show, sign excluded.
	MaxWidth = 6

	// Tolerance bounds the distance between a value and its one-decimal rounding.
	Tolerance = 0.001

	// Zero is the display shown when a transform erases every digit.
	Zero = "0"
)

// Numeric parses s into a number. Only digits, one optional leading sign and
// decimal points are accepted; exponents, hex and named values (Inf, NaN) are not.
func Numeric(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
		case (r == '-' || r == '+') && i == 0:
		default:
			return 0, false
		}
	}
	// integral text round-trips exactly as an integer
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(n), true
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return x, true
}

// Canonical renders x with the minimal representation that round-trips.
// Integral values carry no fractional part and negative zero renders as "0".
func Canonical(x float64) string {
	if x == 0 {
		return Zero
	}

	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Validate reports whether x fits the one-decimal rule and, if so, returns
// the canonical text of its rounded value.
func Validate(x float64) (string, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", false
	}
	r := math.Round(x*10) / 10
	if math.Abs(r-x) >= Tolerance {
		return "", false
	}

	return Canonical(r), true
}

// FromNumber runs a numeric transform result through validation and the width gate.
func FromNumber(x float64) (string, bool) {
	s, ok := Validate(x)
	if !ok || Width(s) > MaxWidth {
		return "", false
	}

	return s, true
}

// Normalize runs a textual transform result through parsing, validation and
// the width gate. Text with no digits left ("", ".", "-") reads as zero.
func Normalize(raw string) (string, bool) {
	switch raw {
	case "", ".", "-":
		return Zero, true
	}
	x, ok := Numeric(raw)
	if !ok {
		return "", false
	}

	return FromNumber(x)
}

// Width is the number of characters s occupies on the display, sign excluded.
func Width(s string) int {
	return len(strings.TrimPrefix(s, "-"))
}

// HasPoint reports whether s carries a decimal point.
func HasPoint(s string) bool {
	return strings.Contains(s, ".")
}

// IsNegative reports whether s starts with a minus sign.
func IsNegative(s string) bool {
	return strings.HasPrefix(s, "-")
}

// SignIsolated applies fn to the unsigned digits of s and reattaches a leading
// "-" to whatever fn returns. The reattached sign is not checked again here;
// Normalize decides whether the signed text is a display.
func SignIsolated(s string, fn func(string) (string, bool)) (string, bool) {
	if IsNegative(s) {
		out, ok := fn(s[1:])
		if !ok {
			return "", false
		}
		return "-" + out, true
	}

	return fn(s)
}

// Reverse returns s with its bytes in reverse order. Displays are ASCII.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}
