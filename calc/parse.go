package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse builds the Operation for one key token. See the package
// documentation for the grammar.
func Parse(token string) (Operation, error) {
	switch token {
	case "<<":
		return Shift(), nil
	case "R":
		return Reverse(), nil
	case "M":
		return Mirror(), nil
	case "S":
		return Recall(), nil
	case "I":
		return Invert(), nil
	case "<":
		return RotateLeft(), nil
	case ">":
		return RotateRight(), nil
	case "-":
		return Negate(), nil
	case "+":
		return DigitSum(), nil
	case "":
		return Operation{}, fmt.Errorf("%w: empty token", ErrBadToken)
	}

	if old, repl, ok := strings.Cut(token, "=>"); ok {
		if old == "" {
			return Operation{}, fmt.Errorf("%w: %q replaces nothing", ErrBadToken, token)
		}
		return Replace(old, repl), nil
	}

	if rest, ok := strings.CutPrefix(token, "[+]"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Operation{}, fmt.Errorf("%w: %q: %v", ErrBadToken, token, err)
		}
		return IncrementModifier(n), nil
	}

	if build, ok := arithmeticKeys[token[0]]; ok {
		n, err := parseOperand(token[1:])
		if err != nil {
			return Operation{}, fmt.Errorf("%w: %q: %v", ErrBadToken, token, err)
		}
		return build(n), nil
	}

	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return Operation{}, fmt.Errorf("%w: %q", ErrBadToken, token)
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return Operation{}, fmt.Errorf("%w: %q: %v", ErrBadToken, token, err)
	}

	return Append(n), nil
}

// ParseAll parses every token, in order, stopping at the first bad one.
func ParseAll(tokens []string) ([]Operation, error) {
	ops := make([]Operation, 0, len(tokens))
	for _, tok := range tokens {
		op, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, nil
}

var arithmeticKeys = map[byte]func(float64) Operation{
	'+': Add,
	'-': Sub,
	'*': Mult,
	'/': Div,
	'^': Pow,
}

func parseOperand(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("operand %q is not finite", s)
	}

	return n, nil
}
