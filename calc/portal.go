package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/calcpath/display"
)

// Portal moves digits that land on position Down (counted from the least
// significant digit, starting at 0) to position Up, where they are added
// back in. The move repeats until the display is no wider than Down digits.
type Portal struct {
	Down int
	Up   int
}

// NewPortal validates a portal. Down must sit strictly above Up so every
// move shrinks the value and the relocation terminates.
func NewPortal(down, up int) (Portal, error) {
	if up < 0 || down <= up {
		return Portal{}, fmt.Errorf("%w: down=%d up=%d (need down > up >= 0)", ErrPortalConfig, down, up)
	}
	return Portal{Down: down, Up: up}, nil
}

// Wrap returns op with the portal applied to every successor it produces.
// Successors whose display carries a decimal point are dropped. When op
// recorded its display in the history, the recorded entry is the relocated one.
func (p Portal) Wrap(op Operation) Operation {
	inner := op
	wrapped := op
	wrapped.apply = func(s State) []State {
		next := inner.Apply(s)
		out := next[:0:0]
		for _, n := range next {
			d, ok := p.Relocate(n.display)
			if !ok {
				continue
			}
			b := n.edit()
			b.display = d
			b.recalled = n.recalled
			if b.history != s.history {
				b.history = b.history.prev.push(d)
			}
			out = append(out, b.freeze())
		}
		return out
	}
	wrapped.label = inner.Label

	return wrapped
}

// Relocate applies the portal to a single display.
func (p Portal) Relocate(d string) (string, bool) {
	if display.HasPoint(d) {
		return "", false
	}
	neg := display.IsNegative(d)
	digits := strings.TrimPrefix(d, "-")
	for len(digits) > p.Down {
		i := len(digits) - 1 - p.Down
		moved := int(digits[i] - '0')
		rest, err := strconv.Atoi("0" + digits[:i] + digits[i+1:])
		if err != nil {
			return "", false
		}
		digits = strconv.Itoa(rest + moved*pow10(p.Up))
	}
	if neg {
		digits = "-" + digits
	}

	return display.Normalize(digits)
}

// String renders the portal as its input line, "down up".
func (p Portal) String() string {
	return strconv.Itoa(p.Down) + " " + strconv.Itoa(p.Up)
}

func pow10(n int) int {
	v := 1
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}
