package calc

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/calcpath/display"
)

// KeyFunc returns the state fingerprint a search over ops should deduplicate on.
//
// Without a recall key the history never influences a successor, so States
// are identified by display and modifier alone. With a recall key only the
// distinct non-negative history values matter: two States agreeing on them
// produce the same successors under every key. Either projection keeps the
// reachable space finite where the full history would not.
func KeyFunc(ops []Operation) func(State) string {
	for _, op := range ops {
		if op.kind == KindRecall {
			return recallKey
		}
	}
	return coreKey
}

func coreKey(s State) string {
	return s.display + "|" + strconv.Itoa(s.modifier)
}

func recallKey(s State) string {
	var vals []string
	seen := make(map[string]struct{})
	for e := s.history; e != nil; e = e.prev {
		if _, dup := seen[e.value]; dup || display.IsNegative(e.value) {
			continue
		}
		seen[e.value] = struct{}{}
		vals = append(vals, e.value)
	}
	sort.Strings(vals)

	return coreKey(s) + "|" + strings.Join(vals, ",")
}
