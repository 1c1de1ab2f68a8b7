package matcher

import "github.com/coregx/microre/internal/nfa"

// Captures is the result of a successful whole-input match: the capture
// slots recorded by the winning thread, indexed by group number (slot 0
// reserved, unused — the caller synthesizes the whole-match slot itself).
type Captures struct {
	Slots caps
}

// Group reports whether group g participated, and if so its [start, end)
// byte range. Absent groups return (0, 0, false).
func (c *Captures) Group(g int) (start, end int, ok bool) {
	if g < 0 || g >= len(c.Slots) {
		return 0, 0, false
	}
	s := c.Slots[g]
	if !s.hasStart || !s.hasEnd || s.start > s.end {
		return 0, 0, false
	}
	return s.start, s.end, true
}

// NumGroups returns the number of capture groups tracked (excluding the
// reserved slot 0).
func (c *Captures) NumGroups() int {
	return len(c.Slots) - 1
}

// better reports whether candidate (end c, caps cc) strictly outranks the
// incumbent (end ie, caps ic) under the deterministic preference order:
// longest end wins; then, per group in ascending order, the later start
// wins; then, per group in ascending order, the later end wins; otherwise
// the incumbent is kept. Ties at every level never favor the candidate —
// the first candidate encountered at a given rank wins.
func better(cEnd int, cc caps, iEnd int, ic caps, groups int) bool {
	if cEnd != iEnd {
		return cEnd > iEnd
	}
	for g := 1; g <= groups; g++ {
		a, b := cc[g], ic[g]
		if a.hasStart && b.hasStart && a.start != b.start {
			return a.start > b.start
		}
	}
	for g := 1; g <= groups; g++ {
		a, b := cc[g], ic[g]
		if a.hasEnd && b.hasEnd && a.end != b.end {
			return a.end > b.end
		}
	}
	return false
}

// Run simulates n over input and returns the capture slots of the best
// whole-input accepting thread, or ok=false if no thread consumes every
// byte and lands in the accept state.
//
// This differs from a classic Pike's-VM in its ε-closure dedup key: a
// textbook PikeVM dedupes visited states by state alone, which is correct
// there because thread insertion order alone already encodes the
// leftmost-greedy preference, making a later arrival at an already-seen
// state strictly dominated. This matcher instead picks the winning
// candidate after the fact with an explicit comparator, so two threads at
// the same state with different capture slots are not yet comparable —
// both must survive until better (above) disambiguates them. Dedup here
// is therefore keyed on (state, caps), not state alone.
func Run(n *nfa.NFA, input []byte) (*Captures, bool) {
	groups := n.Groups
	curr := epsilonClose(n, []thread{{state: n.Start, caps: newCaps(groups)}}, 0)

	var haveBest bool
	var bestEnd int
	var bestCaps caps

	total := len(input)
	for i := 0; i <= total; i++ {
		for _, t := range curr {
			if t.state != n.Accept {
				continue
			}
			if !haveBest || better(i, t.caps, bestEnd, bestCaps, groups) {
				haveBest = true
				bestEnd = i
				bestCaps = t.caps
			}
		}
		if i == total {
			break
		}

		b := input[i]
		var next []thread
		for _, t := range curr {
			for _, e := range n.States[t.state].Edges {
				switch e.Label.Kind {
				case nfa.Byte:
					if e.Label.B == b {
						next = append(next, thread{state: e.Target, caps: t.caps})
					}
				case nfa.Any:
					next = append(next, thread{state: e.Target, caps: t.caps})
				case nfa.Class:
					hit := false
					for _, r := range e.Label.Ranges {
						if r.Lo <= b && b <= r.Hi {
							hit = true
							break
						}
					}
					if hit == !e.Label.Negated {
						next = append(next, thread{state: e.Target, caps: t.caps})
					}
				}
			}
		}
		if len(next) == 0 {
			break
		}
		curr = epsilonClose(n, next, i+1)
	}

	if haveBest && bestEnd == total {
		return &Captures{Slots: bestCaps}, true
	}
	return nil, false
}
