// Package matcher implements the thread-set NFA simulation: parallel
// ε-closure with per-thread capture slots, one input byte at a time, with
// duplicate threads pruned by exact (state, caps) equality rather than by
// state alone (see Run's doc comment for why that distinction matters
// here).
package matcher

import "github.com/coregx/microre/internal/nfa"

// capSlot is one capture group's (start, end) byte-offset pair. Each
// endpoint is tracked independently as present/absent so a group that
// began but never closed (or never ran at all) is distinguishable from
// one that closed at offset 0.
type capSlot struct {
	start, end       int
	hasStart, hasEnd bool
}

// caps is a thread's full capture-slot vector, indexed by group number.
// Slot 0 is reserved and never written — the whole-match substring is
// reconstructed by the caller from the final accepting position, not
// tracked as a capture slot.
type caps []capSlot

func newCaps(groups int) caps {
	return make(caps, groups+1)
}

func (c caps) withStart(g, pos int) caps {
	nc := make(caps, len(c))
	copy(nc, c)
	nc[g].start = pos
	nc[g].hasStart = true
	return nc
}

func (c caps) withEnd(g, pos int) caps {
	nc := make(caps, len(c))
	copy(nc, c)
	nc[g].end = pos
	nc[g].hasEnd = true
	return nc
}

func capsEqual(a, b caps) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// thread is a candidate computation: a current NFA state plus the
// capture slots accumulated to reach it.
type thread struct {
	state int
	caps  caps
}

// epsilonClose runs the worklist traversal described for ε-closure at
// position pos: every Eps/CapBegin/CapEnd edge out of a thread's state is
// followed without consuming input, propagating (and, for capture edges,
// extending) that thread's caps.
//
// Dedup is keyed on exact (state, caps) equality, not state alone (see
// Run's doc comment for why), but NFA state IDs are dense integers known
// up front from n.States, so the "has this state been reached by any
// thread at all" question doesn't need a set type: seenAt[s] holds the
// out-slice indices of every thread already emitted at state s, nil when
// none has. A nil slice answers the fast path in one slice index and a
// length check; only a non-nil entry pays for the per-capture-group
// equality fallback the (state, caps) key actually requires.
func epsilonClose(n *nfa.NFA, start []thread, pos int) []thread {
	out := make([]thread, 0, len(start))
	seenAt := make([][]int, len(n.States))

	queue := append([]thread(nil), start...)
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		dup := false
		for _, idx := range seenAt[t.state] {
			if capsEqual(out[idx].caps, t.caps) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		idx := len(out)
		out = append(out, t)
		seenAt[t.state] = append(seenAt[t.state], idx)

		for _, e := range n.States[t.state].Edges {
			switch e.Label.Kind {
			case nfa.Eps:
				queue = append(queue, thread{state: e.Target, caps: t.caps})
			case nfa.CapBegin:
				queue = append(queue, thread{state: e.Target, caps: t.caps.withStart(e.Label.Group, pos)})
			case nfa.CapEnd:
				queue = append(queue, thread{state: e.Target, caps: t.caps.withEnd(e.Label.Group, pos)})
			default:
				// Byte/Any/Class consume input; handled by the step loop.
			}
		}
	}
	return out
}
