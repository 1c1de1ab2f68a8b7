package nfa

import "github.com/coregx/microre/internal/errs"

// Validate walks every state checking edge targets land in bounds, that
// accept has no outgoing edges, and that every group in 1..=Groups has at
// least one CapBegin and one CapEnd edge somewhere in the graph. A failure
// here indicates a builder bug, not a pattern defect, but it is surfaced
// as an UnexpectedToken error rather than a panic so a caller embedding
// this engine never crashes on a malformed internal graph.
func Validate(n *NFA) error {
	if len(n.States[n.Accept].Edges) != 0 {
		return errs.New(errs.UnexpectedToken, 0)
	}

	begins := make([]bool, n.Groups+1)
	ends := make([]bool, n.Groups+1)

	for _, st := range n.States {
		for _, e := range st.Edges {
			if e.Target < 0 || e.Target >= len(n.States) {
				return errs.New(errs.UnexpectedToken, 0)
			}
			switch e.Label.Kind {
			case CapBegin:
				if e.Label.Group >= 1 && e.Label.Group <= n.Groups {
					begins[e.Label.Group] = true
				}
			case CapEnd:
				if e.Label.Group >= 1 && e.Label.Group <= n.Groups {
					ends[e.Label.Group] = true
				}
			}
		}
	}

	for g := 1; g <= n.Groups; g++ {
		if !begins[g] || !ends[g] {
			return errs.New(errs.UnexpectedToken, 0)
		}
	}
	return nil
}
