package nfa

import (
	"github.com/coregx/microre/internal/errs"
	"github.com/coregx/microre/internal/syntax"
)

// Builder composes Fragments from a postfix token stream, patching holes
// as fragments combine. A global_start state is preallocated at index 0
// before any atom is built.
type Builder struct {
	states    []State
	maxStates int // 0 means unlimited
}

// NewBuilder creates a Builder with its global_start state already in
// place at index 0. maxStates bounds the number of states the builder
// will allocate; 0 means unlimited.
func NewBuilder(maxStates int) *Builder {
	b := &Builder{maxStates: maxStates}
	b.states = append(b.states, State{}) // global_start, index 0
	return b
}

func (b *Builder) newState() (int, error) {
	if b.maxStates > 0 && len(b.states) >= b.maxStates {
		return 0, errs.New(errs.TooComplex, 0)
	}
	idx := len(b.states)
	b.states = append(b.states, State{})
	return idx, nil
}

// addHole appends an edge with an unresolved target and returns the hole
// identifying it.
func (b *Builder) addHole(state int, lbl Label) hole {
	edge := len(b.states[state].Edges)
	b.states[state].Edges = append(b.states[state].Edges, Edge{Label: lbl, Target: -1})
	return hole{state: state, edge: edge}
}

// addResolved appends an edge whose target is already known, such as the
// two epsilon branches of an Alt or the backward edge of a Star/Plus.
func (b *Builder) addResolved(state int, lbl Label, target int) {
	b.states[state].Edges = append(b.states[state].Edges, Edge{Label: lbl, Target: target})
}

func (b *Builder) patch(h hole, target int) {
	b.states[h.state].Edges[h.edge].Target = target
}

func (b *Builder) patchAll(outs []hole, target int) {
	for _, h := range outs {
		b.patch(h, target)
	}
}

func toLabelRanges(rs []syntax.Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	out := make([]Range, len(rs))
	for i, r := range rs {
		out[i] = Range{Lo: r.Lo, Hi: r.Hi}
	}
	return out
}

// Build performs Thompson construction over a postfix token stream,
// producing a complete NFA. groups is the capture-group count the postfix
// converter assigned (the max gid observed on CapStart/CapEnd).
func (b *Builder) Build(postfix []syntax.Token, groups int) (*NFA, error) {
	var stack []Fragment

	pushAtom := func(lbl Label) error {
		s, err := b.newState()
		if err != nil {
			return err
		}
		h := b.addHole(s, lbl)
		stack = append(stack, Fragment{start: s, outs: []hole{h}})
		return nil
	}

	for _, t := range postfix {
		switch t.Kind {
		case syntax.Char:
			if err := pushAtom(Label{Kind: Byte, B: t.Byte}); err != nil {
				return nil, err
			}

		case syntax.Dot:
			if err := pushAtom(Label{Kind: Any}); err != nil {
				return nil, err
			}

		case syntax.Class:
			lbl := Label{Kind: Class, Ranges: toLabelRanges(t.Ranges), Negated: t.Negated}
			if err := pushAtom(lbl); err != nil {
				return nil, err
			}

		case syntax.CapStart:
			if err := pushAtom(Label{Kind: CapBegin, Group: t.Group}); err != nil {
				return nil, err
			}

		case syntax.CapEnd:
			if err := pushAtom(Label{Kind: CapEnd, Group: t.Group}); err != nil {
				return nil, err
			}

		case syntax.Concat:
			if len(stack) < 2 {
				return nil, errs.New(errs.UnexpectedToken, t.Pos)
			}
			bFrag := stack[len(stack)-1]
			aFrag := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			b.patchAll(aFrag.outs, bFrag.start)
			stack = append(stack, Fragment{start: aFrag.start, outs: bFrag.outs})

		case syntax.Alt:
			if len(stack) < 2 {
				return nil, errs.New(errs.UnexpectedToken, t.Pos)
			}
			bFrag := stack[len(stack)-1]
			aFrag := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			s, err := b.newState()
			if err != nil {
				return nil, err
			}
			b.addResolved(s, Label{Kind: Eps}, aFrag.start)
			b.addResolved(s, Label{Kind: Eps}, bFrag.start)
			outs := append(append([]hole{}, aFrag.outs...), bFrag.outs...)
			stack = append(stack, Fragment{start: s, outs: outs})

		case syntax.Star:
			if len(stack) < 1 {
				return nil, errs.New(errs.UnexpectedToken, t.Pos)
			}
			aFrag := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			s, err := b.newState()
			if err != nil {
				return nil, err
			}
			b.addResolved(s, Label{Kind: Eps}, aFrag.start)
			h := b.addHole(s, Label{Kind: Eps})
			b.patchAll(aFrag.outs, s)
			stack = append(stack, Fragment{start: s, outs: []hole{h}})

		case syntax.Plus:
			if len(stack) < 1 {
				return nil, errs.New(errs.UnexpectedToken, t.Pos)
			}
			aFrag := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			s, err := b.newState()
			if err != nil {
				return nil, err
			}
			b.addResolved(s, Label{Kind: Eps}, aFrag.start)
			h := b.addHole(s, Label{Kind: Eps})
			b.patchAll(aFrag.outs, s)
			stack = append(stack, Fragment{start: aFrag.start, outs: []hole{h}})

		case syntax.Qmark:
			if len(stack) < 1 {
				return nil, errs.New(errs.UnexpectedToken, t.Pos)
			}
			aFrag := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			s, err := b.newState()
			if err != nil {
				return nil, err
			}
			b.addResolved(s, Label{Kind: Eps}, aFrag.start)
			h := b.addHole(s, Label{Kind: Eps})
			outs := append(append([]hole{}, aFrag.outs...), h)
			stack = append(stack, Fragment{start: s, outs: outs})

		case syntax.LParen, syntax.RParen:
			return nil, errs.New(errs.UnbalancedParen, t.Pos)

		default:
			return nil, errs.New(errs.UnexpectedToken, t.Pos)
		}
	}

	if len(stack) == 0 {
		// Degenerate empty pattern: global_start doubles as accept.
		return &NFA{States: b.states, Start: 0, Accept: 0, Groups: groups}, nil
	}
	if len(stack) != 1 {
		return nil, errs.New(errs.UnexpectedToken, 0)
	}

	frag := stack[0]
	accept, err := b.newState()
	if err != nil {
		return nil, err
	}
	b.patchAll(frag.outs, accept)

	if frag.start != 0 {
		b.addResolved(0, Label{Kind: Eps}, frag.start)
	}

	nf := &NFA{States: b.states, Start: 0, Accept: accept, Groups: groups}
	if err := Validate(nf); err != nil {
		return nil, err
	}
	return nf, nil
}
