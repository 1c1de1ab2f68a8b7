// Package nfa implements Thompson construction: building a graph of states
// with labeled edges from a postfix token stream, using the hole-patching
// technique (a fragment's unresolved edges are patched in place as fragments
// compose).
package nfa

// LabelKind tags the variant held by a Label.
type LabelKind int

const (
	Eps LabelKind = iota
	Byte
	Any
	Class
	CapBegin
	CapEnd
)

// Range is an inclusive byte range (lo, hi) inside a Class label.
type Range struct {
	Lo, Hi byte
}

// Label is the tagged union carried by an Edge. Only the fields relevant
// to Kind are meaningful: Byte for Byte, Ranges/Negated for Class, Group
// for CapBegin/CapEnd.
type Label struct {
	Kind    LabelKind
	B       byte
	Ranges  []Range
	Negated bool
	Group   int
}

// Edge is a single outgoing transition: a label and the state it leads to.
type Edge struct {
	Label  Label
	Target int
}

// State is an ordered list of outgoing edges. A state's identity is its
// index into the NFA's state vector — there are no owning pointers between
// states, only integer indices, so the cycles Thompson fragments contain
// (from Star/Plus) are represented without trouble.
type State struct {
	Edges []Edge
}

// NFA is the compiled automaton: a state vector plus the distinguished
// start and accept indices and the number of capture groups it tracks.
type NFA struct {
	States []State
	Start  int
	Accept int
	Groups int
}

// hole is an edge awaiting a target: the (state, edge-within-state) pair
// identifying exactly which transition still needs patching.
type hole struct {
	state int
	edge  int
}

// Fragment is a partial NFA with one entry state and a set of unresolved
// outgoing edges, per Thompson's construction.
type Fragment struct {
	start int
	outs  []hole
}
