package syntax

import "github.com/coregx/microre/internal/errs"

func precedence(k Kind) int {
	switch k {
	case Concat:
		return 2
	case Alt:
		return 1
	default:
		return 0
	}
}

// opItem is either a pending binary operator (Alt/Concat) or a group
// sentinel pushed on LParen, carrying the group id and the output length
// at the moment the group opened (used to detect an empty group on close).
type opItem struct {
	sentinel bool
	kind     Kind
	pos      int
	gid      int
	mark     int
}

// ToPostfix runs the shunting-yard conversion described in the postfix
// converter design: operator scheduling, capture-group numbering, and the
// dangling-quantifier / unbalanced-paren validity checks. It returns the
// postfix token stream and the number of capture groups assigned.
func ToPostfix(tok []Token) ([]Token, int, error) {
	var output []Token
	var ops []opItem
	nextGid := 1
	lastWasOperand := false
	lastWasQuant := false

	popOperator := func() {
		top := ops[len(ops)-1]
		output = append(output, mkAt(top.kind, top.pos))
		ops = ops[:len(ops)-1]
	}

	for _, t := range tok {
		switch t.Kind {
		case Char, Dot, Class:
			output = append(output, t)
			lastWasOperand = true
			lastWasQuant = false

		case LParen:
			gid := nextGid
			nextGid++
			output = append(output, Token{Kind: CapStart, Group: gid, Pos: t.Pos})
			ops = append(ops, opItem{sentinel: true, gid: gid, mark: len(output), pos: t.Pos})
			// A quantifier immediately following '(' has nothing to
			// quantify yet, so this does not set lastWasOperand.
			lastWasOperand = false
			lastWasQuant = false

		case RParen:
			found := false
			for len(ops) > 0 {
				if ops[len(ops)-1].sentinel {
					found = true
					break
				}
				popOperator()
			}
			if !found {
				return nil, 0, errs.New(errs.UnbalancedParen, t.Pos)
			}
			sentinel := ops[len(ops)-1]
			ops = ops[:len(ops)-1]

			if len(output) == sentinel.mark {
				output = append(output, Token{Kind: CapEnd, Group: sentinel.gid, Pos: t.Pos})
				output = append(output, mkAt(Concat, t.Pos))
			} else {
				output = append(output, mkAt(Concat, t.Pos))
				output = append(output, Token{Kind: CapEnd, Group: sentinel.gid, Pos: t.Pos})
				output = append(output, mkAt(Concat, t.Pos))
			}
			lastWasOperand = true
			lastWasQuant = false

		case Alt, Concat:
			prec := precedence(t.Kind)
			for len(ops) > 0 && !ops[len(ops)-1].sentinel && precedence(ops[len(ops)-1].kind) >= prec {
				popOperator()
			}
			ops = append(ops, opItem{kind: t.Kind, pos: t.Pos})
			lastWasOperand = false
			lastWasQuant = false

		case Star, Plus, Qmark:
			if !lastWasOperand || lastWasQuant {
				return nil, 0, errs.New(errs.DanglingQuantifier, t.Pos)
			}
			output = append(output, mkAt(t.Kind, t.Pos))
			lastWasOperand = true
			lastWasQuant = true

		default:
			// CapStart/CapEnd cannot occur in lexer output; encountering
			// one here means the caller fed postfix tokens back in.
			return nil, 0, errs.New(errs.UnexpectedToken, t.Pos)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.sentinel {
			return nil, 0, errs.New(errs.UnbalancedParen, top.pos)
		}
		popOperator()
	}

	return output, nextGid - 1, nil
}
