package syntax

import "github.com/coregx/microre/internal/errs"

var (
	digitRanges = []Range{{'0', '9'}}
	spaceRanges = []Range{
		{' ', ' '}, {'\t', '\t'}, {'\n', '\n'}, {'\r', '\r'}, {0x0B, 0x0B}, {0x0C, 0x0C},
	}
	wordRanges = []Range{
		{'0', '9'}, {'A', 'Z'}, {'a', 'z'}, {'_', '_'},
	}
)

// Lex tokenizes a pattern into a sequence of tokens. It never emits
// CapStart/CapEnd — those belong to the postfix stage.
func Lex(pattern string) ([]Token, error) {
	b := []byte(pattern)
	n := len(b)
	var toks []Token

	i := 0
	for i < n {
		start := i
		c := b[i]
		switch c {
		case '\\':
			i++
			if i >= n {
				return nil, errs.New(errs.UnexpectedEof, start)
			}
			e := b[i]
			i++
			switch e {
			case 'd':
				toks = append(toks, classTok(digitRanges, false, start))
			case 'D':
				toks = append(toks, classTok(digitRanges, true, start))
			case 's':
				toks = append(toks, classTok(spaceRanges, false, start))
			case 'S':
				toks = append(toks, classTok(spaceRanges, true, start))
			case 'w':
				toks = append(toks, classTok(wordRanges, false, start))
			case 'W':
				toks = append(toks, classTok(wordRanges, true, start))
			case 't':
				toks = append(toks, charTok('\t', start))
			case 'n':
				toks = append(toks, charTok('\n', start))
			case 'r':
				toks = append(toks, charTok('\r', start))
			default:
				toks = append(toks, charTok(e, start))
			}
		case '.':
			toks = append(toks, mkAt(Dot, start))
			i++
		case '(':
			toks = append(toks, mkAt(LParen, start))
			i++
		case ')':
			toks = append(toks, mkAt(RParen, start))
			i++
		case '|':
			toks = append(toks, mkAt(Alt, start))
			i++
		case '*':
			toks = append(toks, mkAt(Star, start))
			i++
		case '+':
			toks = append(toks, mkAt(Plus, start))
			i++
		case '?':
			toks = append(toks, mkAt(Qmark, start))
			i++
		case '[':
			tok, next, err := lexClass(b, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		default:
			toks = append(toks, charTok(c, start))
			i++
		}
	}
	return toks, nil
}

// lexClass parses a bracketed character class starting at b[start] == '['.
// It returns the Class token and the index just past the closing ']'.
func lexClass(b []byte, start int) (Token, int, error) {
	n := len(b)
	i := start + 1

	negated := false
	if i < n && b[i] == '^' {
		negated = true
		i++
	}

	var ranges []Range
	first := true
	for {
		if i >= n {
			return Token{}, 0, errs.New(errs.UnbalancedClass, start)
		}
		c1 := b[i]
		if c1 == ']' && !first {
			return classTok(ranges, negated, start), i + 1, nil
		}
		first = false
		i++
		if i+1 < n && b[i] == '-' && b[i+1] != ']' {
			ranges = append(ranges, Range{c1, b[i+1]})
			i += 2
		} else {
			ranges = append(ranges, Range{c1, c1})
		}
	}
}
