package ast

import "github.com/coregx/regexlite/internal/conv"

// Parse lexes and parses pattern into a Tree, following the precedence
// alternation (lowest) > concatenation > quantification (postfix, highest)
// described for the recursive-descent parser.
func Parse(pattern []byte) (*Tree, error) {
	toks, err := Lex(pattern)
	if err != nil {
		return nil, err
	}

	tree := NewTree()
	p := &parser{toks: toks, tree: tree}

	exprIdx, err := p.parseExpr(true)
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		// A leftover RPAREN means more ')' than '(': not literally
		// "unterminated", but it is the same imbalance defect and shares
		// the closest error bucket in the supported error set.
		if p.peek().Kind == KindRParen {
			return nil, ErrUnterminatedGroup
		}
		return nil, &BadTokenError{Pos: p.peek().Pos}
	}

	reIdx := tree.Add(Node{Kind: NodeRE, Children: []int{exprIdx}, Min: 1, Max: 1})
	tree.Root = reIdx
	return tree, nil
}

type parser struct {
	toks []Token
	pos  int
	tree *Tree
}

func (p *parser) atEOF() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() Token {
	if p.atEOF() {
		return Token{Kind: KindElement, Pos: p.endPos()}
	}
	return p.toks[p.pos]
}

func (p *parser) endPos() int {
	if len(p.toks) == 0 {
		return 0
	}
	return p.toks[len(p.toks)-1].Pos + 1
}

func (p *parser) next() Token {
	tok := p.peek()
	if !p.atEOF() {
		p.pos++
	}
	return tok
}

// parseExpr parses an alternation: a sequence of one or more
// concatenations separated by '|'. Each concatenation is wrapped in an
// anonymous (non-capturing, unnamed) GROUP node that serves purely as a
// concat container, per the invariant that GROUP children form a
// concatenation sequence. Deeper alternations nest right-associatively:
// a|b|c becomes OR(a, OR(b, c)).
//
// stopAtRParen tells the inner concatenation parser to also stop at an
// unmatched ')' - used when parsing the body of a "(...)" group, and by
// Parse so that a stray top-level ')' is left for its imbalance check.
func (p *parser) parseExpr(stopAtRParen bool) (int, error) {
	var branches []int
	for {
		atoms, err := p.parseConcat(stopAtRParen)
		if err != nil {
			return 0, err
		}
		branches = append(branches, p.tree.Add(Node{Kind: NodeGroup, Children: atoms, Min: 1, Max: 1}))

		if p.peek().Kind == KindBar {
			p.next()
			continue
		}
		break
	}

	result := branches[len(branches)-1]
	for i := len(branches) - 2; i >= 0; i-- {
		result = p.tree.Add(Node{Kind: NodeOr, Children: []int{branches[i], result}, Min: 1, Max: 1})
	}
	return result, nil
}

func (p *parser) parseConcat(stopAtRParen bool) ([]int, error) {
	var atoms []int
	for {
		if p.atEOF() {
			break
		}
		k := p.peek().Kind
		if k == KindBar {
			break
		}
		if stopAtRParen && k == KindRParen {
			break
		}
		idx, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, idx)
	}
	return atoms, nil
}

// parseAtom parses one quantifiable unit: a leaf, a character class, or a
// parenthesized group, followed by an optional postfix quantifier.
func (p *parser) parseAtom() (int, error) {
	tok := p.next()

	var idx int
	switch tok.Kind {
	case KindElement:
		idx = p.tree.Add(Node{Kind: NodeElement, Value: []byte{tok.Byte}, Min: 1, Max: 1})
	case KindWildcard:
		idx = p.tree.Add(Node{Kind: NodeWildcard, Min: 1, Max: 1})
	case KindSpaceClass:
		idx = p.tree.Add(Node{Kind: NodeSpace, Min: 1, Max: 1})
	case KindDigitClass:
		idx = p.tree.Add(Node{Kind: NodeDigit, Min: 1, Max: 1})
	case KindStartAnchor:
		idx = p.tree.Add(Node{Kind: NodeStart, Min: 1, Max: 1})
	case KindEndAnchor:
		idx = p.tree.Add(Node{Kind: NodeEnd, Min: 1, Max: 1})
	case KindLBracket:
		i, err := p.parseClass()
		if err != nil {
			return 0, err
		}
		idx = i
	case KindLParen:
		i, err := p.parseGroup()
		if err != nil {
			return 0, err
		}
		idx = i
	case KindStar, KindPlus, KindQuestion:
		// A quantifier with no preceding atom to apply to.
		return 0, ErrBadQuantifier
	default:
		// Structural bytes with no meaning outside their special context
		// ('-' outside a class, ']' with no matching '[', a stray '{' that
		// never became a valid quantifier, ',' outside braces, '^' not
		// negating a class) fall back to their literal source byte - the
		// lexer is grammar-unaware, so the parser resolves the ambiguity.
		idx = p.tree.Add(Node{Kind: NodeElement, Value: []byte{tok.Byte}, Min: 1, Max: 1})
	}

	if err := p.applyQuantifier(idx); err != nil {
		return 0, err
	}
	return idx, nil
}

// applyQuantifier checks for a postfix *, +, ? or {n[,[m]]} following the
// atom at idx and sets its Min/Max accordingly. A second quantifier token
// immediately following the first is rejected as a malformed quantifier.
func (p *parser) applyQuantifier(idx int) error {
	switch p.peek().Kind {
	case KindStar:
		p.next()
		p.tree.Node(idx).Min, p.tree.Node(idx).Max = 0, -1
	case KindPlus:
		p.next()
		p.tree.Node(idx).Min, p.tree.Node(idx).Max = 1, -1
	case KindQuestion:
		p.next()
		p.tree.Node(idx).Min, p.tree.Node(idx).Max = 0, 1
	case KindLBrace:
		min, max, err := p.parseBraceQuantifier()
		if err != nil {
			return err
		}
		p.tree.Node(idx).Min, p.tree.Node(idx).Max = min, max
	default:
		return nil
	}

	switch p.peek().Kind {
	case KindStar, KindPlus, KindQuestion, KindLBrace:
		return ErrBadQuantifier
	}
	return nil
}

// parseBraceQuantifier parses "{n}", "{n,}" or "{n,m}"; applyQuantifier has
// only peeked at the opening '{', so this consumes it first.
func (p *parser) parseBraceQuantifier() (min, max int, err error) {
	p.next() // consume '{'

	n1, ok := p.parseDigits()
	if !ok {
		return 0, 0, ErrBadQuantifier
	}
	if !fitsQuantifierBound(n1) {
		return 0, 0, ErrBadQuantifier
	}

	switch p.peek().Kind {
	case KindRBrace:
		p.next()
		return n1, n1, nil
	case KindComma:
		p.next()
		if p.peek().Kind == KindRBrace {
			p.next()
			return n1, -1, nil
		}
		n2, ok := p.parseDigits()
		if !ok {
			return 0, 0, ErrBadQuantifier
		}
		if !fitsQuantifierBound(n2) {
			return 0, 0, ErrBadQuantifier
		}
		if p.peek().Kind != KindRBrace {
			return 0, 0, ErrBadQuantifier
		}
		p.next()
		if n2 < n1 {
			return 0, 0, ErrBadQuantifier
		}
		return n1, n2, nil
	default:
		return 0, 0, ErrBadQuantifier
	}
}

// fitsQuantifierBound reports whether n is small enough to be a sane
// {m,n} repeat count. It rejects absurd values (a pattern author's typo,
// or an attempt to force a huge backtracking budget) using conv's
// narrowing check rather than quietly accepting any int the lexer
// happened to parse.
func fitsQuantifierBound(n int) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	conv.IntToUint16(n)
	return true
}

// parseDigits consumes one or more KindElement digit tokens and returns
// their decimal value. ok is false if no digit was present.
func (p *parser) parseDigits() (value int, ok bool) {
	start := p.pos
	for p.peek().Kind == KindElement && p.peek().Byte >= '0' && p.peek().Byte <= '9' {
		value = value*10 + int(p.peek().Byte-'0')
		p.next()
	}
	return value, p.pos > start
}

// parseClass parses a character-class body; the opening '[' has already
// been consumed by parseAtom. Ranges like a-z are expanded inclusively into
// individual members at parse time, per the RANGE node invariant.
func (p *parser) parseClass() (int, error) {
	positive := true
	if p.peek().Kind == KindCircumflex {
		positive = false
		p.next()
	}

	var present [256]bool
	var members []byte
	add := func(b byte) {
		if !present[b] {
			present[b] = true
			members = append(members, b)
		}
	}

	seenAny := false
	for {
		if p.atEOF() {
			return 0, ErrUnterminatedClass
		}
		tok := p.peek()
		if tok.Kind == KindRBracket {
			// A ']' as the very first class member (possibly right after
			// a leading '^') is conventionally a literal, not the closer.
			if !seenAny {
				p.next()
				add(']')
				seenAny = true
				continue
			}
			p.next()
			break
		}
		seenAny = true

		switch tok.Kind {
		case KindSpaceClass:
			p.next()
			for _, c := range []byte{' ', '\t', '\n', '\r', '\f'} {
				add(c)
			}
		case KindDigitClass:
			p.next()
			for c := byte('0'); c <= '9'; c++ {
				add(c)
			}
		default:
			b1 := tok.Byte
			p.next()
			if p.peek().Kind == KindDash {
				save := p.pos
				p.next() // tentatively consume '-'
				nxt := p.peek()
				if !p.atEOF() && nxt.Kind != KindRBracket && nxt.Kind != KindSpaceClass && nxt.Kind != KindDigitClass {
					b2 := nxt.Byte
					p.next()
					lo, hi := b1, b2
					if lo > hi {
						lo, hi = hi, lo
					}
					for c := int(lo); c <= int(hi); c++ {
						add(byte(c))
					}
					continue
				}
				p.pos = save // not a range; '-' will be read as its own literal next
			}
			add(b1)
		}
	}

	idx := p.tree.Add(Node{Kind: NodeRange, Value: members, Positive: positive, Min: 1, Max: 1})
	return idx, nil
}

// parseGroup parses a group body; the opening '(' has already been
// consumed by parseAtom. Recognizes the "?:" non-capturing marker and the
// "?P<name>" named-capture marker (the name is retained on the node but,
// per the single-outermost-span contract, never surfaced through the
// public API).
func (p *parser) parseGroup() (int, error) {
	capturing := true
	groupName := ""

	if p.peek().Kind == KindQuestion {
		save := p.pos
		p.next()
		switch {
		case p.peek().Kind == KindElement && p.peek().Byte == ':':
			p.next()
			capturing = false
		case p.peek().Kind == KindElement && p.peek().Byte == 'P' && p.peekAt(1).Kind == KindElement && p.peekAt(1).Byte == '<':
			p.next() // 'P'
			p.next() // '<'
			var name []byte
			for !p.atEOF() && !(p.peek().Kind == KindElement && p.peek().Byte == '>') {
				name = append(name, p.peek().Byte)
				p.next()
			}
			if p.atEOF() {
				return 0, ErrUnterminatedGroup
			}
			p.next() // '>'
			groupName = string(name)
		default:
			p.pos = save
		}
	}

	inner, err := p.parseExpr(true)
	if err != nil {
		return 0, err
	}
	if p.atEOF() || p.peek().Kind != KindRParen {
		return 0, ErrUnterminatedGroup
	}
	p.next() // consume ')'

	innerNode := p.tree.Node(inner)
	if innerNode.Kind == NodeGroup {
		innerNode.Capturing = capturing
		innerNode.GroupName = groupName
		return inner, nil
	}
	return p.tree.Add(Node{Kind: NodeGroup, Children: []int{inner}, Capturing: capturing, GroupName: groupName, Min: 1, Max: 1}), nil
}

func (p *parser) peekAt(offset int) Token {
	i := p.pos + offset
	if i < 0 || i >= len(p.toks) {
		return Token{Kind: KindElement, Pos: p.endPos()}
	}
	return p.toks[i]
}
