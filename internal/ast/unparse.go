package ast

import "strconv"

// Unparse renders tree back into pattern source bytes. For literal-only
// patterns (a concatenation of unquantified ELEMENT atoms) this is an exact
// inverse of Lex+Parse: Unparse(mustParse(src)) == src. For patterns using
// character classes, Unparse is still a valid source for the same tree (it
// re-enumerates RANGE's expanded membership set rather than recovering the
// original "a-z" shorthand), but is not guaranteed byte-identical to the
// input.
func Unparse(tree *Tree) []byte {
	body := tree.Node(tree.Root).Children[0]
	return appendExpr(nil, tree, body)
}

// appendExpr renders the unwrapped content of an alternation-or-concatenation
// node: the RE body, an OR branch, or (via appendAtom) an explicit group's
// inside. idx must name a NodeOr or NodeGroup, the only two kinds parseExpr
// ever produces.
func appendExpr(buf []byte, tree *Tree, idx int) []byte {
	node := tree.Node(idx)
	switch node.Kind {
	case NodeOr:
		buf = appendExpr(buf, tree, node.Children[0])
		buf = append(buf, '|')
		return appendExpr(buf, tree, node.Children[1])

	case NodeGroup:
		// parseGroup reuses the anonymous concat wrapper when a "(...)"
		// group's body has no top-level alternation, but allocates a new
		// outer GROUP with a single NodeOr child when it does - unwrap that
		// shape here rather than treating the OR as a concatenation of one.
		if len(node.Children) == 1 && tree.Node(node.Children[0]).Kind == NodeOr {
			return appendExpr(buf, tree, node.Children[0])
		}
		for _, c := range node.Children {
			buf = appendAtom(buf, tree, c)
		}
		return buf

	default:
		// Reached only for a degenerate empty-pattern RE body.
		return buf
	}
}

// appendAtom renders one child of a GROUP's concatenation sequence: a leaf,
// a RANGE, or an explicit "(...)" group, followed by its quantifier suffix.
// A NodeGroup only ever appears in atom position when parseAtom's
// KindLParen case produced it, so this is exactly where "(" / ")" and the
// "?:" / "?P<name>" markers belong.
func appendAtom(buf []byte, tree *Tree, idx int) []byte {
	node := tree.Node(idx)

	switch node.Kind {
	case NodeGroup:
		buf = append(buf, '(')
		switch {
		case !node.Capturing:
			buf = append(buf, '?', ':')
		case node.GroupName != "":
			buf = append(buf, '?', 'P', '<')
			buf = append(buf, node.GroupName...)
			buf = append(buf, '>')
		}
		buf = appendExpr(buf, tree, idx)
		buf = append(buf, ')')

	case NodeElement:
		buf = appendEscapedLiteral(buf, node.Value[0])

	case NodeWildcard:
		buf = append(buf, '.')

	case NodeSpace:
		buf = append(buf, '\\', 's')

	case NodeDigit:
		buf = append(buf, '\\', 'd')

	case NodeRange:
		buf = appendRange(buf, node)

	case NodeStart:
		buf = append(buf, '^')

	case NodeEnd:
		buf = append(buf, '$')
	}

	return appendQuantifier(buf, node)
}

// appendQuantifier appends the postfix quantifier syntax matching node's
// Min/Max, or nothing for the default 1..=1 bound.
func appendQuantifier(buf []byte, node *Node) []byte {
	switch {
	case node.Min == 1 && node.Max == 1:
		return buf
	case node.Min == 0 && node.Max == -1:
		return append(buf, '*')
	case node.Min == 1 && node.Max == -1:
		return append(buf, '+')
	case node.Min == 0 && node.Max == 1:
		return append(buf, '?')
	default:
		buf = append(buf, '{')
		buf = strconv.AppendInt(buf, int64(node.Min), 10)
		if node.Max == -1 {
			buf = append(buf, ',')
		} else if node.Max != node.Min {
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, int64(node.Max), 10)
		}
		return append(buf, '}')
	}
}

// appendRange renders a RANGE's already-expanded membership set as a
// "[...]" class body, escaping ']', '\', '-', '^' and '{' so the bracket
// doesn't close early, no member is re-read as a range, a negation or a
// brace quantifier, and re-lexing reads every member as a literal byte.
func appendRange(buf []byte, node *Node) []byte {
	buf = append(buf, '[')
	if !node.Positive {
		buf = append(buf, '^')
	}
	for _, b := range node.Value {
		if b == ']' || b == '\\' || b == '-' || b == '^' || b == '{' {
			buf = append(buf, '\\')
		}
		buf = append(buf, b)
	}
	return append(buf, ']')
}

// isMetaByte reports whether b is one of Lex's single-byte special tokens,
// which must be backslash-escaped to round-trip as a literal ELEMENT
// instead of being re-lexed as the metacharacter it names.
func isMetaByte(b byte) bool {
	switch b {
	case '.', '[', ']', '{', '}', '(', ')', '-', '?', '*', '+', '|', '^', '$', '\\':
		return true
	}
	return false
}

func appendEscapedLiteral(buf []byte, b byte) []byte {
	if isMetaByte(b) {
		buf = append(buf, '\\')
	}
	return append(buf, b)
}
