package ast

// Lex performs a single forward pass over pattern, turning it into a token
// sequence. It is infallible except for malformed {...} quantifier bodies,
// which is the only place the grammar leaks into the lexer: once an open
// '{' has been seen (and not yet closed), only digits, ',' and '}' are
// legal bytes.
func Lex(pattern []byte) ([]Token, error) {
	toks := make([]Token, 0, len(pattern))
	escape := false
	inBraces := false
	braceStart := 0

	for i := 0; i < len(pattern); i++ {
		b := pattern[i]
		pos := i

		if escape {
			escape = false
			switch b {
			case 't':
				toks = append(toks, Token{Kind: KindElement, Byte: '\t', Pos: pos})
			case 's':
				toks = append(toks, Token{Kind: KindSpaceClass, Byte: b, Pos: pos})
			case 'd':
				toks = append(toks, Token{Kind: KindDigitClass, Byte: b, Pos: pos})
			default:
				toks = append(toks, Token{Kind: KindElement, Byte: b, Pos: pos})
			}
			continue
		}

		if b == '\\' {
			escape = true
			continue
		}

		if inBraces {
			switch {
			case b >= '0' && b <= '9':
				toks = append(toks, Token{Kind: KindElement, Byte: b, Pos: pos})
			case b == ',':
				toks = append(toks, Token{Kind: KindComma, Byte: b, Pos: pos})
			case b == '}':
				inBraces = false
				toks = append(toks, Token{Kind: KindRBrace, Byte: b, Pos: pos})
			default:
				return nil, &BadTokenError{Pos: pos}
			}
			continue
		}

		switch b {
		case '.':
			toks = append(toks, Token{Kind: KindWildcard, Byte: b, Pos: pos})
		case '[':
			toks = append(toks, Token{Kind: KindLBracket, Byte: b, Pos: pos})
		case ']':
			toks = append(toks, Token{Kind: KindRBracket, Byte: b, Pos: pos})
		case '{':
			inBraces = true
			braceStart = pos
			toks = append(toks, Token{Kind: KindLBrace, Byte: b, Pos: pos})
		case '}':
			toks = append(toks, Token{Kind: KindRBrace, Byte: b, Pos: pos})
		case '(':
			toks = append(toks, Token{Kind: KindLParen, Byte: b, Pos: pos})
		case ')':
			toks = append(toks, Token{Kind: KindRParen, Byte: b, Pos: pos})
		case '-':
			toks = append(toks, Token{Kind: KindDash, Byte: b, Pos: pos})
		case '?':
			toks = append(toks, Token{Kind: KindQuestion, Byte: b, Pos: pos})
		case '*':
			toks = append(toks, Token{Kind: KindStar, Byte: b, Pos: pos})
		case '+':
			toks = append(toks, Token{Kind: KindPlus, Byte: b, Pos: pos})
		case '|':
			toks = append(toks, Token{Kind: KindBar, Byte: b, Pos: pos})
		case '^':
			if pos == 0 {
				toks = append(toks, Token{Kind: KindStartAnchor, Byte: b, Pos: pos})
			} else {
				toks = append(toks, Token{Kind: KindCircumflex, Byte: b, Pos: pos})
			}
		case '$':
			toks = append(toks, Token{Kind: KindEndAnchor, Byte: b, Pos: pos})
		default:
			toks = append(toks, Token{Kind: KindElement, Byte: b, Pos: pos})
		}
	}

	if inBraces {
		return nil, &BadTokenError{Pos: braceStart}
	}

	return toks, nil
}
