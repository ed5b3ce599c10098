package ast

import "testing"

func TestLexBasic(t *testing.T) {
	tests := []struct {
		pattern string
		kinds   []Kind
	}{
		{"a", []Kind{KindElement}},
		{"^a$", []Kind{KindStartAnchor, KindElement, KindEndAnchor}},
		{`\d+`, []Kind{KindDigitClass, KindPlus}},
		{`\s*`, []Kind{KindSpaceClass, KindStar}},
		{`\t`, []Kind{KindElement}},
		{`\.`, []Kind{KindElement}},
		{"a|b", []Kind{KindElement, KindBar, KindElement}},
		{"(a)", []Kind{KindLParen, KindElement, KindRParen}},
		{"[a-z]", []Kind{KindLBracket, KindElement, KindDash, KindElement, KindRBracket}},
		{"[^abc]", []Kind{KindLBracket, KindCircumflex, KindElement, KindElement, KindElement, KindRBracket}},
		{"a{2,3}", []Kind{KindElement, KindLBrace, KindElement, KindComma, KindElement, KindRBrace}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			toks, err := Lex([]byte(tt.pattern))
			if err != nil {
				t.Fatalf("Lex(%q) error: %v", tt.pattern, err)
			}
			if len(toks) != len(tt.kinds) {
				t.Fatalf("Lex(%q) = %d tokens, want %d: %+v", tt.pattern, len(toks), len(tt.kinds), toks)
			}
			for i, k := range tt.kinds {
				if toks[i].Kind != k {
					t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
				}
			}
		})
	}
}

func TestLexCaretPosition(t *testing.T) {
	toks, err := Lex([]byte("a^b"))
	if err != nil {
		t.Fatal(err)
	}
	if toks[1].Kind != KindCircumflex {
		t.Errorf("'^' not at position 0 should lex as CIRCUMFLEX, got %s", toks[1].Kind)
	}
}

func TestLexUnterminatedBrace(t *testing.T) {
	_, err := Lex([]byte("a{2,"))
	if err == nil {
		t.Fatal("expected error for unterminated brace")
	}
	var bte *BadTokenError
	if !asBadToken(err, &bte) {
		t.Fatalf("expected *BadTokenError, got %T: %v", err, err)
	}
}

func TestLexBadTokenInsideBraces(t *testing.T) {
	_, err := Lex([]byte("a{x}"))
	if err == nil {
		t.Fatal("expected error for non-digit inside braces")
	}
}

func asBadToken(err error, target **BadTokenError) bool {
	bte, ok := err.(*BadTokenError)
	if ok {
		*target = bte
	}
	return ok
}
