package ast

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Lex and Parse. Callers compare with errors.Is;
// the regexlite package wraps these in a *regexlite.CompileError alongside
// the offending pattern text.
var (
	ErrUnterminatedGroup = errors.New("ast: unterminated group")
	ErrUnterminatedClass = errors.New("ast: unterminated character class")
	ErrBadQuantifier     = errors.New("ast: bad quantifier")
)

// BadTokenError reports a byte that is illegal at the position it was
// found - currently only raised for non-digit, non-comma, non-'}' bytes
// inside an open {...} quantifier body.
type BadTokenError struct {
	Pos int
}

func (e *BadTokenError) Error() string {
	return fmt.Sprintf("ast: bad token at position %d", e.Pos)
}
