package regexlite

import (
	"errors"
	"fmt"

	"github.com/coregx/regexlite/internal/ast"
	"github.com/coregx/regexlite/internal/nfa"
)

// Sentinel errors a caller can compare against with errors.Is, regardless of
// whether they reached it via a *CompileError (compile time) or directly
// (search time).
var (
	ErrUnterminatedGroup = ast.ErrUnterminatedGroup
	ErrUnterminatedClass = ast.ErrUnterminatedClass
	ErrBadQuantifier     = ast.ErrBadQuantifier
	ErrStepLimitExceeded = nfa.ErrStepLimitExceeded
)

// CompileError reports why Compile rejected a pattern, keeping the
// offending source text alongside the underlying parse error.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regexlite: error compiling %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// BadTokenError reports an illegal byte at a specific offset in the
// pattern, as produced inside an open {...} quantifier body.
type BadTokenError struct {
	Pattern string
	Pos     int
}

func (e *BadTokenError) Error() string {
	return fmt.Sprintf("regexlite: bad token in %q at position %d", e.Pattern, e.Pos)
}

func wrapCompileError(pattern string, err error) error {
	if err == nil {
		return nil
	}
	var bt *ast.BadTokenError
	if errors.As(err, &bt) {
		return &CompileError{Pattern: pattern, Err: &BadTokenError{Pattern: pattern, Pos: bt.Pos}}
	}
	return &CompileError{Pattern: pattern, Err: err}
}
