package nfa

import "errors"

// ErrStepLimitExceeded is returned when a Matcher configured with a
// positive step budget exhausts it before resolving a match at a given
// start position. It is the only runtime failure the matcher can produce;
// otherwise a search is total and reports "no match" rather than failing.
var ErrStepLimitExceeded = errors.New("nfa: step limit exceeded")
