package regexlite

import (
	"github.com/coregx/regexlite/internal/analyzer"
	"github.com/coregx/regexlite/internal/dispatch"
)

// Config tunes the compiled pattern's execution tier selection, mirroring
// the role meta.Config plays in the teacher: sane defaults via
// DefaultConfig, overridable per-call via CompileWithConfig.
type Config struct {
	// MaxSteps bounds the NFA backtracking matcher's work per search
	// attempt. 0 means unbounded (the default). Exceeding it surfaces as
	// ErrStepLimitExceeded from FirstMatch/AllMatches rather than hanging.
	MaxSteps int

	// MinPrefixLenForDFA is the literal-prefix-length threshold (spec:
	// "> 3") above which a SIMPLE pattern routes through the
	// prefilter+verify tier instead of prefilter+NFA.
	MinPrefixLenForDFA int

	// MinRequiredLiteralLen is the required-literal-length threshold
	// (spec: ">= 2") for the prefilter+NFA tier.
	MinRequiredLiteralLen int

	// EnableTrieTier toggles the Aho-Corasick literal-alternation fast
	// path for OR-of-literal-branches patterns.
	EnableTrieTier bool
}

// DefaultConfig returns the tuning spec.md's tier-selection table names.
func DefaultConfig() Config {
	d := dispatch.DefaultConfig()
	return Config{
		MaxSteps:              d.MaxSteps,
		MinPrefixLenForDFA:    d.MinPrefixLenForDFA,
		MinRequiredLiteralLen: d.MinRequiredLiteralLen,
		EnableTrieTier:        d.EnableTrieTier,
	}
}

func (c Config) toDispatchConfig() dispatch.Config {
	return dispatch.Config{
		Analyzer:              analyzer.DefaultConfig(),
		MaxSteps:              c.MaxSteps,
		MinPrefixLenForDFA:    c.MinPrefixLenForDFA,
		MinRequiredLiteralLen: c.MinRequiredLiteralLen,
		EnableTrieTier:        c.EnableTrieTier,
	}
}
