package selectors

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/on-the-ground/select_ive_go/memo"
)

// CheckFrequency decides how often a development diagnostic runs.
type CheckFrequency string

const (
	// CheckAlways runs the diagnostic on every args-tier cache miss.
	CheckAlways CheckFrequency = "always"
	// CheckOnce runs the diagnostic on the first call only.
	CheckOnce CheckFrequency = "once"
	// CheckNever disables the diagnostic.
	CheckNever CheckFrequency = "never"
)

type config struct {
	memoize         memo.Memoizer
	memoizeOpts     []memo.Option
	argsMemoize     memo.Memoizer
	argsMemoizeOpts []memo.Option
	stabilityCheck  CheckFrequency
	identityCheck   CheckFrequency
	logger          *zap.Logger
}

func defaultConfig() config {
	return config{
		memoize:        memo.Single,
		argsMemoize:    memo.Single,
		stabilityCheck: CheckOnce,
		identityCheck:  CheckOnce,
	}
}

// Option configures a Factory or a single Compose call; per-call options
// override the factory they run under.
type Option func(*config)

// WithMemoizer replaces the result-tier memoizer, the one gating the
// combiner on the equality of the extracted values. opts are forwarded
// verbatim to the memoizer.
func WithMemoizer(m memo.Memoizer, opts ...memo.Option) Option {
	return func(c *config) {
		c.memoize = m
		c.memoizeOpts = opts
	}
}

// WithArgsMemoizer replaces the args-tier memoizer, the one gating the
// whole extractor pass on the equality of the raw call arguments.
func WithArgsMemoizer(m memo.Memoizer, opts ...memo.Option) Option {
	return func(c *config) {
		c.argsMemoize = m
		c.argsMemoizeOpts = opts
	}
}

// WithInputStabilityCheck sets how often extractors are re-invoked to
// verify they return stable references for equal inputs. Default CheckOnce.
func WithInputStabilityCheck(freq CheckFrequency) Option {
	return func(c *config) {
		c.stabilityCheck = freq
	}
}

// WithIdentityFunctionCheck sets how often a fresh combiner is probed for
// identity pass-through behavior. Default CheckOnce.
func WithIdentityFunctionCheck(freq CheckFrequency) Option {
	return func(c *config) {
		c.identityCheck = freq
	}
}

// WithWarnLogger routes this selector's diagnostics to the given logger
// instead of the package-wide one.
func WithWarnLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// warnLogger is the package-wide diagnostic sink. Diagnostics stay inert,
// extra extractor passes included, until a logger is installed here or
// per selector via WithWarnLogger.
var warnLogger atomic.Pointer[zap.Logger]

// SetWarnLogger installs the package-wide diagnostic logger. Passing nil
// turns package-wide diagnostics back off.
func SetWarnLogger(logger *zap.Logger) {
	warnLogger.Store(logger)
}
