package engine

import (
	"github.com/minhtran/pace/internal/config"
)

const (
	// InitialScore is every category's score before any entries apply.
	InitialScore = 30.0

	// MaxScore caps a category's score after each entry application.
	MaxScore = 100.0

	// historySeedDays is how far before today the historical series is
	// seeded at InitialScore.
	historySeedDays = 30

	// staleAfterDays is the whole-day threshold for inactivity warnings.
	staleAfterDays = 7

	// cautionBelow is the score under which the weakest category earns a
	// caution callout.
	cautionBelow = 50.0
)

// Engine computes derived views over a journal snapshot.
type Engine struct {
	cfg   *config.Config
	clock Clock
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock. Tests use testutil.FixedClock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// New creates an engine over the given profile.
func New(cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{cfg: cfg, clock: SystemClock{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// displayName resolves a category key to its configured display name,
// falling back to the key itself so callers can never trip on a stale
// or unknown key.
func (e *Engine) displayName(key string) string {
	if cat, ok := e.cfg.Category(key); ok {
		return cat.Name
	}
	return key
}
