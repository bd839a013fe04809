package cfop

import "github.com/rs/zerolog"

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	arenaSize   int
	scrambleLen int
	logger      zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		arenaSize:   defaultArenaSize,
		scrambleLen: DefaultScrambleLen,
		logger:      zerolog.Nop(),
	}
}

// WithArenaSize sets the solver's scratch arena capacity in bytes. The
// default comfortably fits the cross search tables; shrinking it below
// that makes Solve panic.
func WithArenaSize(bytes int) Option {
	return func(c *config) {
		c.arenaSize = bytes
	}
}

// WithScrambleLength sets how many turns Scramble applies.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		c.scrambleLen = n
	}
}

// WithLogger sets the logger for per-stage solve diagnostics.
// The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
