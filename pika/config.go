package pika

// OutputMode selects how Run assembles the final result once the root rule
// is known to match (or fails to).
type OutputMode uint8

const (
	// ModeAST returns the root entry's own Val, falling back to a nullary
	// constructor tagged with the nick of the root rule's Name when that
	// entry holds no value.
	ModeAST OutputMode = iota
	// ModeString rebuilds the matched span as a cons-list of byte values,
	// ignoring any action values entirely.
	ModeString
)

// Config tunes the engine without changing its matching semantics.
type Config struct {
	// IterationCapMultiplier bounds the inner fixpoint loop at each
	// position to IterationCapMultiplier * len(rules) passes before the
	// engine gives up on that position and moves on. The algorithm is
	// proven to stabilize within 2x, so values below 2 can cause premature
	// convergence on pathological grammars; this is enforced by Validate.
	IterationCapMultiplier int

	// Mode is the default output mode a new State starts in; it can still
	// be changed per-state with SetOutputMode.
	Mode OutputMode
}

// DefaultConfig returns the configuration matching the algorithm's proven
// termination bound: an iteration cap of 2x the rule count and AST output.
func DefaultConfig() Config {
	return Config{
		IterationCapMultiplier: 2,
		Mode:                   ModeAST,
	}
}

// Validate checks that c describes a configuration the engine can run
// safely. A multiplier below 2 is rejected because the fixpoint is only
// guaranteed to stabilize within 2x the rule count; allowing a lower cap
// would let Run silently under-converge.
func (c Config) Validate() error {
	if c.IterationCapMultiplier < 2 {
		return &Error{Kind: InvalidConfig, Message: "IterationCapMultiplier must be >= 2"}
	}
	return nil
}

// WithIterationCapMultiplier returns a copy of c with the given multiplier.
func (c Config) WithIterationCapMultiplier(m int) Config {
	c.IterationCapMultiplier = m
	return c
}

// WithMode returns a copy of c with the given default output mode.
func (c Config) WithMode(mode OutputMode) Config {
	c.Mode = mode
	return c
}
