package pika

import "github.com/coregx/omnilisp/internal/conv"

// State holds one parse's input, rule table, memo table, and output mode.
// It is built by New and consumed by Run; it is not safe for concurrent use
// by multiple goroutines, and is not reused across inputs. PatternCache's
// Compile hands back the same State, memo table included, for every call
// with the same pattern+rules pair.
type State struct {
	Input  []byte
	Rules  []Rule
	Mode   OutputMode
	Config Config

	table []Match // (len(Input)+1) * len(Rules), row-major by position
}

// New validates rules and allocates a State over input. It returns a
// *Error wrapping EmptyRuleTable if rules is empty, or DanglingRef if any
// rule names a Target or Children index outside the table.
func New(input []byte, rules []Rule) (*State, error) {
	return NewWithConfig(input, rules, DefaultConfig())
}

// NewWithConfig is New with an explicit Config.
func NewWithConfig(input []byte, rules []Rule, cfg Config) (*State, error) {
	if len(rules) == 0 {
		return nil, &Error{Kind: EmptyRuleTable, Message: "rule table is empty"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateRefs(rules); err != nil {
		return nil, err
	}

	rows := conv.IntToUint32(len(input) + 1)
	cols := conv.IntToUint32(len(rules))
	s := &State{
		Input:  input,
		Rules:  rules,
		Mode:   cfg.Mode,
		Config: cfg,
		table:  make([]Match, rows*cols),
	}
	return s, nil
}

func validateRefs(rules []Rule) error {
	n := len(rules)
	inRange := func(i int) bool { return i >= 0 && i < n }
	for idx, r := range rules {
		switch r.Kind {
		case Ref:
			if !inRange(r.Target) {
				return &Error{Kind: DanglingRef, Message: "rule refers to an out-of-range target"}
			}
		case Seq, Alt, Rep, Pos, Opt, Not, And:
			for _, c := range r.Children {
				if !inRange(c) {
					return &Error{Kind: DanglingRef, Message: "rule refers to an out-of-range child"}
				}
			}
			if len(r.Children) == 0 {
				return &Error{Kind: DanglingRef, Message: "composite rule has no children"}
			}
		}
		_ = idx
	}
	return nil
}

// Free releases the memo table early so the garbage collector can reclaim
// it without waiting for s itself to go out of scope. s must not be used
// after Free.
func (s *State) Free() {
	s.table = nil
	s.Input = nil
}

// SetOutputMode changes the mode Run uses to assemble its result.
func (s *State) SetOutputMode(mode OutputMode) {
	s.Mode = mode
}

func (s *State) cellIndex(pos, ruleID int) int {
	return pos*len(s.Rules) + ruleID
}

// GetMatch returns the memo table cell for (ruleID, pos). The returned
// pointer aliases the table; callers must treat it as read-only.
func (s *State) GetMatch(pos, ruleID int) *Match {
	return &s.table[s.cellIndex(pos, ruleID)]
}

func (s *State) setMatch(pos, ruleID int, m Match) {
	s.table[s.cellIndex(pos, ruleID)] = m
}
