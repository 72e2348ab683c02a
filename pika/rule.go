package pika

import (
	"fmt"

	"github.com/coregx/omnilisp/term"
)

// RuleKind identifies which of the eleven PEG operators a Rule applies.
type RuleKind uint8

const (
	// Terminal matches an exact byte sequence at the current position.
	Terminal RuleKind = iota
	// RangeRule matches a single byte within [Lo, Hi] inclusive.
	RangeRule
	// Any matches a single byte, failing only at end of input.
	Any
	// Seq matches each child in Children in order, consuming their
	// concatenated length.
	Seq
	// Alt tries each child in Children in order and takes the first match.
	Alt
	// Rep matches Children[0] zero or more times, greedily.
	Rep
	// Pos matches Children[0] one or more times, greedily.
	Pos
	// Opt matches Children[0] zero or one times and always succeeds.
	Opt
	// Not is a negative lookahead: succeeds with zero length iff Children[0]
	// fails to match, and never consumes input either way.
	Not
	// And is a positive lookahead: succeeds with zero length iff Children[0]
	// matches, and never consumes input either way.
	And
	// Ref matches whatever the rule at index Target matches.
	Ref
)

func (k RuleKind) String() string {
	switch k {
	case Terminal:
		return "Terminal"
	case RangeRule:
		return "Range"
	case Any:
		return "Any"
	case Seq:
		return "Seq"
	case Alt:
		return "Alt"
	case Rep:
		return "Rep"
	case Pos:
		return "Pos"
	case Opt:
		return "Opt"
	case Not:
		return "Not"
	case And:
		return "And"
	case Ref:
		return "Ref"
	default:
		return fmt.Sprintf("RuleKind(%d)", uint8(k))
	}
}

// Action runs after a rule matches, turning the raw match (its length and
// the already-computed values of its children, where applicable) into a
// term. It is invoked both during the main fixpoint scan, each time the
// entry's match outcome (matched, or its length) changes, and again for
// every matched entry on each of the stabilization sweeps that follow.
type Action func(s *State, pos int, m Match) term.Term

// Rule is one production in a grammar's rule table. Which fields are
// meaningful depends on Kind:
//
//	Terminal    Bytes
//	RangeRule   Lo, Hi
//	Any         (none)
//	Seq, Alt    Children (one or more)
//	Rep, Pos,
//	Opt, Not,
//	And         Children[0]
//	Ref         Target
//
// Name and Action are optional on every kind: Name is used only for
// diagnostics, and Action, when non-nil, is invoked on every match of this
// rule as described on the Action type.
type Rule struct {
	Kind     RuleKind
	Bytes    []byte
	Lo, Hi   byte
	Children []int
	Target   int
	Name     string
	Action   Action
}

// T builds a Terminal rule matching an exact byte sequence.
func T(name string, bytes string) Rule {
	return Rule{Kind: Terminal, Bytes: []byte(bytes), Name: name}
}

// R builds a RangeRule rule matching a single byte in [lo, hi].
func R(name string, lo, hi byte) Rule {
	return Rule{Kind: RangeRule, Lo: lo, Hi: hi, Name: name}
}

// Dot builds an Any rule.
func Dot(name string) Rule {
	return Rule{Kind: Any, Name: name}
}

// S builds a Seq rule over the given child rule indices.
func S(name string, children ...int) Rule {
	return Rule{Kind: Seq, Children: children, Name: name}
}

// A builds an Alt rule over the given child rule indices, tried in order.
func A(name string, children ...int) Rule {
	return Rule{Kind: Alt, Children: children, Name: name}
}

// Star builds a Rep rule (zero or more) over a single child rule index.
func Star(name string, child int) Rule {
	return Rule{Kind: Rep, Children: []int{child}, Name: name}
}

// Plus builds a Pos rule (one or more) over a single child rule index.
func Plus(name string, child int) Rule {
	return Rule{Kind: Pos, Children: []int{child}, Name: name}
}

// Maybe builds an Opt rule over a single child rule index.
func Maybe(name string, child int) Rule {
	return Rule{Kind: Opt, Children: []int{child}, Name: name}
}

// Neg builds a Not rule (negative lookahead) over a single child rule index.
func Neg(name string, child int) Rule {
	return Rule{Kind: Not, Children: []int{child}, Name: name}
}

// Look builds an And rule (positive lookahead) over a single child rule
// index.
func Look(name string, child int) Rule {
	return Rule{Kind: And, Children: []int{child}, Name: name}
}

// Indirect builds a Ref rule pointing at another rule's index.
func Indirect(name string, target int) Rule {
	return Rule{Kind: Ref, Target: target, Name: name}
}
