// Package pika implements a packrat PEG engine that fills its memoization
// table with a right-to-left fixpoint scan instead of top-down recursive
// descent. Every (rule, position) cell is recomputed from whatever is
// currently in neighboring cells until nothing changes, which lets forward
// references between rules (direct or through Ref indirection) resolve
// without the engine needing to detect or special-case recursion: the
// fixpoint iteration handles it uniformly, the way a reverse/anchored DFA
// search resolves a pattern without caring whether it was built left-to-right
// or right-to-left.
package pika

import (
	"bytes"

	"github.com/coregx/omnilisp/nick"
	"github.com/coregx/omnilisp/term"
)

var errNick = nick.Encode("Err")
var nilNick = nick.Encode("Nil")
var consNick = nick.Encode("Cons")

// Run fills s's memo table and extracts the result for rootID at position 0.
//
// The outer scan visits positions from len(s.Input) down to 0. At each
// position it repeats an inner pass over every rule, bounded by
// s.Config.IterationCapMultiplier*len(s.Rules) iterations, stopping early
// once a full pass makes no change. A rule's value is only recomputed when
// its match outcome (matched, or its length) actually changes on that
// iteration; flapping between two stable values across iterations is not
// possible because evaluateMatch is a pure function of already-settled
// neighboring cells.
//
// Once every position has reached its local fixpoint, a bounded number of
// stabilization sweeps unconditionally recompute every matched cell's value,
// independent of rule declaration order: this is what lets a value built by
// one rule flow through any number of Ref/Alt indirections to a rule whose
// own match settled before the rule it depends on did.
func Run(s *State, rootID int) term.Term {
	n := len(s.Input)
	numRules := len(s.Rules)
	iterCap := s.Config.IterationCapMultiplier * numRules

	for pos := n; pos >= 0; pos-- {
		for iter := 0; iter < iterCap; iter++ {
			changed := false
			for ruleID := 0; ruleID < numRules; ruleID++ {
				nm := evaluateMatch(s, ruleID, pos)
				old := s.GetMatch(pos, ruleID)
				if old.Matched != nm.Matched || old.Len != nm.Len {
					nm.Val = computeValue(s, ruleID, pos, nm)
					s.setMatch(pos, ruleID, nm)
					changed = true
				}
			}
			if !changed {
				break
			}
		}
	}

	stabilize(s)
	return extractResult(s, rootID)
}

// evaluateMatch computes rule ruleID's (matched, length) outcome at pos from
// the current contents of neighboring memo cells. It never touches Val.
func evaluateMatch(s *State, ruleID, pos int) Match {
	r := &s.Rules[ruleID]
	in := s.Input

	switch r.Kind {
	case Terminal:
		end := pos + len(r.Bytes)
		if end <= len(in) && bytes.Equal(in[pos:end], r.Bytes) {
			return Match{Matched: true, Len: len(r.Bytes)}
		}
		return Match{}

	case RangeRule:
		if pos < len(in) && in[pos] >= r.Lo && in[pos] <= r.Hi {
			return Match{Matched: true, Len: 1}
		}
		return Match{}

	case Any:
		if pos < len(in) {
			return Match{Matched: true, Len: 1}
		}
		return Match{}

	case Seq:
		total := 0
		for _, c := range r.Children {
			cm := s.GetMatch(pos+total, c)
			if !cm.Matched {
				return Match{}
			}
			total += cm.Len
		}
		return Match{Matched: true, Len: total}

	case Alt:
		for _, c := range r.Children {
			cm := s.GetMatch(pos, c)
			if cm.Matched {
				return Match{Matched: true, Len: cm.Len}
			}
		}
		return Match{}

	case Rep:
		total := 0
		for {
			cm := s.GetMatch(pos+total, r.Children[0])
			if !cm.Matched || cm.Len == 0 {
				break
			}
			total += cm.Len
		}
		return Match{Matched: true, Len: total}

	case Pos:
		total, count := 0, 0
		for {
			cm := s.GetMatch(pos+total, r.Children[0])
			if !cm.Matched || cm.Len == 0 {
				break
			}
			total += cm.Len
			count++
		}
		if count == 0 {
			return Match{}
		}
		return Match{Matched: true, Len: total}

	case Opt:
		cm := s.GetMatch(pos, r.Children[0])
		if cm.Matched {
			return Match{Matched: true, Len: cm.Len}
		}
		return Match{Matched: true, Len: 0}

	case Not:
		cm := s.GetMatch(pos, r.Children[0])
		if cm.Matched {
			return Match{}
		}
		return Match{Matched: true, Len: 0}

	case And:
		cm := s.GetMatch(pos, r.Children[0])
		if cm.Matched {
			return Match{Matched: true, Len: 0}
		}
		return Match{}

	case Ref:
		cm := s.GetMatch(pos, r.Target)
		return Match{Matched: cm.Matched, Len: cm.Len}
	}

	return Match{}
}

// computeValue produces rule ruleID's term at pos given its already-computed
// match outcome m. A rule with an explicit Action defers to it entirely
// (actions are written, in the style of the grammar this engine serves, to
// read their own children's values directly off the memo table rather than
// receive them as arguments). A rule with no action but a Ref or Alt shape
// forwards whichever child actually produced m: an indirection rule carries
// no meaning of its own beyond "be whatever the thing I point to is".
func computeValue(s *State, ruleID, pos int, m Match) term.Term {
	if !m.Matched {
		return nil
	}
	r := &s.Rules[ruleID]
	if r.Action != nil {
		return r.Action(s, pos, m)
	}
	switch r.Kind {
	case Ref:
		return s.GetMatch(pos, r.Target).Val
	case Alt:
		for _, c := range r.Children {
			cm := s.GetMatch(pos, c)
			if cm.Matched && cm.Len == m.Len {
				return cm.Val
			}
		}
	}
	return nil
}

// stabilize recomputes every matched cell's value len(s.Rules) times. One
// sweep is enough whenever actions are declared in dependency order (a rule
// never reads the table at an index greater than its own at the same
// position). This module's grammar package does not keep to that order
// (actSeqInner reads rExpr, which is declared after rSeqInner); the extra
// sweeps make Run correct regardless, at the cost of at most len(s.Rules)
// times the work of a single sweep.
func stabilize(s *State) {
	n := len(s.Input)
	numRules := len(s.Rules)
	for sweep := 0; sweep < numRules; sweep++ {
		for pos := n; pos >= 0; pos-- {
			for ruleID := 0; ruleID < numRules; ruleID++ {
				m := s.GetMatch(pos, ruleID)
				if !m.Matched {
					continue
				}
				updated := *m
				updated.Val = computeValue(s, ruleID, pos, updated)
				s.setMatch(pos, ruleID, updated)
			}
		}
	}
}

// extractResult reads the root rule's cell at position 0 and assembles the
// final term according to s.Mode, falling back to a distinguished Err term
// (tagged with the nick of "Err", no children) when the root failed to
// match the entire scan.
func extractResult(s *State, rootID int) term.Term {
	root := s.GetMatch(0, rootID)
	if !root.Matched {
		return term.NewCtr(errNick)
	}

	switch s.Mode {
	case ModeString:
		return consBytes(s.Input[:root.Len])
	default: // ModeAST
		if root.Val != nil {
			return root.Val
		}
		return term.NewCtr(nick.Encode(s.Rules[rootID].Name))
	}
}

// consBytes builds the cons-list-of-byte-values representation of bs, used
// by ModeString: Cons(b0, Cons(b1, ... Nil)).
func consBytes(bs []byte) term.Term {
	list := term.NewCtr(nilNick)
	for i := len(bs) - 1; i >= 0; i-- {
		list = term.NewCtr(consNick, term.NewNat(uint32(bs[i])), list)
	}
	return list
}

// ParseOnce is a one-shot convenience wrapper: build a State over input and
// rules, run it to completion against rootID, and discard the state.
func ParseOnce(input []byte, rules []Rule, rootID int) (term.Term, error) {
	s, err := New(input, rules)
	if err != nil {
		return nil, err
	}
	defer s.Free()
	return Run(s, rootID), nil
}
