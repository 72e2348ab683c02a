// Package term provides the immutable value representation produced by the
// OmniLisp reader.
//
// A Term is either a natural-number leaf or a tagged constructor node with an
// ordered list of children. There is no mutation after construction: every
// combinator in this package returns a new value, and the grammar's semantic
// actions build larger terms strictly out of smaller ones. Cons-lists (the
// two-child constructor tagged with the nick of "Cons", terminated by the
// nullary constructor tagged with the nick of "Nil") are the canonical way
// to represent sequences; list, set, dict, and program bodies all bottom out
// in cons-lists.
package term

import "fmt"

// Term is the sum type produced by the reader: a Nat leaf or a Ctr node.
// The interface is closed over this package; callers inspect a Term with
// IsNat, Tag, and Children rather than type-switching on the concrete type.
type Term interface {
	isTerm()
	String() string
}

// nat is a natural-number leaf.
type nat struct {
	value uint32
}

func (nat) isTerm() {}

func (n nat) String() string {
	return fmt.Sprintf("%d", n.value)
}

// ctr is a tagged constructor node with ordered children.
type ctr struct {
	tag      uint32
	children []Term
}

func (ctr) isTerm() {}

func (c ctr) String() string {
	s := fmt.Sprintf("<%d", c.tag)
	for _, k := range c.children {
		s += " " + k.String()
	}
	return s + ">"
}

// NewNat builds a natural-number leaf term.
func NewNat(value uint32) Term {
	return nat{value: value}
}

// NewCtr builds a tagged constructor term. children is copied defensively so
// the caller's backing array can be reused.
func NewCtr(tag uint32, children ...Term) Term {
	kids := make([]Term, len(children))
	copy(kids, children)
	return ctr{tag: tag, children: kids}
}

// IsNat reports whether t is a natural-number leaf, and if so its value.
func IsNat(t Term) (uint32, bool) {
	n, ok := t.(nat)
	if !ok {
		return 0, false
	}
	return n.value, true
}

// Tag returns the constructor tag of t and whether t is a constructor term
// at all (false for a Nat leaf).
func Tag(t Term) (uint32, bool) {
	c, ok := t.(ctr)
	if !ok {
		return 0, false
	}
	return c.tag, true
}

// Children returns t's ordered children: nil if t is a Nat leaf, an empty
// slice for a nullary constructor. The returned slice must not be mutated by
// the caller.
func Children(t Term) []Term {
	c, ok := t.(ctr)
	if !ok {
		return nil
	}
	return c.children
}

// Arity returns len(Children(t)).
func Arity(t Term) int {
	return len(Children(t))
}
