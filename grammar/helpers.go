package grammar

import "github.com/coregx/omnilisp/term"

// mkNil returns the empty cons-list sentinel.
func mkNil() term.Term {
	return term.NewCtr(tagNil)
}

// mkCons prepends head onto tail.
func mkCons(head, tail term.Term) term.Term {
	return term.NewCtr(tagCons, head, tail)
}

// symTerm wraps a nick as a Sym term.
func symTerm(n uint32) term.Term {
	return term.NewCtr(tagSym, term.NewNat(n))
}

// childOrNil returns val if sub matched and produced a value, else Nil:
// the sentinel spec.md §4.4 assigns to an unmatched child sub-parse.
func childOrNil(val term.Term) term.Term {
	if val == nil {
		return mkNil()
	}
	return val
}
