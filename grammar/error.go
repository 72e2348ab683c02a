package grammar

import "github.com/coregx/omnilisp/term"

// errTerm constructs the parse-failure sentinel: a zero-child constructor
// tagged with the nick of "Err" (spec.md §6, §7). There is no reason code
// or wrapped cause attached to it — a parse either reaches the root rule
// at position 0 or it doesn't; spec.md §7 rules out partial results and
// retry, so one sentinel value covers every failure.
func errTerm() term.Term {
	return term.NewCtr(tagErr)
}

// IsErr reports whether v is the Err sentinel Read/ReadExpr return on
// parse failure.
func IsErr(v term.Term) bool {
	tag, ok := term.Tag(v)
	return ok && tag == tagErr && term.Arity(v) == 0
}
