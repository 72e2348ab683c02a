// Package grammar defines the OmniLisp rule table over the packrat engine
// in pika and the semantic actions that turn a parse into a term.Term:
// integers and fixed-point numbers, symbols resolved against a binder
// stack, escaped strings, named character literals, quoting, path
// expressions, and the set/dict/type/slot bracket forms and their
// surrounding reader sugars (format-string prefixes, metadata markers,
// guard and spread).
//
// Read and ReadExpr are the package's two entry points; ResetBindings
// clears the binder stack between parses, mirroring the process-wide
// binder stack's single-threaded contract.
package grammar

import (
	"github.com/coregx/omnilisp/binder"
	"github.com/coregx/omnilisp/pika"
	"github.com/coregx/omnilisp/term"
)

// rules is the OmniLisp grammar's rule table, built once at package
// initialisation. Rule and its builders (pika.T, pika.S, pika.A, ...) are
// immutable after construction, so sharing one table across every Read/
// ReadExpr call is safe even though each call gets its own pika.State.
var rules = buildRules()

// defaultBinder is the package-level binder stack symbol-reference actions
// consult, matching spec.md §5's single-threaded binder-stack contract:
// grammar-level binding forms are not yet part of this parser (spec.md
// §4.4 notes pushes/pops belong to higher-level constructs not in the
// grammar), so in practice this starts and stays empty, and every symbol
// occurrence resolves to Sym(nick) until a caller pushes onto it directly.
var defaultBinder = binder.New()

// Read parses input as a full program: zero or more top-level expressions
// separated by whitespace/comments, returned as a cons-list. On failure to
// match the entire input it returns the Err sentinel term.
func Read(input []byte) term.Term {
	return runRoot(input, rProgram)
}

// ReadExpr parses input as a single expression, per spec.md §6's
// read_expr. On failure to match the entire input it returns the Err
// sentinel term.
func ReadExpr(input []byte) term.Term {
	return runRoot(input, rExpr)
}

func runRoot(input []byte, rootID int) term.Term {
	s, err := pika.New(input, rules)
	if err != nil {
		// The rule table is fixed and validated once by every test run
		// that exercises buildRules; a New failure here can only mean a
		// programming error in buildRules itself, which the Err sentinel
		// surfaces without a panic, per spec.md §7's allocation-failure
		// handling for top-level factory calls.
		return errTerm()
	}
	defer s.Free()
	v := pika.Run(s, rootID)
	if s.GetMatch(0, rootID).Len != len(input) {
		// The root matched only a prefix (possibly empty) of the input.
		return errTerm()
	}
	return v
}

// ResetBindings clears the binder stack, per spec.md §6's reset_bindings.
func ResetBindings() {
	defaultBinder.Reset()
}
