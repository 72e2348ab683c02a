package pika

import "github.com/coregx/omnilisp/term"

// Match is one memo table cell: whether the owning (rule, position) pair
// currently matches, how many bytes it consumes, and the term its action
// (if any) produced. Val is nil until a value is computed: a rule with an
// action gets the action's result, an action-less Ref or Alt rule forwards
// the value of the child that produced its match, and any other action-less
// rule leaves Val nil (see computeValue).
type Match struct {
	Matched bool
	Len     int
	Val     term.Term
}
