package pika

import (
	"testing"

	"github.com/coregx/omnilisp/term"
)

func mustParse(t *testing.T, input string, rules []Rule, root int) term.Term {
	t.Helper()
	s, err := New([]byte(input), rules)
	if err != nil {
		t.Fatalf("New(%q) error: %v", input, err)
	}
	return Run(s, root)
}

func TestTerminalMatch(t *testing.T) {
	rules := []Rule{T("lit", "abc")}
	v := mustParse(t, "abc", rules, 0)
	if _, isErr := isErrTerm(v); isErr {
		t.Fatalf("Terminal(\"abc\") against \"abc\" failed to match")
	}
}

func TestTerminalMismatch(t *testing.T) {
	rules := []Rule{T("lit", "abc")}
	v := mustParse(t, "abd", rules, 0)
	if _, isErr := isErrTerm(v); !isErr {
		t.Fatalf("Terminal(\"abc\") against \"abd\" should fail, got %v", v)
	}
}

func TestRangeRule(t *testing.T) {
	rules := []Rule{R("digit", '0', '9')}
	if _, isErr := isErrTerm(mustParse(t, "5", rules, 0)); isErr {
		t.Fatal("Range('0','9') rejected '5'")
	}
	if _, isErr := isErrTerm(mustParse(t, "x", rules, 0)); !isErr {
		t.Fatal("Range('0','9') accepted 'x'")
	}
}

func TestAnyRequiresOneByte(t *testing.T) {
	rules := []Rule{Dot("any")}
	if _, isErr := isErrTerm(mustParse(t, "", rules, 0)); !isErr {
		t.Fatal("Any matched empty input")
	}
	if _, isErr := isErrTerm(mustParse(t, "z", rules, 0)); isErr {
		t.Fatal("Any failed to match a single byte")
	}
}

// Seq(a, b) over "ab".
func TestSeq(t *testing.T) {
	rules := []Rule{
		T("a", "a"),
		T("b", "b"),
		S("ab", 0, 1),
	}
	if _, isErr := isErrTerm(mustParse(t, "ab", rules, 2)); isErr {
		t.Fatal("Seq(a,b) rejected \"ab\"")
	}
	if _, isErr := isErrTerm(mustParse(t, "ba", rules, 2)); !isErr {
		t.Fatal("Seq(a,b) accepted \"ba\"")
	}
}

// Alt(a, b) prioritized choice: the first matching alternative wins even if
// a later one would consume more input.
func TestAltPriority(t *testing.T) {
	rules := []Rule{
		T("foo", "foo"),
		T("foobar", "foobar"),
		A("either", 0, 1),
	}
	s, err := New([]byte("foobar"), rules)
	if err != nil {
		t.Fatal(err)
	}
	Run(s, 2)
	if m := s.GetMatch(0, 2); !m.Matched || m.Len != 3 {
		t.Fatalf("Alt(foo,foobar) on \"foobar\" = (matched=%v len=%d), want (true, 3)", m.Matched, m.Len)
	}
}

func TestRepZeroOrMore(t *testing.T) {
	rules := []Rule{
		R("digit", '0', '9'),
		Star("digits", 0),
	}
	if _, isErr := isErrTerm(mustParse(t, "", rules, 1)); isErr {
		t.Fatal("Rep(digit) rejected empty input")
	}
	if _, isErr := isErrTerm(mustParse(t, "123", rules, 1)); isErr {
		t.Fatal("Rep(digit) rejected \"123\"")
	}
}

func TestPosRequiresAtLeastOne(t *testing.T) {
	rules := []Rule{
		R("digit", '0', '9'),
		Plus("digits", 0),
	}
	if _, isErr := isErrTerm(mustParse(t, "", rules, 1)); !isErr {
		t.Fatal("Pos(digit) accepted empty input")
	}
	if _, isErr := isErrTerm(mustParse(t, "7", rules, 1)); isErr {
		t.Fatal("Pos(digit) rejected \"7\"")
	}
}

func TestOptAlwaysMatches(t *testing.T) {
	rules := []Rule{
		T("minus", "-"),
		Maybe("optMinus", 0),
	}
	if _, isErr := isErrTerm(mustParse(t, "", rules, 1)); isErr {
		t.Fatal("Opt rejected empty input")
	}
	if _, isErr := isErrTerm(mustParse(t, "-", rules, 1)); isErr {
		t.Fatal("Opt rejected its child's match")
	}
}

func TestNotLookahead(t *testing.T) {
	rules := []Rule{
		T("digit9", "9"),
		Neg("not9", 0),
	}
	// Not succeeds (zero length) only when the child fails.
	if _, isErr := isErrTerm(mustParse(t, "8", rules, 1)); isErr {
		t.Fatal("Not(\"9\") rejected input not starting with 9")
	}
	if _, isErr := isErrTerm(mustParse(t, "9", rules, 1)); !isErr {
		t.Fatal("Not(\"9\") accepted input starting with 9")
	}
}

func TestAndLookahead(t *testing.T) {
	rules := []Rule{
		T("digit9", "9"),
		Look("peek9", 0),
	}
	if _, isErr := isErrTerm(mustParse(t, "9", rules, 1)); isErr {
		t.Fatal("And(\"9\") rejected input starting with 9")
	}
	if _, isErr := isErrTerm(mustParse(t, "8", rules, 1)); !isErr {
		t.Fatal("And(\"9\") accepted input not starting with 9")
	}
}

func TestRefIndirection(t *testing.T) {
	rules := []Rule{
		T("a", "a"),
		Indirect("refA", 0),
	}
	if _, isErr := isErrTerm(mustParse(t, "a", rules, 1)); isErr {
		t.Fatal("Ref did not forward its target's match")
	}
}

// TestSelfReferentialRule exercises the fixpoint's ability to resolve a rule
// that refers to itself through Seq and Alt, which a naive top-down
// evaluator could not terminate on without explicit recursion handling.
//
// group := '(' group ')' | epsilon
func TestSelfReferentialRule(t *testing.T) {
	const (
		open = iota
		closeP
		never
		epsilon
		group
		inner // Seq('(' group ')')
	)
	rules := make([]Rule, 6)
	rules[open] = T("open", "(")
	rules[closeP] = T("close", ")")
	rules[never] = R("never", 1, 0) // Lo > Hi: matches no byte
	rules[epsilon] = Maybe("epsilon", never)
	rules[inner] = S("inner", open, group, closeP)
	rules[group] = A("group", inner, epsilon)

	balanced := []string{"", "()", "(())", "((()))"}
	for _, in := range balanced {
		s, err := New([]byte(in), rules)
		if err != nil {
			t.Fatal(err)
		}
		v := Run(s, group)
		if _, isErr := isErrTerm(v); isErr {
			t.Errorf("group rejected balanced input %q", in)
		}
		if got := s.GetMatch(0, group).Len; got != len(in) {
			t.Errorf("group on %q matched length %d, want %d (full consumption)", in, got, len(in))
		}
	}

	// An unbalanced "(" cannot fully match, but the empty-prefix
	// alternative still lets the rule succeed with a zero-length match.
	s, err := New([]byte("("), rules)
	if err != nil {
		t.Fatal(err)
	}
	Run(s, group)
	if m := s.GetMatch(0, group); !m.Matched || m.Len != 0 {
		t.Fatalf("group on \"(\" = (matched=%v len=%d), want (true, 0)", m.Matched, m.Len)
	}
}

func TestActionInvokedOnMatch(t *testing.T) {
	rules := []Rule{
		{Kind: Terminal, Bytes: []byte("42"), Name: "intlit", Action: func(s *State, pos int, m Match) term.Term {
			return term.NewNat(42)
		}},
	}
	v := mustParse(t, "42", rules, 0)
	n, ok := term.IsNat(v)
	if !ok || n != 42 {
		t.Fatalf("action result = %v, want Nat(42)", v)
	}
}

func TestStringModeRebuildsByteList(t *testing.T) {
	rules := []Rule{T("abc", "abc")}
	s, err := New([]byte("abc"), rules)
	if err != nil {
		t.Fatal(err)
	}
	s.SetOutputMode(ModeString)
	v := Run(s, 0)

	var got []uint32
	cur := v
	for {
		tag, ok := term.Tag(cur)
		if !ok {
			break
		}
		if tag == nilNick {
			break
		}
		kids := term.Children(cur)
		n, _ := term.IsNat(kids[0])
		got = append(got, n)
		cur = kids[1]
	}
	want := []uint32{'a', 'b', 'c'}
	if len(got) != len(want) {
		t.Fatalf("string-mode result length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEmptyRuleTableRejected(t *testing.T) {
	if _, err := New([]byte("x"), nil); err == nil {
		t.Fatal("New with an empty rule table did not error")
	}
}

func TestDanglingRefRejected(t *testing.T) {
	rules := []Rule{Indirect("bad", 5)}
	if _, err := New([]byte("x"), rules); err == nil {
		t.Fatal("New with a dangling Ref did not error")
	}
}

func TestIterationCapMultiplierValidated(t *testing.T) {
	cfg := DefaultConfig().WithIterationCapMultiplier(1)
	if err := cfg.Validate(); err == nil {
		t.Fatal("Config with IterationCapMultiplier < 2 did not fail Validate")
	}
}

// isErrTerm reports whether v is the engine's distinguished failure term.
func isErrTerm(v term.Term) (term.Term, bool) {
	tag, ok := term.Tag(v)
	if !ok {
		return v, false
	}
	return v, tag == errNick && term.Arity(v) == 0
}
