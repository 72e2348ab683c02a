package grammar

import "github.com/coregx/ahocorasick"

// prefixLabels are the fixed multi-character prefixes that must be tried in
// longest-first PEG order at a '#'/','/':' position: the unquote-splicing
// marker, the two format-string readers, the set/dict/char readers, and the
// guard keyword. Order here only documents the same priority the rule table
// in rules.go already encodes structurally; the automaton below does not
// change which alternative wins, only how fast a caller can answer "what
// reader sugar starts here" without driving the packrat engine at all.
var prefixLabels = []string{",@", "#fmt\"", "#clf\"", "#set{", "#{", "#\\", ":when"}

// prefixAutomaton is built once over prefixLabels, grounded on the
// teacher's literal-alternation bypass (meta/compile.go's ahoCorasick
// builder, meta/find.go's findAhoCorasick): a multi-pattern byte automaton
// stands in for probing each Terminal rule's bytes one at a time.
var prefixAutomaton = buildPrefixAutomaton()

func buildPrefixAutomaton() *ahocorasick.Automaton {
	b := ahocorasick.NewBuilder()
	for _, p := range prefixLabels {
		b.AddPattern([]byte(p))
	}
	a, err := b.Build()
	if err != nil {
		// The pattern set is fixed and literal; Build can only fail on a
		// builder bug, which a panic surfaces immediately during testing
		// rather than silently disabling the scanner.
		panic("grammar: prefix automaton failed to build: " + err.Error())
	}
	return a
}

// PrefixHit reports one reader-sugar prefix occurrence located by
// ScanPrefixes.
type PrefixHit struct {
	Start, End int
	Prefix     string
}

// ScanPrefixes locates every occurrence of a reader-sugar prefix in input
// without running the packrat engine, the way a syntax highlighter or
// linter built on this package would want to locate reader-sugar sites
// cheaply. It does not parse or validate surrounding structure: a hit only
// means the literal bytes are present, not that a well-formed expression
// follows.
func ScanPrefixes(input []byte) []PrefixHit {
	var hits []PrefixHit
	at := 0
	for at <= len(input) {
		m := prefixAutomaton.Find(input, at)
		if m == nil {
			break
		}
		hits = append(hits, PrefixHit{
			Start:  m.Start,
			End:    m.End,
			Prefix: string(input[m.Start:m.End]),
		})
		at = m.Start + 1
	}
	return hits
}
