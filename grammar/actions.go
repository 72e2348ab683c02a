package grammar

import (
	"math"

	"github.com/coregx/omnilisp/nick"
	"github.com/coregx/omnilisp/pika"
	"github.com/coregx/omnilisp/term"
)

// splitHiLo encodes a signed magnitude as the two's-complement 64-bit value
// split into its upper and lower 32 bits, the Fix representation's carrier
// for both big integers and every float.
func splitHiLo(mag uint64, neg bool) (hi, lo uint32) {
	signed := int64(mag)
	if neg {
		signed = -signed
	}
	bits := uint64(signed)
	return uint32(bits >> 32), uint32(bits)
}

// fixTerm builds Fix(hi, lo, scale).
func fixTerm(mag uint64, neg bool, scale uint32) term.Term {
	hi, lo := splitHiLo(mag, neg)
	return term.NewCtr(tagFix, term.NewNat(hi), term.NewNat(lo), term.NewNat(scale))
}

// parseDigits folds an ASCII digit run into a uint64, wrapping silently on
// overflow the same way a fixed-width accumulator does; inputs long enough
// to overflow are pathological and not a case this grammar needs to reject.
func parseDigits(digits []byte) uint64 {
	var v uint64
	for _, c := range digits {
		v = v*10 + uint64(c-'0')
	}
	return v
}

// splitSign peels a leading '+'/'-' off raw, returning whether it was
// negative and the remaining bytes.
func splitSign(raw []byte) (neg bool, rest []byte) {
	if len(raw) > 0 && (raw[0] == '+' || raw[0] == '-') {
		return raw[0] == '-', raw[1:]
	}
	return false, raw
}

// actInt implements spec.md §4.4's int(n): Lit(num) when the value is a
// non-negative magnitude fitting 32 bits, else Fix(hi, lo, 0).
func actInt(s *pika.State, pos int, m pika.Match) term.Term {
	neg, digits := splitSign(s.Input[pos : pos+m.Len])
	mag := parseDigits(digits)
	if !neg && mag <= math.MaxUint32 {
		return term.NewCtr(tagLit, term.NewNat(uint32(mag)))
	}
	return fixTerm(mag, neg, 0)
}

// actFloat implements spec.md §4.4's float(text): split at '.', concatenate
// the digits on both sides into one mantissa, and emit Fix(hi, lo, scale)
// with scale equal to the number of fractional digits.
func actFloat(s *pika.State, pos int, m pika.Match) term.Term {
	neg, body := splitSign(s.Input[pos : pos+m.Len])
	dot := -1
	for i, c := range body {
		if c == '.' {
			dot = i
			break
		}
	}
	intPart, fracPart := body[:dot], body[dot+1:]
	mantissa := make([]byte, 0, len(intPart)+len(fracPart))
	mantissa = append(mantissa, intPart...)
	mantissa = append(mantissa, fracPart...)
	return fixTerm(parseDigits(mantissa), neg, uint32(len(fracPart)))
}

// actSym implements spec.md §4.4's sym(text): a binder hit yields Var(index),
// a miss yields Sym(nick).
func actSym(s *pika.State, pos int, m pika.Match) term.Term {
	n := nick.Encode(string(s.Input[pos : pos+m.Len]))
	if idx, ok := defaultBinder.Lookup(n); ok {
		return term.NewCtr(tagVar, term.NewNat(idx))
	}
	return term.NewCtr(tagSym, term.NewNat(n))
}

var escapeCodes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'"':  '"',
	'\\': '\\',
}

// actString implements spec.md §4.4's string(text): decode escape sequences
// byte-wise into a right-associative cons-list of Chr nodes.
func actString(s *pika.State, pos int, m pika.Match) term.Term {
	end := pos + m.Len - 1 // stop before the closing quote
	cur := pos + 1         // skip the opening quote
	var codes []byte
	for cur < end {
		if esc := s.GetMatch(cur, rEscapeSeq); esc.Matched {
			code, ok := escapeCodes[s.Input[cur+1]]
			if !ok {
				code = s.Input[cur+1]
			}
			codes = append(codes, code)
			cur += esc.Len
			continue
		}
		reg := s.GetMatch(cur, rStringRegular)
		if !reg.Matched {
			break
		}
		codes = append(codes, s.Input[cur])
		cur += reg.Len
	}
	list := mkNil()
	for i := len(codes) - 1; i >= 0; i-- {
		list = mkCons(term.NewCtr(tagChr, term.NewNat(uint32(codes[i]))), list)
	}
	return list
}

// actColonQuoted implements the `:name` -> `(quote name)` desugaring.
func actColonQuoted(s *pika.State, pos int, m pika.Match) term.Term {
	sym := s.GetMatch(pos+1, rSym)
	return mkCons(symTerm(symQuote), mkCons(childOrNil(sym.Val), mkNil()))
}

// quoteHeadNick maps a matched quote prefix to the symbol it desugars to.
func quoteHeadNick(prefix []byte) uint32 {
	switch string(prefix) {
	case ",@":
		return symUnquoteSplicing
	case "`":
		return symQuasiquote
	case ",":
		return symUnquote
	default: // "'"
		return symQuote
	}
}

// actQuoted implements the `'x`/`` `x``/`,x`/`,@x` desugarings. Built as a
// genuine Seq(prefix, Skip, Expr) rather than re-parsing the tail from an
// action on a prefix-only match, so the rule's own Len already spans the
// whole quoted form (see the named-character and quoted-form discussion in
// spec.md's DESIGN NOTES on mixing parsing and interpretation).
func actQuoted(s *pika.State, pos int, m pika.Match) term.Term {
	prefix := s.GetMatch(pos, rQuotePrefix)
	cur := pos + prefix.Len
	if w := s.GetMatch(cur, rSkip); w.Matched {
		cur += w.Len
	}
	e := s.GetMatch(cur, rExpr)
	head := quoteHeadNick(s.Input[pos : pos+prefix.Len])
	return mkCons(symTerm(head), mkCons(childOrNil(e.Val), mkNil()))
}

// actPath implements `foo.bar.3` -> `(path foo bar 3)`, the one place the
// grammar walks a cons-list via Tag/Children instead of building it
// directly, per spec.md §2 item 1 and §6.
func actPath(s *pika.State, pos int, m pika.Match) term.Term {
	root := s.GetMatch(pos, rPathSegment)
	cur := pos + root.Len
	end := pos + m.Len

	var segs []term.Term
	for cur < end {
		dot := s.GetMatch(cur, rDot)
		if !dot.Matched {
			break
		}
		cur += dot.Len
		seg := s.GetMatch(cur, rPathSegment)
		if !seg.Matched {
			break
		}
		segs = append(segs, childOrNil(seg.Val))
		cur += seg.Len
	}

	tail := mkNil()
	for i := len(segs) - 1; i >= 0; i-- {
		tail = mkCons(segs[i], tail)
	}
	head := mkCons(childOrNil(root.Val), tail)

	// Reverse-and-rebuild through Tag/Children, exercising term's external
	// tag-inspection interface the way spec.md says this one action must.
	var rebuilt []term.Term
	for cur := head; ; {
		tag, ok := term.Tag(cur)
		if !ok || tag == tagNil {
			break
		}
		kids := term.Children(cur)
		rebuilt = append(rebuilt, kids[0])
		cur = kids[1]
	}
	out := mkNil()
	for i := len(rebuilt) - 1; i >= 0; i-- {
		out = mkCons(rebuilt[i], out)
	}
	return mkCons(symTerm(symPath), out)
}

// namedCharCode resolves a `#\name` body to its byte code.
func namedCharCode(name []byte) (byte, bool) {
	if len(name) == 3 && name[0] == 'x' {
		hi, okHi := hexDigit(name[1])
		lo, okLo := hexDigit(name[2])
		if okHi && okLo {
			return hi<<4 | lo, true
		}
	}
	switch string(name) {
	case "newline":
		return 10, true
	case "tab":
		return 9, true
	case "space":
		return 32, true
	case "return":
		return 13, true
	case "nul":
		return 0, true
	case "bell":
		return 7, true
	case "backspace":
		return 8, true
	case "escape":
		return 27, true
	case "delete":
		return 127, true
	}
	if len(name) == 1 {
		return name[0], true
	}
	return 0, false
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// actNamedChar implements `#\name`/`#\c`.
func actNamedChar(s *pika.State, pos int, m pika.Match) term.Term {
	name := s.Input[pos+2 : pos+m.Len]
	code, ok := namedCharCode(name)
	if !ok {
		return mkNil()
	}
	return term.NewCtr(tagChr, term.NewNat(uint32(code)))
}

// actMeta implements `^:key`.
func actMeta(s *pika.State, pos int, m pika.Match) term.Term {
	cs := s.GetMatch(pos+1, rColonSym)
	return term.NewCtr(tagMeta, childOrNil(cs.Val))
}

// actGuard implements `:when expr` -> Guard(expr).
func actGuard(s *pika.State, pos int, m pika.Match) term.Term {
	cur := pos + len(":when")
	if w := s.GetMatch(cur, rSkip); w.Matched {
		cur += w.Len
	}
	e := s.GetMatch(cur, rExpr)
	return term.NewCtr(tagGuar, childOrNil(e.Val))
}

// actSpread implements `.. name` -> Spread(name), or Spread(Nil) if name is
// absent.
func actSpread(s *pika.State, pos int, m pika.Match) term.Term {
	cur := pos + 2
	if w := s.GetMatch(cur, rSkip); w.Matched {
		cur += w.Len
	}
	sym := s.GetMatch(cur, rSym)
	if sym.Matched && sym.Val != nil {
		return term.NewCtr(tagSprd, sym.Val)
	}
	return term.NewCtr(tagSprd, mkNil())
}

// actFmtString implements `#fmt"..."` -> (fmt <string>).
func actFmtString(s *pika.State, pos int, m pika.Match) term.Term {
	str := s.GetMatch(pos+len("#fmt"), rString)
	return mkCons(symTerm(symFmt), mkCons(childOrNil(str.Val), mkNil()))
}

// actClfString implements `#clf"..."` -> (clf <string>).
func actClfString(s *pika.State, pos int, m pika.Match) term.Term {
	str := s.GetMatch(pos+len("#clf"), rString)
	return mkCons(symTerm(symClf), mkCons(childOrNil(str.Val), mkNil()))
}

// actKindSplice implements `{#kind expr}` -> KindSplice(expr).
func actKindSplice(s *pika.State, pos int, m pika.Match) term.Term {
	cur := pos + 1
	if w := s.GetMatch(cur, rSkip); w.Matched {
		cur += w.Len
	}
	hk := s.GetMatch(cur, rHashKind)
	cur += hk.Len
	if w := s.GetMatch(cur, rSkip); w.Matched {
		cur += w.Len
	}
	e := s.GetMatch(cur, rExpr)
	return term.NewCtr(tagKspl, childOrNil(e.Val))
}

// actSet implements `#set{a b c}` -> (set a b c).
func actSet(s *pika.State, pos int, m pika.Match) term.Term {
	cur := pos + len("#set") + 1 // "#set" + "{"
	if w := s.GetMatch(cur, rSkip); w.Matched {
		cur += w.Len
	}
	inner := s.GetMatch(cur, rSeqInner)
	return mkCons(symTerm(symSet), childOrNil(inner.Val))
}

// actDict implements `#{...}` -> Dict(list); the list is flat, alternating
// key/value interpretation is the downstream consumer's job per spec.md
// §4.4.
func actDict(s *pika.State, pos int, m pika.Match) term.Term {
	cur := pos + len("#{")
	if w := s.GetMatch(cur, rSkip); w.Matched {
		cur += w.Len
	}
	inner := s.GetMatch(cur, rSeqInner)
	return term.NewCtr(tagDict, childOrNil(inner.Val))
}

// wrapAction builds the action for a bracketed form whose inner sequence is
// rSeqInner reached after skipping openLen bytes and any whitespace: list
// passes the inner cons-list through bare, slot and type wrap it.
func wrapAction(openLen int, wrap func(term.Term) term.Term) pika.Action {
	return func(s *pika.State, pos int, m pika.Match) term.Term {
		cur := pos + openLen
		if w := s.GetMatch(cur, rSkip); w.Matched {
			cur += w.Len
		}
		inner := s.GetMatch(cur, rSeqInner)
		return wrap(childOrNil(inner.Val))
	}
}

func identity(v term.Term) term.Term { return v }

func wrapSlot(v term.Term) term.Term { return term.NewCtr(tagSlot, v) }
func wrapTAnn(v term.Term) term.Term { return term.NewCtr(tagTAnn, v) }

// actSeqInner implements the shared recursive "zero or more Expr separated
// by Skip" production behind list/slot/type/dict/set/program bodies: an
// Alt of (Seq(Expr,Skip,Inner)) and an always-matching epsilon, following
// the self-referential-rule pattern pika's fixpoint resolves without
// special-casing recursion.
func actSeqInner(s *pika.State, pos int, m pika.Match) term.Term {
	if m.Len == 0 {
		return mkNil()
	}
	e := s.GetMatch(pos, rExpr)
	cur := pos + e.Len
	if w := s.GetMatch(cur, rSkip); w.Matched {
		cur += w.Len
	}
	tail := s.GetMatch(cur, rSeqInner)
	return mkCons(childOrNil(e.Val), childOrNil(tail.Val))
}

// actProgram implements the top-level program rule: a leading Skip, then
// the shared sequence production.
func actProgram(s *pika.State, pos int, m pika.Match) term.Term {
	cur := pos
	if w := s.GetMatch(cur, rSkip); w.Matched {
		cur += w.Len
	}
	inner := s.GetMatch(cur, rSeqInner)
	return childOrNil(inner.Val)
}
