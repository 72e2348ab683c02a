package grammar

import "github.com/coregx/omnilisp/nick"

// Constructor tags produced by grammar actions. Each is the nick of the
// name spec.md uses for that constructor (Lit, Fix, Var, Sym, Chr, Nil,
// Cons, Slot, TAnn, Dict, KindSplice, Guard, Spread, Meta).
var (
	tagLit  = nick.Encode("Lit")
	tagFix  = nick.Encode("Fix")
	tagVar  = nick.Encode("Var")
	tagSym  = nick.Encode("Sym")
	tagChr  = nick.Encode("Chr")
	tagNil  = nick.Encode("Nil")
	tagCons = nick.Encode("Cons")
	tagSlot = nick.Encode("Slot")
	tagTAnn = nick.Encode("TAnn")
	tagDict = nick.Encode("Dict")
	tagKspl = nick.Encode("Kspl")
	tagGuar = nick.Encode("Guar")
	tagSprd = nick.Encode("Sprd")
	tagMeta = nick.Encode("Meta")
	tagErr  = nick.Encode("Err")
)

// Head symbols used by the reader-sugar desugarings that expand into a
// cons-list headed by an ordinary Sym rather than a dedicated tag: quote
// forms, #set, #fmt/#clf, and path expressions.
var (
	symQuote           = nick.Encode("quote")
	symQuasiquote      = nick.Encode("quas")
	symUnquote         = nick.Encode("unqu")
	symUnquoteSplicing = nick.Encode("uqsp")
	symSet             = nick.Encode("set")
	symFmt             = nick.Encode("fmt")
	symClf             = nick.Encode("clf")
	symPath            = nick.Encode("path")
)
