package grammar

import "github.com/coregx/omnilisp/pika"

// act attaches a to r and returns r, letting a rule's shape and its
// semantic action be written next to each other without a builder variant
// for every (kind, action) combination.
func act(r pika.Rule, a pika.Action) pika.Rule {
	r.Action = a
	return r
}

// buildRules returns the OmniLisp rule table, grounded on the production
// list in original_source/clang/omnilisp/pika/omni_pika.c. Every rule is
// assigned exactly once: the C source reassigns R_SIGN, R_META, R_EXPR, and
// R_OPT_SIGN during grammar initialisation, a defect spec.md's DESIGN NOTES
// flags explicitly; a Go slice indexed by rule ID has no declaration-order
// constraint forcing that pattern, so it does not appear here.
func buildRules() []pika.Rule {
	rules := make([]pika.Rule, numRules)

	// Whitespace and comments.
	rules[rCharSpace] = pika.T("space", " ")
	rules[rCharTab] = pika.T("tab", "\t")
	rules[rCharNL] = pika.T("nl", "\n")
	rules[rCharCR] = pika.T("cr", "\r")
	rules[rSpace] = pika.A("ws", rCharSpace, rCharTab, rCharNL, rCharCR)
	rules[rSemicolon] = pika.T("semi", ";")
	rules[rCommentChar] = pika.R("commentChar", ' ', '~')
	rules[rCommentInner] = pika.Star("commentInner", rCommentChar)
	rules[rComment] = pika.S("comment", rSemicolon, rCommentInner)
	rules[rWSOrComment] = pika.A("wsOrComment", rSpace, rComment)
	rules[rSkip] = pika.Star("skip", rWSOrComment)

	// Digits and numbers.
	rules[rDigit] = pika.R("digit", '0', '9')
	rules[rDigits] = pika.Plus("digits", rDigit)
	rules[rDot] = pika.T("dot", ".")
	rules[rSymPlus] = pika.T("plus", "+")
	rules[rSymMinus] = pika.T("minus", "-")
	rules[rSign] = pika.A("sign", rSymPlus, rSymMinus)
	rules[rOptSign] = pika.Maybe("optSign", rSign)
	rules[rInt] = act(pika.S("int", rOptSign, rDigits), actInt)
	rules[rFloatFull] = act(pika.S("floatFull", rOptSign, rDigits, rDot, rDigits), actFloat)
	rules[rFloatLead] = act(pika.S("floatLead", rOptSign, rDot, rDigits), actFloat)
	rules[rFloatTrail] = act(pika.S("floatTrail", rOptSign, rDigits, rDot), actFloat)
	rules[rFloat] = pika.A("float", rFloatFull, rFloatLead, rFloatTrail)

	// Symbols.
	rules[rAlphaLower] = pika.R("alphaLower", 'a', 'z')
	rules[rAlphaUpper] = pika.R("alphaUpper", 'A', 'Z')
	rules[rAlpha] = pika.A("alpha", rAlphaLower, rAlphaUpper)
	rules[rSymStar] = pika.T("star", "*")
	rules[rSymSlash] = pika.T("slash", "/")
	rules[rSymEq] = pika.T("eq", "=")
	rules[rSymLt] = pika.T("lt", "<")
	rules[rSymGt] = pika.T("gt", ">")
	rules[rSymBang] = pika.T("bang", "!")
	rules[rSymQMark] = pika.T("qmark", "?")
	rules[rSymUnder] = pika.T("under", "_")
	rules[rSymAt] = pika.T("at", "@")
	rules[rSymPercent] = pika.T("percent", "%")
	rules[rSymAmp] = pika.T("amp", "&")
	rules[rSymSpecial] = pika.A("symSpecial",
		rSymPlus, rSymMinus, rSymStar, rSymSlash, rSymEq, rSymLt, rSymGt,
		rSymBang, rSymQMark, rSymUnder, rSymAt, rSymPercent, rSymAmp)
	rules[rSymInit] = pika.A("symInit", rAlpha, rSymSpecial)
	rules[rSymChar] = pika.A("symChar", rAlpha, rDigit, rSymSpecial)
	rules[rSymCont] = pika.Star("symCont", rSymChar)
	rules[rSym] = act(pika.S("sym", rSymInit, rSymCont), actSym)
	rules[rColon] = pika.T("colon", ":")
	rules[rColonSym] = act(pika.S("colonSym", rColon, rSym), actColonQuoted)
	rules[rColonWhen] = pika.T("colonWhen", ":when")

	// Delimiters.
	rules[rLParen] = pika.T("lparen", "(")
	rules[rRParen] = pika.T("rparen", ")")
	rules[rLBracket] = pika.T("lbracket", "[")
	rules[rRBracket] = pika.T("rbracket", "]")
	rules[rLBrace] = pika.T("lbrace", "{")
	rules[rRBrace] = pika.T("rbrace", "}")
	rules[rHashBrace] = pika.T("hashBrace", "#{")
	rules[rCaret] = pika.T("caret", "^")
	rules[rDotDot] = pika.T("dotdot", "..")

	// Strings.
	rules[rDQuote] = pika.T("dquote", "\"")
	rules[rBackslash] = pika.T("backslash", "\\")
	rules[rEscN] = pika.T("escN", "n")
	rules[rEscT] = pika.T("escT", "t")
	rules[rEscR] = pika.T("escR", "r")
	rules[rEscQuote] = pika.T("escQuote", "\"")
	rules[rEscBSlash] = pika.T("escBSlash", "\\")
	rules[rEscChar] = pika.A("escChar", rEscN, rEscT, rEscR, rEscQuote, rEscBSlash)
	rules[rEscapeSeq] = pika.S("escapeSeq", rBackslash, rEscChar)
	rules[rNotDQuote] = pika.Neg("notDQuote", rDQuote)
	rules[rNotBackslash] = pika.Neg("notBackslash", rBackslash)
	rules[rAny] = pika.Dot("any")
	rules[rStringRegular] = pika.S("stringRegular", rNotDQuote, rNotBackslash, rAny)
	rules[rStringChar] = pika.A("stringChar", rEscapeSeq, rStringRegular)
	rules[rStringInner] = pika.Star("stringInner", rStringChar)
	rules[rString] = act(pika.S("string", rDQuote, rStringInner, rDQuote), actString)

	// Character literals.
	rules[rHash] = pika.T("hash", "#")
	rules[rAlnum] = pika.A("alnum", rAlpha, rDigit)
	rules[rCharNameRun] = pika.Plus("charNameRun", rAlnum)
	rules[rCharBody] = pika.A("charBody", rCharNameRun, rAny)
	rules[rNamedChar] = act(pika.S("namedChar", rHash, rBackslash, rCharBody), actNamedChar)

	// Quoting.
	rules[rQuoteChar] = pika.T("quoteChar", "'")
	rules[rQuasiquoteChar] = pika.T("quasiquoteChar", "`")
	rules[rUnquoteChar] = pika.T("unquoteChar", ",")
	rules[rUnquoteSplice] = pika.T("unquoteSplice", ",@")
	rules[rQuotePrefix] = pika.A("quotePrefix", rUnquoteSplice, rQuoteChar, rQuasiquoteChar, rUnquoteChar)
	rules[rQuoted] = act(pika.S("quoted", rQuotePrefix, rSkip, rExpr), actQuoted)

	// Path expressions.
	rules[rPathSegment] = pika.A("pathSegment", rSym, rInt)
	rules[rPathTailItem] = pika.S("pathTailItem", rDot, rPathSegment)
	rules[rPathTail] = pika.Plus("pathTail", rPathTailItem)
	rules[rPath] = act(pika.S("path", rPathSegment, rPathTail), actPath)

	// Set literal.
	rules[rHashSet] = pika.T("hashSet", "#set")
	rules[rSet] = act(pika.S("set", rHashSet, rLBrace, rSkip, rSeqInner, rSkip, rRBrace), actSet)

	// Dict literal.
	rules[rDict] = act(pika.S("dict", rHashBrace, rSkip, rSeqInner, rSkip, rRBrace), actDict)

	// Format strings.
	rules[rHashFmt] = pika.T("hashFmt", "#fmt")
	rules[rHashClf] = pika.T("hashClf", "#clf")
	rules[rFmtString] = act(pika.S("fmtString", rHashFmt, rString), actFmtString)
	rules[rClfString] = act(pika.S("clfString", rHashClf, rString), actClfString)

	// Kind splice.
	rules[rHashKind] = pika.T("hashKind", "#kind")
	rules[rKindSplice] = act(pika.S("kindSplice", rLBrace, rSkip, rHashKind, rSkip, rExpr, rRBrace), actKindSplice)

	// Metadata marker.
	rules[rMeta] = act(pika.S("meta", rCaret, rColonSym), actMeta)

	// Guard.
	rules[rGuard] = act(pika.S("guard", rColonWhen, rSkip, rExpr), actGuard)

	// Spread.
	rules[rOptSym] = pika.Maybe("optSym", rSym)
	rules[rSpread] = act(pika.S("spread", rDotDot, rSkip, rOptSym), actSpread)

	// Bracketed compounds.
	rules[rList] = act(pika.S("list", rLParen, rSkip, rSeqInner, rSkip, rRParen), wrapAction(1, identity))
	rules[rSlot] = act(pika.S("slot", rLBracket, rSkip, rSeqInner, rSkip, rRBracket), wrapAction(1, wrapSlot))
	rules[rType] = act(pika.S("type", rLBrace, rSkip, rSeqInner, rSkip, rRBrace), wrapAction(1, wrapTAnn))

	// Epsilon (always matches, zero length), shared by every recursive Inner
	// production, following the self-referential-rule pattern pika's
	// fixpoint resolves without special-casing recursion.
	rules[rNever] = pika.R("never", 1, 0)
	rules[rEpsilon] = pika.Maybe("epsilon", rNever)

	// Shared "zero or more Expr separated by Skip" production behind every
	// bracketed form and the top-level program.
	rules[rSeqInnerSeq] = pika.S("seqInnerSeq", rExpr, rSkip, rSeqInner)
	rules[rSeqInner] = act(pika.A("seqInner", rSeqInnerSeq, rEpsilon), actSeqInner)

	// Top-level expression: longer/more specific hash-prefixed and
	// colon-prefixed forms precede shorter ones, floats precede path
	// expressions (whose segments may be integers) and bare integers, and
	// path expressions precede plain symbols, per spec.md §4.1's ordering
	// discipline.
	rules[rExpr] = pika.A("expr",
		rFmtString, rClfString,
		rSet,
		rNamedChar,
		rKindSplice,
		rDict,
		rQuoted,
		rFloat,
		rPath,
		rList, rSlot, rType,
		rMeta,
		rGuard,
		rSpread,
		rInt, rString,
		rColonSym, rSym,
	)

	// Top-level program: a sequence of expressions.
	rules[rProgram] = act(pika.S("program", rSkip, rSeqInner), actProgram)

	return rules
}
