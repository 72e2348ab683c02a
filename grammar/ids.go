package grammar

// Rule IDs for the OmniLisp grammar, grounded on the enum in
// original_source/clang/omnilisp/pika/omni_pika.c. Unlike the C enum (which
// the source initializes imperatively and accidentally overwrites in four
// places - R_SIGN, R_META, R_EXPR, and R_OPT_SIGN each get assigned twice,
// with only the final assignment taking effect), every rule here is built
// exactly once in buildRules().
const (
	rCharSpace = iota
	rCharTab
	rCharNL
	rCharCR
	rSpace
	rSemicolon
	rCommentChar
	rCommentInner
	rComment
	rWSOrComment
	rSkip

	rDigit
	rDigits
	rDot
	rSymPlus
	rSymMinus
	rSign
	rOptSign
	rInt
	rFloatFull
	rFloatLead
	rFloatTrail
	rFloat

	rAlphaLower
	rAlphaUpper
	rAlpha
	rSymStar
	rSymSlash
	rSymEq
	rSymLt
	rSymGt
	rSymBang
	rSymQMark
	rSymUnder
	rSymAt
	rSymPercent
	rSymAmp
	rSymSpecial
	rSymInit
	rSymChar
	rSymCont
	rSym
	rColon
	rColonSym
	rColonWhen

	rLParen
	rRParen
	rLBracket
	rRBracket
	rLBrace
	rRBrace
	rHashBrace
	rCaret
	rDotDot

	rDQuote
	rBackslash
	rEscN
	rEscT
	rEscR
	rEscQuote
	rEscBSlash
	rEscChar
	rEscapeSeq
	rNotDQuote
	rNotBackslash
	rAny
	rStringRegular
	rStringChar
	rStringInner
	rString

	rHash
	rAlnum
	rCharNameRun
	rCharBody
	rNamedChar

	rQuoteChar
	rQuasiquoteChar
	rUnquoteChar
	rUnquoteSplice
	rQuotePrefix
	rQuoted

	rPathSegment
	rPathTailItem
	rPathTail
	rPath

	rHashSet
	rSet

	rDict

	rHashFmt
	rHashClf
	rFmtString
	rClfString

	rHashKind
	rKindSplice

	rMeta

	rGuard

	rOptSym
	rSpread

	rList
	rSlot
	rType

	rNever
	rEpsilon

	// rSeqInnerSeq/rSeqInner are the shared "zero or more Expr separated by
	// Skip" recursive pair behind every bracketed form (list, slot, type,
	// dict, set) and the top-level program: all six consume the identical
	// shape, so one Inner production serves all of them instead of one per
	// bracket kind.
	rSeqInnerSeq
	rSeqInner

	rExpr

	rProgram

	numRules
)
